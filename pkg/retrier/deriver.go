// Package retrier implements the retry-selection-and-restart pipeline over
// the directory ports.
package retrier

import "strings"

// DeriveRetryName maps an original execution name to the name its retry is
// started under: the segment before the first underscore (the whole name if
// none) with a literal "-r" appended. Pure and total; two originals sharing
// a prefix derive the same name, which surfaces later as a start conflict.
func DeriveRetryName(originalName string) string {
	base, _, _ := strings.Cut(originalName, "_")

	return base + "-r"
}
