package retrier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveRetryName(t *testing.T) {
	tests := []struct {
		name     string
		original string
		want     string
	}{
		{
			name:     "uuid base with suffix segment",
			original: "ca9961be-4d81-5245-48af-b0c716acab71_af5c8774-0990",
			want:     "ca9961be-4d81-5245-48af-b0c716acab71-r",
		},
		{
			name:     "no underscore keeps whole name",
			original: "simple-execution-name",
			want:     "simple-execution-name-r",
		},
		{
			name:     "only first underscore splits",
			original: "base_middle_tail",
			want:     "base-r",
		},
		{
			name:     "leading underscore leaves empty base",
			original: "_suffix",
			want:     "-r",
		},
		{
			name:     "empty name",
			original: "",
			want:     "-r",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveRetryName(tt.original))
		})
	}
}

func TestDeriveRetryName_Idempotent(t *testing.T) {
	original := "ca9961be-4d81-5245-48af-b0c716acab71_af5c8774-0990"

	first := DeriveRetryName(original)
	second := DeriveRetryName(original)

	assert.Equal(t, first, second)
}

func TestDeriveRetryName_SharedPrefixCollides(t *testing.T) {
	a := DeriveRetryName("base_one")
	b := DeriveRetryName("base_two")

	assert.Equal(t, a, b)
}
