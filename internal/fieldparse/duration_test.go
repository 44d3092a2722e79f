package fieldparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{
			name:  "explicit one hour",
			input: "1 hour",
			want:  60,
			ok:    true,
		},
		{
			name:  "fractional hours",
			input: "1.5 hours",
			want:  90,
			ok:    true,
		},
		{
			name:  "abbreviated hour unit",
			input: "2 hrs",
			want:  120,
			ok:    true,
		},
		{
			name:  "bare small number treated as hours",
			input: "2",
			want:  120,
			ok:    true,
		},
		{
			name:  "bare large number treated as minutes",
			input: "90",
			want:  90,
			ok:    true,
		},
		{
			name:  "explicit minutes",
			input: "45 minutes",
			want:  45,
			ok:    true,
		},
		{
			name:  "abbreviated minute unit",
			input: "30 min",
			want:  30,
			ok:    true,
		},
		{
			name:  "both units mentioned keeps minutes",
			input: "90 minutes, not hours",
			want:  90,
			ok:    true,
		},
		{
			name:  "bare six treated as hours",
			input: "6",
			want:  360,
			ok:    true,
		},
		{
			name:  "bare seven treated as minutes",
			input: "7",
			want:  7,
			ok:    true,
		},
		{
			name:  "no number present",
			input: "an hour or so",
			ok:    false,
		},
		{
			name:  "zero rejected",
			input: "0 minutes",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDuration(tt.input)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
