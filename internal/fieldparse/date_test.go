package fieldparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	// Понедельник
	today := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			name:  "iso format",
			input: "2026-03-05",
			want:  "2026-03-05",
			ok:    true,
		},
		{
			name:  "iso embedded in sentence",
			input: "how about 2026-03-05 then",
			want:  "2026-03-05",
			ok:    true,
		},
		{
			name:  "us format",
			input: "03/05/2026",
			want:  "2026-03-05",
			ok:    true,
		},
		{
			name:  "month day without year",
			input: "March 5",
			want:  "2026-03-05",
			ok:    true,
		},
		{
			name:  "abbreviated month with ordinal",
			input: "Mar 5th",
			want:  "2026-03-05",
			ok:    true,
		},
		{
			name:  "weekday prefix ignored",
			input: "Tuesday, March 3",
			want:  "2026-03-03",
			ok:    true,
		},
		{
			name:  "month day with year",
			input: "March 5, 2026",
			want:  "2026-03-05",
			ok:    true,
		},
		{
			name:  "lowercase month name",
			input: "march 5",
			want:  "2026-03-05",
			ok:    true,
		},
		{
			name:  "today accepted",
			input: "2026-03-02",
			want:  "2026-03-02",
			ok:    true,
		},
		{
			name:  "past date rejected",
			input: "2026-03-01",
			ok:    false,
		},
		{
			name:  "nonexistent date rejected",
			input: "February 30",
			ok:    false,
		},
		{
			name:  "month without current year already past",
			input: "January 15",
			ok:    false,
		},
		{
			name:  "no date present",
			input: "sometime next week maybe",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input, today)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
