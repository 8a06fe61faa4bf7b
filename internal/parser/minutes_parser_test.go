package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"25", 25},
		{" 50 ", 50},
		{"25m", 25},
		{"25 min", 25},
		{"10 minutes", 10},
		{"1h", 60},
		{"1h30m", 90},
		{"1h 30m", 90},
		{"2 hours", 120},
		{"1440", 1440},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMinutes(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMinutesRejects(t *testing.T) {
	for _, input := range []string{"", "0", "0m", "-5", "abc", "1.5", "25s", "1441", "h", "25 days"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseMinutes(input)
			assert.Error(t, err)
		})
	}
}

func TestFormatMinutesRoundTrips(t *testing.T) {
	for _, minutes := range []int{1, 5, 25, 60, 90, 120, 1440} {
		got, err := ParseMinutes(FormatMinutes(minutes))
		require.NoError(t, err)
		assert.Equal(t, minutes, got)
	}
	assert.Equal(t, "25m", FormatMinutes(25))
	assert.Equal(t, "1h30m", FormatMinutes(90))
	assert.Equal(t, "2h", FormatMinutes(120))
}
