package config_test

import (
	"math"
	"testing"
	"time"

	"github.com/x97mdr/SpecFlow/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  time.Duration
	}{
		{input: "0:0:0.1", want: 100 * time.Millisecond},
		{input: "00:00:00.1000000", want: 100 * time.Millisecond},
		{input: "00:00:01", want: time.Second},
		{input: "01:30", want: 90 * time.Minute},
		{input: "1.02:03:04.5", want: 26*time.Hour + 3*time.Minute + 4*time.Second + 500*time.Millisecond},
		{input: "3", want: 72 * time.Hour},
		{input: "-0:0:2", want: -2 * time.Second},
		{input: "0:0:0.0000001", want: 100 * time.Nanosecond},
		{input: "106751.23:47:16.8547758", want: time.Duration(math.MaxInt64) - 7},
		{input: "106751", want: 106751 * 24 * time.Hour},
		{input: " 0:0:5 ", want: 5 * time.Second},
		{input: "250ms", want: 250 * time.Millisecond},
		{input: "1m30s", want: 90 * time.Second},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := config.ParseTimeSpan(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeSpan_Invalid(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"   ",
		"soon",
		"1:2:3:4",
		"24:00",
		"0:60",
		"0:0:60",
		"0:0:0.12345678",
		"0::1",
		"a:b",
		"+1:00",
		"200000",
		"200000.00:00",
		"-200000",
		"106751.23:47:16.8547759",
		"99999999999999999999",
	}

	for _, input := range inputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			_, err := config.ParseTimeSpan(input)
			assert.Error(t, err)
		})
	}
}

func TestFormatTimeSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input time.Duration
		want  string
	}{
		{input: 0, want: "00:00:00"},
		{input: 100 * time.Millisecond, want: "00:00:00.1000000"},
		{input: 90 * time.Minute, want: "01:30:00"},
		{input: 26*time.Hour + 4*time.Second, want: "1.02:00:04"},
		{input: -2 * time.Second, want: "-00:00:02"},
		{input: 150 * time.Nanosecond, want: "00:00:00.0000001"},
		{input: math.MaxInt64, want: "106751.23:47:16.8547758"},
		{input: math.MinInt64, want: "-106751.23:47:16.8547758"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, config.FormatTimeSpan(tt.input))
		})
	}
}

func TestFormatTimeSpan_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, d := range []time.Duration{0, time.Second, 100 * time.Millisecond, 49*time.Hour + 59*time.Minute, -time.Minute} {
		parsed, err := config.ParseTimeSpan(config.FormatTimeSpan(d))
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
}

func TestParseTimeSpan_OverflowIsValidationError(t *testing.T) {
	t.Parallel()

	root, err := newLoader().LoadText([]byte(`<specFlow><trace minTracedDuration="200000"/></specFlow>`))

	require.ErrorIs(t, err, config.ErrConfiguration)
	assert.Nil(t, root)

	var validationErr *config.SchemaValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "trace.minTracedDuration", validationErr.Path)
}
