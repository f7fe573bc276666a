package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a Tuesday in June, well before Dec 25
var dateNow = time.Date(2026, 6, 16, 14, 30, 0, 0, time.UTC)

func TestParseDate_Keywords(t *testing.T) {
	today := time.Date(2026, 6, 16, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{"hoje", "HOJE", " Hoje "} {
		got, err := parseDate(input, dateNow)
		require.NoError(t, err, input)
		assert.Equal(t, today, got, input)
	}

	for _, input := range []string{"amanhã", "amanha", "AMANHÃ", "Amanha"} {
		got, err := parseDate(input, dateNow)
		require.NoError(t, err, input)
		assert.Equal(t, today.AddDate(0, 0, 1), got, input)
	}
}

func TestParseDate_Numeric(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{"25/12", time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"25/12/27", time.Date(2027, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"25/12/2027", time.Date(2027, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"1/7", time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)},
		{"16/6", time.Date(2026, 6, 16, 0, 0, 0, 0, time.UTC)}, // today is allowed
	}
	for _, tc := range cases {
		got, err := parseDate(tc.input, dateNow)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestParseDate_Rejected(t *testing.T) {
	inputs := []string{
		"31/02",      // not a calendar date
		"0/5",        // day zero
		"15/13",      // month 13
		"15/06/2025", // past year
		"15/6",       // past date this year
		"ontem",
		"25-12",
		"12/25/2026", // month/day order is not accepted
		"abc",
		"",
	}
	for _, input := range inputs {
		_, err := parseDate(input, dateNow)
		assert.Error(t, err, input)
	}
}

func TestParseDate_TwoDigitYearIs2000Based(t *testing.T) {
	got, err := parseDate("01/01/99", dateNow)
	require.NoError(t, err)
	assert.Equal(t, 2099, got.Year())
}
