package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-02-29 ", nil)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("2024/02/29", time.UTC)
	require.Error(t, err)
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("1999-12", time.UTC)
	require.NoError(t, err)
	require.Equal(t, 1999, got.Year())
	require.Equal(t, time.December, got.Month())
	require.Equal(t, 1, got.Day())

	_, err = ParseMonth("1999-13", time.UTC)
	require.Error(t, err)
}

func TestLoadLocationEmptyIsUTC(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	require.Equal(t, time.UTC, loc)

	_, err = LoadLocation("Not/AZone")
	require.Error(t, err)
}
