package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	location, err := time.LoadLocation("Asia/Yekaterinburg")
	require.NoError(t, err)

	instant := time.Date(2024, 1, 15, 23, 59, 59, 999, location)
	start := StartOfDay(instant)

	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, location), start)
	assert.Equal(t, location, start.Location())
}

func TestSameDay(t *testing.T) {
	base := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(base, base.Add(15*time.Hour)))
	assert.False(t, SameDay(base, base.AddDate(0, 0, 1)))
	assert.False(t, SameDay(base, base.Add(-9*time.Hour)))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("15/01/2024")
	assert.Error(t, err)

	date, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, date.IsZero())
}
