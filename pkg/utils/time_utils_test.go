package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, 8, 15, 17, 42, 9, 123, time.UTC)

	got := DateOnly(in)

	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestMonthStart(t *testing.T) {
	in := time.Date(2026, 8, 15, 17, 42, 9, 123, time.UTC)

	got := MonthStart(in)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestAddMonthsCrossesYearBoundary(t *testing.T) {
	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), AddMonths(start, 2))
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), AddMonths(start, 1))
	assert.Equal(t, start, AddMonths(start, 0))
}

func TestFromUnixSeconds(t *testing.T) {
	assert.True(t, FromUnixSeconds(0).IsZero())
	assert.True(t, FromUnixSeconds(-5).IsZero())
	assert.Equal(t, int64(1700000000), FromUnixSeconds(1700000000).Unix())
}
