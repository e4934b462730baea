package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)

func daysAgo(n int) *time.Time {
	t := now.AddDate(0, 0, -n)
	return &t
}

func TestAdvanceFirstLogin(t *testing.T) {
	got := Advance(State{}, now)

	assert.Equal(t, 1, got.Current)
	assert.Equal(t, 1, got.Longest)
	require.NotNil(t, got.LastLogin)
	assert.Equal(t, now, *got.LastLogin)
}

func TestAdvanceConsecutiveDay(t *testing.T) {
	got := Advance(State{Current: 5, Longest: 5, LastLogin: daysAgo(1)}, now)

	assert.Equal(t, 6, got.Current)
	assert.Equal(t, 6, got.Longest)
}

func TestAdvanceSameDayIsIdempotent(t *testing.T) {
	earlier := now.Add(-3 * time.Hour)
	got := Advance(State{Current: 5, Longest: 8, LastLogin: &earlier}, now)

	assert.Equal(t, 5, got.Current)
	assert.Equal(t, 8, got.Longest)
	require.NotNil(t, got.LastLogin)
	assert.Equal(t, now, *got.LastLogin, "timestamp still refreshed")
}

func TestAdvanceGapResets(t *testing.T) {
	got := Advance(State{Current: 7, Longest: 12, LastLogin: daysAgo(3)}, now)

	assert.Equal(t, 1, got.Current)
	assert.Equal(t, 12, got.Longest, "record is untouched by a reset")
}

func TestAdvanceLongestNeverDecreases(t *testing.T) {
	got := Advance(State{Current: 3, Longest: 10, LastLogin: daysAgo(1)}, now)

	assert.Equal(t, 4, got.Current)
	assert.Equal(t, 10, got.Longest)
}

func TestAdvanceClampsNegativeCounters(t *testing.T) {
	got := Advance(State{Current: -4, Longest: -2, LastLogin: daysAgo(1)}, now)

	assert.Equal(t, 1, got.Current)
	assert.Equal(t, 1, got.Longest)
}

func TestIsStale(t *testing.T) {
	assert.False(t, IsStale(State{}, now), "never-logged-in users are not swept")
	assert.False(t, IsStale(State{LastLogin: daysAgo(1)}, now))
	assert.False(t, IsStale(State{LastLogin: daysAgo(2)}, now))
	assert.True(t, IsStale(State{LastLogin: daysAgo(3)}, now))
}

func TestStaleCutoffIsDateAligned(t *testing.T) {
	cutoff := StaleCutoff(now)

	assert.Equal(t, 0, cutoff.Hour())
	assert.Equal(t, now.AddDate(0, 0, -2).Day(), cutoff.Day())
}
