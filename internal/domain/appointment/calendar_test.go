package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	monday    = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	wednesday = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	thursday  = time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	friday    = time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	saturday  = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	sunday    = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
)

func TestSlotsForDate_Weekday(t *testing.T) {
	want := []string{
		"08:00", "08:30", "09:00", "09:30", "10:00", "10:30",
		"11:00", "11:30", "12:00", "13:00", "13:30", "14:00",
		"14:30", "15:00", "15:30",
	}

	for _, date := range []time.Time{monday, wednesday, thursday} {
		got := SlotsForDate(date)
		require.Equal(t, want, got, "weekday %s", date.Weekday())
		assert.NotContains(t, got, "12:30", "lunch slot must be excluded")
	}
}

func TestSlotsForDate_Friday(t *testing.T) {
	want := []string{
		"08:00", "08:30", "09:00", "09:30", "10:00",
		"10:30", "11:00", "11:30", "12:00", "12:30",
	}

	got := SlotsForDate(friday)
	require.Equal(t, want, got)
	assert.Less(t, len(got), len(SlotsForDate(wednesday)), "friday grid must be shorter")
}

func TestSlotsForDate_Weekend(t *testing.T) {
	assert.Empty(t, SlotsForDate(saturday))
	assert.Empty(t, SlotsForDate(sunday))
}

func TestSlotsForDate_Idempotent(t *testing.T) {
	first := SlotsForDate(wednesday)
	second := SlotsForDate(wednesday)
	assert.Equal(t, first, second)
}

func TestSlotsForDate_TimeOfDayIgnored(t *testing.T) {
	morning := time.Date(2026, 9, 2, 7, 15, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 2, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, SlotsForDate(morning), SlotsForDate(evening))
}

func TestIsBusinessDay(t *testing.T) {
	assert.True(t, IsBusinessDay(monday))
	assert.True(t, IsBusinessDay(friday))
	assert.False(t, IsBusinessDay(saturday))
	assert.False(t, IsBusinessDay(sunday))
}
