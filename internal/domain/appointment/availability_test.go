package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSlot(t *testing.T) {
	cases := map[string]string{
		"08:00":   "08:00",
		"8:00":    "08:00",
		"8:0":     "08:00",
		" 13:30 ": "13:30",
		"9:5":     "09:05",
	}

	for in, want := range cases {
		assert.Equal(t, want, NormalizeSlot(in), "input %q", in)
	}

	// entradas que não parseiam voltam sem espaços, sem pânico
	assert.Equal(t, "abc", NormalizeSlot(" abc "))
	assert.Equal(t, "25:00", NormalizeSlot("25:00"))
}

func TestAvailableSlots_EmptyOccupied(t *testing.T) {
	assert.Equal(t, SlotsForDate(wednesday), AvailableSlots(wednesday, nil))
	assert.Equal(t, SlotsForDate(wednesday), AvailableSlots(wednesday, []string{}))
}

func TestAvailableSlots_SetDifference(t *testing.T) {
	free := AvailableSlots(wednesday, []string{"08:00", "13:00"})

	assert.NotContains(t, free, "08:00")
	assert.NotContains(t, free, "13:00")
	assert.Len(t, free, len(SlotsForDate(wednesday))-2)

	// ordem crescente preservada
	assert.Equal(t, "08:30", free[0])
}

func TestAvailableSlots_NormalizesOccupied(t *testing.T) {
	free := AvailableSlots(wednesday, []string{"8:0", " 9:30"})
	assert.NotContains(t, free, "08:00")
	assert.NotContains(t, free, "09:30")
}

func TestAvailableSlots_FullyBooked(t *testing.T) {
	free := AvailableSlots(wednesday, SlotsForDate(wednesday))
	assert.Empty(t, free)
}

func TestAvailableSlots_Weekend(t *testing.T) {
	assert.Empty(t, AvailableSlots(saturday, nil))
}

func TestIsBookableSlot(t *testing.T) {
	require.True(t, IsBookableSlot(wednesday, "08:00"))
	require.True(t, IsBookableSlot(wednesday, "8:00"))
	require.True(t, IsBookableSlot(friday, "12:30"))

	assert.False(t, IsBookableSlot(wednesday, "12:30"), "lunch slot is not bookable")
	assert.False(t, IsBookableSlot(friday, "13:00"), "friday afternoon is closed")
	assert.False(t, IsBookableSlot(saturday, "08:00"))
	assert.False(t, IsBookableSlot(wednesday, "08:15"), "off-grid time")
}
