package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "regular date", input: "18-08-2025", expected: true},
		{name: "leap day in leap year", input: "29-02-2024", expected: true},
		{name: "end of year", input: "31-12-2030", expected: true},
		{name: "february 31st", input: "31-02-2025", expected: false},
		{name: "leap day in common year", input: "29-02-2025", expected: false},
		{name: "day zero", input: "00-01-2025", expected: false},
		{name: "month zero", input: "10-00-2025", expected: false},
		{name: "month thirteen", input: "01-13-2025", expected: false},
		{name: "april 31st", input: "31-04-2025", expected: false},
		{name: "iso format", input: "2025-08-18", expected: false},
		{name: "slashes", input: "18/08/2025", expected: false},
		{name: "single digit day", input: "8-08-2025", expected: false},
		{name: "two digit year", input: "18-08-25", expected: false},
		{name: "trailing text", input: "18-08-2025x", expected: false},
		{name: "surrounding spaces", input: " 18-08-2025 ", expected: false},
		{name: "letters", input: "aa-bb-cccc", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidDate(tt.input))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("18-08-2025")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.August, 18, 0, 0, 0, 0, time.UTC), d)

	_, ok = ParseDate("31-02-2025")
	assert.False(t, ok)
}

func TestIsUpcomingDate(t *testing.T) {
	now := time.Date(2025, time.August, 18, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "today is accepted", input: "18-08-2025", expected: true},
		{name: "tomorrow", input: "19-08-2025", expected: true},
		{name: "next year", input: "01-01-2026", expected: true},
		{name: "yesterday", input: "17-08-2025", expected: false},
		{name: "last year", input: "18-08-2024", expected: false},
		{name: "invalid calendar date", input: "31-02-2026", expected: false},
		{name: "bad format", input: "2026-01-01", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUpcomingDate(tt.input, now))
		})
	}
}

func TestIsValidTimeSlot(t *testing.T) {
	assert.Len(t, TimeSlots, 12)
	for _, slot := range TimeSlots {
		assert.True(t, IsValidTimeSlot(slot), slot)
	}
	for _, slot := range []string{"", "11:30", "15:00", "18:30", "22:00", "12:15", "1200", " 12:00"} {
		assert.False(t, IsValidTimeSlot(slot), slot)
	}
}

func TestIsValidGuestCount(t *testing.T) {
	assert.True(t, IsValidGuestCount(1))
	assert.True(t, IsValidGuestCount(20))
	assert.False(t, IsValidGuestCount(0))
	assert.False(t, IsValidGuestCount(21))
	assert.False(t, IsValidGuestCount(-3))
}
