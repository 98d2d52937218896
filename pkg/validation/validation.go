package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	MinGuests = 1
	MaxGuests = 20
)

var datePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// TimeSlots lists the bookable service times, lunch then dinner.
var TimeSlots = []string{
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"19:00", "19:30", "20:00", "20:30", "21:00", "21:30",
}

// ParseDate decomposes a dd-mm-yyyy string into a calendar date at midnight UTC.
// The second return value is false when the string does not match the pattern
// or when day, month and year do not form a real date (for example 31-02-2025).
func ParseDate(s string) (time.Time, bool) {
	if !datePattern.MatchString(s) {
		return time.Time{}, false
	}
	parts := strings.Split(s, "-")
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])

	// time.Date normalizes overflowing values, so a round trip exposes invalid dates.
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || int(d.Month()) != month || d.Year() != year {
		return time.Time{}, false
	}
	return d, true
}

// IsValidDate reports whether s matches dd-mm-yyyy and denotes a real calendar date.
func IsValidDate(s string) bool {
	_, ok := ParseDate(s)
	return ok
}

// IsUpcomingDate is IsValidDate plus a check that the date is not before the
// calendar day of now. Today is accepted.
func IsUpcomingDate(s string, now time.Time) bool {
	d, ok := ParseDate(s)
	if !ok {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(today)
}

func IsValidTimeSlot(s string) bool {
	for _, slot := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func IsValidGuestCount(n int) bool {
	return n >= MinGuests && n <= MaxGuests
}
