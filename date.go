package fat12

import (
	"time"
)

// ParseDate decodes a packed 16-bit directory entry date, counted relative
// to 1980: bits 0-4 hold the day of the month (1-31), bits 5-8 the month
// (1-12) and bits 9-15 the years since 1980 (0-127).
// The resulting time.Time always has a time of 00:00:00 UTC.
//
// Day or month zero is invalid on disk, in that case the zero time.Time is
// returned so callers can use time.Time.IsZero.
// A month bigger than 12 is unspecified and simply carries over into the
// following year.
func ParseDate(input uint16) time.Time {
	dayOfMonth := input & 0x1F
	monthOfYear := input & 0x1E0 >> 5
	yearSince1980 := input & 0xFE00 >> 9

	if dayOfMonth == 0 || monthOfYear == 0 {
		return time.Time{}
	}

	return time.Date(1980+int(yearSince1980), time.Month(monthOfYear), int(dayOfMonth), 0, 0, 0, 0, time.UTC)
}

// ParseTime decodes a packed 16-bit directory entry time with a granularity
// of two seconds: bits 0-4 hold the second count divided by two (0-29),
// bits 5-10 the minutes (0-59) and bits 11-15 the hours (0-23).
// The resulting time.Time always has the date January 1, year 1, so midnight
// satisfies time.Time.IsZero.
//
// Out-of-range fields are added up like time.Date does but are capped at
// 23:59:59, a value only reachable through an invalid time field.
func ParseTime(input uint16) time.Time {
	seconds := int(input&0x1F) * 2
	minutes := input & 0x7E0 >> 5
	hours := input & 0xF800 >> 11

	result := time.Date(1, 1, 1, int(hours), int(minutes), seconds, 0, time.UTC)

	if result.Day() > 1 {
		return time.Date(1, 1, 1, 23, 59, 59, 0, time.UTC)
	}

	return result
}
