package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ResolveScheduledInstant interprets a wall-clock date and time in the given
// IANA timezone and returns the single UTC instant it represents. Storing
// the instant next to both parties' source timezones lets either party's
// local wall-clock time be reconstructed later without re-deriving it
// ambiguously around daylight-saving transitions.
func ResolveScheduledInstant(dateStr, timeStr, timezone string) (time.Time, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("load timezone %q: %w", timezone, err)
	}

	local, err := time.ParseInLocation(
		fmt.Sprintf("%s %s", DateLayout, TimeLayout),
		fmt.Sprintf("%s %s", dateStr, timeStr),
		location,
	)
	if err != nil {
		return time.Time{}, err
	}
	return local.UTC(), nil
}
