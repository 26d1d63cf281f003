package timezone

import "time"

// The business operates from Port Harcourt only, so there is a single
// fixed zone for timestamps and schedule parsing.
const BusinessTimezone = "Africa/Lagos"

func Location() *time.Location {
	loc, err := time.LoadLocation(BusinessTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
