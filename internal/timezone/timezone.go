package timezone

import (
	"errors"
	"time"
)

const DefaultTimezone = "Europe/Moscow"

var location = mustLocation(DefaultTimezone)

func mustLocation(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Configure sets the process-wide wall-clock location. Called once at
// boot, before any goroutine reads Now; an invalid name keeps the
// current location.
func Configure(tz string) error {
	if tz == "" {
		return errors.New("timezone is empty")
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return err
	}

	location = loc
	return nil
}

func Now() time.Time {
	return time.Now().In(location)
}
