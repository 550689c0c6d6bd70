package validators

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHM parses a wall-clock "HH:MM" value into minutes since midnight.
func ParseHM(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}

	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}

	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}

	return hh*60 + mm, nil
}

// ValidateWindow checks an availability window pair. Start must come
// strictly before end within the same day.
func ValidateWindow(startHM, endHM string) error {
	start, err := ParseHM(startHM)
	if err != nil {
		return err
	}
	end, err := ParseHM(endHM)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("window %s-%s: start must be before end", startHM, endHM)
	}
	return nil
}
