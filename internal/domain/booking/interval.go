package booking

import "time"

// Overlaps is the half-open interval test used for conflict detection:
// [aStart, aEnd) and [bStart, bEnd) conflict iff each starts before the
// other ends. Touching boundaries (aEnd == bStart) do not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
