package booking

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// DayOfWeek converts Go's Sunday-based weekday to the 0=Monday..6=Sunday
// convention used by working_hours rows.
func DayOfWeek(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// FitsWorkingHours reports whether [start, end) lies entirely inside at
// least one of the windows. Windows are a union, but the range must fit a
// single window; spanning two adjacent windows does not count.
//
// Each boundary is compared by its own wall clock. Window bounds are
// whole minutes, so flooring start and rounding end up to the next minute
// keeps both comparisons exact for second-granular input. A range whose
// end falls on a different day can never fit; overnight bookings are
// unsupported.
func FitsWorkingHours(windows []models.WorkingHours, start, end time.Time) bool {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy != ey || sm != em || sd != ed {
		return false
	}

	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	if end.Second() != 0 || end.Nanosecond() != 0 {
		endMin++
	}

	for _, wh := range windows {
		ws, err := validators.ParseHM(wh.StartTime)
		if err != nil {
			continue
		}
		we, err := validators.ParseHM(wh.EndTime)
		if err != nil {
			continue
		}
		if ws <= startMin && endMin <= we {
			return true
		}
	}
	return false
}
