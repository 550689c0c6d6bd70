package booking

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestDayOfWeek(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		{time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC), 0},  // Monday
		{time.Date(2026, 9, 9, 10, 0, 0, 0, time.UTC), 2},  // Wednesday
		{time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC), 5}, // Saturday
		{time.Date(2026, 9, 13, 10, 0, 0, 0, time.UTC), 6}, // Sunday
	}

	for _, tc := range cases {
		if got := DayOfWeek(tc.date); got != tc.want {
			t.Errorf("DayOfWeek(%s) = %d, want %d", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func windows(pairs ...[2]string) []models.WorkingHours {
	out := make([]models.WorkingHours, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, models.WorkingHours{StartTime: p[0], EndTime: p[1]})
	}
	return out
}

func at(h, m int) time.Time {
	return time.Date(2026, 9, 7, h, m, 0, 0, time.UTC)
}

func TestFitsWorkingHours(t *testing.T) {
	cases := []struct {
		name    string
		windows []models.WorkingHours
		start   time.Time
		end     time.Time
		want    bool
	}{
		{
			name:    "inside single window",
			windows: windows([2]string{"09:00", "18:00"}),
			start:   at(10, 0),
			end:     at(11, 0),
			want:    true,
		},
		{
			name:    "exactly fills the window",
			windows: windows([2]string{"09:00", "18:00"}),
			start:   at(9, 0),
			end:     at(18, 0),
			want:    true,
		},
		{
			name:    "starts before opening",
			windows: windows([2]string{"09:00", "18:00"}),
			start:   at(8, 30),
			end:     at(9, 30),
			want:    false,
		},
		{
			name:    "ends after closing",
			windows: windows([2]string{"09:00", "18:00"}),
			start:   at(17, 30),
			end:     at(18, 30),
			want:    false,
		},
		{
			name:    "no windows means closed",
			windows: nil,
			start:   at(10, 0),
			end:     at(11, 0),
			want:    false,
		},
		{
			name:    "fits the second of two windows",
			windows: windows([2]string{"09:00", "13:00"}, [2]string{"14:00", "18:00"}),
			start:   at(15, 0),
			end:     at(16, 0),
			want:    true,
		},
		{
			name:    "spanning the lunch gap does not fit",
			windows: windows([2]string{"09:00", "13:00"}, [2]string{"14:00", "18:00"}),
			start:   at(12, 0),
			end:     at(15, 0),
			want:    false,
		},
		{
			name:    "spanning two adjacent windows does not fit",
			windows: windows([2]string{"09:00", "13:00"}, [2]string{"13:00", "18:00"}),
			start:   at(12, 0),
			end:     at(14, 0),
			want:    false,
		},
		{
			name:    "ending seconds past closing does not fit",
			windows: windows([2]string{"09:00", "18:00"}),
			start:   at(17, 0),
			end:     time.Date(2026, 9, 7, 18, 0, 30, 0, time.UTC),
			want:    false,
		},
		{
			name:    "sub-minute end inside the window fits",
			windows: windows([2]string{"09:00", "18:00"}),
			start:   at(17, 0),
			end:     time.Date(2026, 9, 7, 17, 30, 30, 0, time.UTC),
			want:    true,
		},
		{
			name:    "start seconds after opening fits",
			windows: windows([2]string{"09:00", "18:00"}),
			start:   time.Date(2026, 9, 7, 9, 0, 30, 0, time.UTC),
			end:     at(10, 0),
			want:    true,
		},
		{
			name:    "start seconds before opening does not fit",
			windows: windows([2]string{"09:00", "18:00"}),
			start:   time.Date(2026, 9, 7, 8, 59, 30, 0, time.UTC),
			end:     at(10, 0),
			want:    false,
		},
		{
			name:    "crossing midnight never fits",
			windows: windows([2]string{"00:00", "23:59"}),
			start:   at(23, 0),
			end:     time.Date(2026, 9, 8, 1, 0, 0, 0, time.UTC),
			want:    false,
		},
		{
			name:    "malformed window is skipped",
			windows: windows([2]string{"nine", "18:00"}, [2]string{"10:00", "12:00"}),
			start:   at(10, 30),
			end:     at(11, 30),
			want:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FitsWorkingHours(tc.windows, tc.start, tc.end); got != tc.want {
				t.Errorf("FitsWorkingHours() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name         string
		aStart, aEnd time.Time
		bStart, bEnd time.Time
		want         bool
	}{
		{"partial overlap", at(10, 0), at(11, 0), at(10, 30), at(11, 30), true},
		{"containment", at(10, 0), at(12, 0), at(10, 30), at(11, 0), true},
		{"identical ranges", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"back to back does not overlap", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"disjoint", at(10, 0), at(11, 0), at(13, 0), at(14, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Errorf("Overlaps() = %v, want %v", got, tc.want)
			}
			// overlap is symmetric
			if got := Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd); got != tc.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tc.want)
			}
		})
	}
}
