package domain

import "time"

// Jam session status constants
const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// DeriveStatus computes a session's status from its schedule at the given
// instant. Sessions without an end time run until the end of their day.
// Unparseable dates leave the session upcoming.
func DeriveStatus(date, startTime, endTime string, now time.Time) string {
	day, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return StatusUpcoming
	}

	start := day
	if t, err := time.Parse(timeLayout, startTime); err == nil {
		start = day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
	}

	end := day.Add(24 * time.Hour)
	if endTime != "" {
		if t, err := time.Parse(timeLayout, endTime); err == nil {
			end = day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
			// Sessions crossing midnight end on the next day.
			if end.Before(start) {
				end = end.Add(24 * time.Hour)
			}
		}
	}

	switch {
	case now.Before(start):
		return StatusUpcoming
	case now.After(end):
		return StatusCompleted
	default:
		return StatusOngoing
	}
}

// StartsAt returns the session's start instant, used for date ordering.
// Sessions with an unparseable date sort to the far future.
func (s *JamSession) StartsAt(loc *time.Location) time.Time {
	day, err := time.ParseInLocation(dateLayout, s.Date, loc)
	if err != nil {
		return time.Date(9999, 1, 1, 0, 0, 0, 0, loc)
	}
	if t, err := time.Parse(timeLayout, s.StartTime); err == nil {
		return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
	}
	return day
}
