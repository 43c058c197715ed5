package calendar

import (
	"sort"

	"github.com/rpggio/scholarships/internal/domain/scholarship"
)

// DeadlineStatus describes how far today is from a due date.
type DeadlineStatus struct {
	Past     bool `json:"past"`
	DaysLeft int  `json:"days_left"`
}

// Status compares due against today. A record due today is not past.
func Status(due, today scholarship.Date) DeadlineStatus {
	daysLeft := today.DaysUntil(due)
	return DeadlineStatus{Past: daysLeft < 0, DaysLeft: daysLeft}
}

// Deadline is a record paired with its status.
type Deadline struct {
	Record scholarship.Record `json:"record"`
	DeadlineStatus
}

// Upcoming returns the records due from today through horizonDays days ahead,
// soonest first. Records sharing a date keep input order. A horizon of zero
// or less is unbounded.
func Upcoming(records []scholarship.Record, today scholarship.Date, horizonDays int) []Deadline {
	out := []Deadline{}
	for _, rec := range records {
		status := Status(rec.DueDate, today)
		if status.Past {
			continue
		}
		if horizonDays > 0 && status.DaysLeft > horizonDays {
			continue
		}
		out = append(out, Deadline{Record: rec, DeadlineStatus: status})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysLeft < out[j].DaysLeft
	})
	return out
}
