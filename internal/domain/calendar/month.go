package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/rpggio/scholarships/internal/domain/scholarship"
)

const monthLayout = "2006-01"

// Month is the displayed month of the calendar view.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// MonthOf returns the month containing d.
func MonthOf(d scholarship.Date) Month {
	return Month{Year: d.Year(), Month: d.Month()}
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, strings.TrimSpace(s))
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthFromViewStart derives the displayed month from the calendar widget's
// currentStart value, e.g. "2024-12-01T00:00:00-08:00".
func MonthFromViewStart(viewStart string) (Month, error) {
	datePart, _, _ := strings.Cut(viewStart, "T")
	d, err := scholarship.ParseDate(datePart)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, viewStart)
	}
	return MonthOf(d), nil
}

// First returns the first day of m.
func (m Month) First() scholarship.Date {
	return scholarship.DateOf(time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC))
}

// Next returns the following month.
func (m Month) Next() Month {
	return MonthOf(scholarship.DateOf(m.First().Time().AddDate(0, 1, 0)))
}

// Prev returns the preceding month.
func (m Month) Prev() Month {
	return MonthOf(scholarship.DateOf(m.First().Time().AddDate(0, -1, 0)))
}

// Contains reports whether d falls in m.
func (m Month) Contains(d scholarship.Date) bool {
	return d.Year() == m.Year && d.Month() == m.Month
}

func (m Month) String() string {
	return m.First().Time().Format(monthLayout)
}

// Title formats m as "December 2024".
func (m Month) Title() string {
	return m.First().Time().Format("January 2006")
}

// Day is one cell of a month grid.
type Day struct {
	Date         scholarship.Date     `json:"date"`
	InMonth      bool                 `json:"in_month"`
	Scholarships []scholarship.Record `json:"scholarships"`
}

// MonthGrid is a Sunday-first grid of whole weeks covering a month.
type MonthGrid struct {
	Month Month   `json:"month"`
	Title string  `json:"title"`
	Weeks [][]Day `json:"weeks"`
	Due   int     `json:"due"`
}

// BuildMonth lays out m as whole weeks, attaching the records due each day.
func BuildMonth(idx *Index, m Month) MonthGrid {
	first := m.First()
	start := first.AddDays(-int(first.Weekday()))
	grid := MonthGrid{Month: m, Title: m.Title()}

	day := start
	for {
		week := make([]Day, 7)
		for i := range week {
			inMonth := m.Contains(day)
			due := idx.Lookup(day)
			week[i] = Day{Date: day, InMonth: inMonth, Scholarships: due}
			if inMonth {
				grid.Due += len(due)
			}
			day = day.AddDays(1)
		}
		grid.Weeks = append(grid.Weeks, week)
		if !m.Contains(day) {
			break
		}
	}
	return grid
}
