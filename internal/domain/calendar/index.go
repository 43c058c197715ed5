// Package calendar groups scholarship records by due date for calendar
// rendering and click lookup.
package calendar

import (
	"sort"
	"strings"

	"github.com/rpggio/scholarships/internal/domain/scholarship"
)

// Index maps a due date to the records due that day. Within a date, records
// keep the relative order of the input sequence. An Index is built per
// render and never mutated after GroupByDate returns.
type Index struct {
	groups map[scholarship.Date][]scholarship.Record
	dates  []scholarship.Date
}

// GroupByDate builds an Index from records.
func GroupByDate(records []scholarship.Record) *Index {
	idx := &Index{groups: make(map[scholarship.Date][]scholarship.Record)}
	for _, rec := range records {
		if _, ok := idx.groups[rec.DueDate]; !ok {
			idx.dates = append(idx.dates, rec.DueDate)
		}
		idx.groups[rec.DueDate] = append(idx.groups[rec.DueDate], rec)
	}
	sort.Slice(idx.dates, func(i, j int) bool {
		return idx.dates[i].Before(idx.dates[j])
	})
	return idx
}

// Lookup returns the records due on date. A date with nothing due yields an
// empty slice.
func (idx *Index) Lookup(date scholarship.Date) []scholarship.Record {
	group := idx.groups[date]
	out := make([]scholarship.Record, len(group))
	copy(out, group)
	return out
}

// Dates returns the dates that have at least one record, ascending.
func (idx *Index) Dates() []scholarship.Date {
	out := make([]scholarship.Date, len(idx.dates))
	copy(out, idx.dates)
	return out
}

// Len returns the number of distinct due dates.
func (idx *Index) Len() int {
	return len(idx.dates)
}

// Groups returns a copy of the date to records mapping.
func (idx *Index) Groups() map[scholarship.Date][]scholarship.Record {
	out := make(map[scholarship.Date][]scholarship.Record, len(idx.groups))
	for date := range idx.groups {
		out[date] = idx.Lookup(date)
	}
	return out
}

// Flatten concatenates all groups in ascending date order.
func (idx *Index) Flatten() []scholarship.Record {
	out := []scholarship.Record{}
	for _, date := range idx.dates {
		out = append(out, idx.groups[date]...)
	}
	return out
}

// Events returns the calendar widget feed: ISO date to record names joined by
// newlines.
func (idx *Index) Events() map[string]string {
	events := make(map[string]string, len(idx.groups))
	for date, group := range idx.groups {
		names := make([]string, len(group))
		for i, rec := range group {
			names[i] = rec.Name
		}
		events[date.String()] = strings.Join(names, "\n")
	}
	return events
}
