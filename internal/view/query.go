package view

import (
	"strings"

	"github.com/rpggio/scholarships/internal/domain/calendar"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
)

// Query is the string form of a page request as it arrives from a URL or a
// tool call.
type Query struct {
	View string `json:"view"`
	// Month is "YYYY-MM".
	Month string `json:"month,omitempty"`
	// ViewStart is the calendar widget's currentStart; used when Month is empty.
	ViewStart string `json:"view_start,omitempty"`
	// Date is the selected "YYYY-MM-DD", or the calendar's dateClick
	// "YYYY-MM-DDTHH:MM:SS".
	Date string `json:"date,omitempty"`
}

// State parses q into a render state for today.
func (q Query) State(today scholarship.Date) (State, error) {
	name, err := ParseName(q.View)
	if err != nil {
		return State{}, err
	}
	state := State{View: name, Today: today}

	switch {
	case q.Month != "":
		state.Month, err = calendar.ParseMonth(q.Month)
	case q.ViewStart != "":
		state.Month, err = calendar.MonthFromViewStart(q.ViewStart)
	}
	if err != nil {
		return State{}, err
	}

	if q.Date != "" {
		day, _, _ := strings.Cut(q.Date, "T")
		selected, err := scholarship.ParseDate(day)
		if err != nil {
			return State{}, err
		}
		state.Selected = &selected
		if q.Month == "" && q.ViewStart == "" {
			state.Month = calendar.MonthOf(selected)
		}
	}
	return state, nil
}
