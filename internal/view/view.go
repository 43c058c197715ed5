// Package view renders the browser's pages from request state. Every page goes
// through Render; nothing here holds state between calls.
package view

import (
	"errors"
	"fmt"

	"github.com/rpggio/scholarships/internal/domain/calendar"
	"github.com/rpggio/scholarships/internal/domain/profile"
	"github.com/rpggio/scholarships/internal/domain/recommend"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
)

// ErrUnknownView is returned for a view name outside Names.
var ErrUnknownView = errors.New("unknown view")

// Name identifies a page.
type Name string

const (
	Home       Name = "home"
	Find       Name = "find"
	Calendar   Name = "calendar"
	Statistics Name = "statistics"
	About      Name = "about"
)

// Names lists the pages in navigation order.
func Names() []Name {
	return []Name{Home, Find, Calendar, Statistics, About}
}

// ParseName validates a view name.
func ParseName(s string) (Name, error) {
	name := Name(s)
	if _, ok := renderers[name]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
	return name, nil
}

// State is everything the request boundary knows when a page is rendered.
type State struct {
	View  Name
	Today scholarship.Date
	// Month is the displayed calendar month; zero means the month of Today.
	Month calendar.Month
	// Selected is the clicked date, if any.
	Selected *scholarship.Date
	// Profile is the submitted form, if any.
	Profile *profile.Profile
	// Submitted is set once the find form has been posted.
	Submitted      bool
	Recommendation *recommend.Result
}

// Payload is a rendered page. Exactly one page section is set.
type Payload struct {
	View       Name            `json:"view"`
	Title      string          `json:"title"`
	Nav        []NavItem       `json:"nav"`
	Home       *HomePage       `json:"home,omitempty"`
	Find       *FindPage       `json:"find,omitempty"`
	Calendar   *CalendarPage   `json:"calendar,omitempty"`
	Statistics *StatisticsPage `json:"statistics,omitempty"`
	About      *AboutPage      `json:"about,omitempty"`
}

// NavItem is one sidebar entry.
type NavItem struct {
	View   Name   `json:"view"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type renderFunc func(State, []scholarship.Record, *Payload) error

var renderers = map[Name]renderFunc{
	Home:       renderHome,
	Find:       renderFind,
	Calendar:   renderCalendar,
	Statistics: renderStatistics,
	About:      renderAbout,
}

var labels = map[Name]string{
	Home:       "🏠 Home",
	Find:       "🎓 Find Scholarships",
	Calendar:   "📅 Calendar View",
	Statistics: "📊 Statistics",
	About:      "ℹ️ About",
}

// Render produces the page named by state.View over records.
func Render(state State, records []scholarship.Record) (Payload, error) {
	render, ok := renderers[state.View]
	if !ok {
		return Payload{}, fmt.Errorf("%w: %q", ErrUnknownView, state.View)
	}

	payload := Payload{View: state.View, Nav: nav(state.View)}
	if err := render(state, records, &payload); err != nil {
		return Payload{}, fmt.Errorf("rendering %s: %w", state.View, err)
	}
	return payload, nil
}

func nav(active Name) []NavItem {
	names := Names()
	items := make([]NavItem, len(names))
	for i, name := range names {
		items[i] = NavItem{View: name, Label: labels[name], Active: name == active}
	}
	return items
}
