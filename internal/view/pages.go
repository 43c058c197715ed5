package view

import (
	"github.com/rpggio/scholarships/internal/domain/calendar"
	"github.com/rpggio/scholarships/internal/domain/finder"
	"github.com/rpggio/scholarships/internal/domain/profile"
	"github.com/rpggio/scholarships/internal/domain/recommend"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
)

// HomePage is the landing page.
type HomePage struct {
	Greeting   string `json:"greeting"`
	Intro      string `json:"intro"`
	QuickLinks []Link `json:"quick_links"`
	Tips       []Tip  `json:"tips"`
}

// FindPage is the profile form and its outcome.
type FindPage struct {
	Options        profile.FormOptions `json:"options"`
	Profile        profile.Profile     `json:"profile"`
	Submitted      bool                `json:"submitted"`
	Message        string              `json:"message,omitempty"`
	Recommendation *recommend.Result   `json:"recommendation,omitempty"`
}

// CalendarPage is the month grid with the details panel.
type CalendarPage struct {
	finder.CalendarView
	Prev     string              `json:"prev"`
	Next     string              `json:"next"`
	Selected *finder.DateDetails `json:"selected,omitempty"`
	Message  string              `json:"message,omitempty"`
}

// StatisticsPage is the share table.
type StatisticsPage struct {
	Intro  string  `json:"intro"`
	Shares []Share `json:"shares"`
}

// AboutPage describes the app.
type AboutPage struct {
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Footer       string   `json:"footer"`
	FinancialAid Link     `json:"financial_aid"`
}

func renderHome(_ State, _ []scholarship.Record, p *Payload) error {
	p.Title = homeTitle
	p.Home = &HomePage{
		Greeting:   homeGreeting,
		Intro:      homeIntro,
		QuickLinks: QuickLinks(),
		Tips:       Tips(),
	}
	return nil
}

func renderFind(state State, _ []scholarship.Record, p *Payload) error {
	page := &FindPage{Options: profile.Options(), Profile: profile.Default()}
	if state.Profile != nil {
		page.Profile = *state.Profile
	}
	if state.Submitted {
		if err := page.Profile.Validate(); err != nil {
			return err
		}
		page.Submitted = true
		page.Message = recommend.FindMessage
		page.Recommendation = state.Recommendation
	}
	p.Title = findTitle
	p.Find = page
	return nil
}

func renderCalendar(state State, records []scholarship.Record, p *Payload) error {
	month := state.Month
	if month == (calendar.Month{}) {
		month = calendar.MonthOf(state.Today)
	}

	idx := calendar.GroupByDate(records)
	page := &CalendarPage{
		CalendarView: finder.CalendarView{
			Grid:   calendar.BuildMonth(idx, month),
			Events: idx.Events(),
			All:    finder.ListItems(records),
		},
		Prev: month.Prev().String(),
		Next: month.Next().String(),
	}
	if state.Selected != nil {
		details := finder.Details(idx, *state.Selected)
		page.Selected = &details
	} else {
		page.Message = NoSelectionMessage
	}

	p.Title = calendarTitle
	p.Calendar = page
	return nil
}

func renderStatistics(_ State, _ []scholarship.Record, p *Payload) error {
	p.Title = statisticsTitle
	p.Statistics = &StatisticsPage{Intro: statisticsIntro, Shares: Shares()}
	return nil
}

func renderAbout(_ State, _ []scholarship.Record, p *Payload) error {
	p.Title = aboutTitle
	p.About = &AboutPage{
		Description:  aboutDescription,
		Features:     Features(),
		Footer:       aboutFooter,
		FinancialAid: FinancialAidOffice,
	}
	return nil
}
