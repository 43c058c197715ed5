// Package finder serves scholarship listings, calendar views and date
// lookups over the loaded record set.
package finder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rpggio/scholarships/internal/domain/activity"
	"github.com/rpggio/scholarships/internal/domain/calendar"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
)

// Service handles scholarship browsing logic.
type Service struct {
	records    scholarship.Repository
	search     scholarship.SearchRepository
	activities scholarship.ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new finder service. search and activities may be nil.
func NewService(
	records scholarship.Repository,
	search scholarship.SearchRepository,
	activities scholarship.ActivityRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		records:    records,
		search:     search,
		activities: activities,
		logger:     logger,
	}
}

// CalendarView is the calendar page payload for one month.
type CalendarView struct {
	Grid   calendar.MonthGrid `json:"grid"`
	Events map[string]string  `json:"events"`
	All    []ListItem         `json:"all"`
}

// ListItem is one row of the all-scholarships list.
type ListItem struct {
	Name    string `json:"name"`
	DueDate string `json:"due_date"`
	Due     string `json:"due"`
}

// DateDetails is the selected-date panel.
type DateDetails struct {
	Date         scholarship.Date     `json:"date"`
	Scholarships []scholarship.Record `json:"scholarships"`
	Message      string               `json:"message,omitempty"`
}

// List returns all records in declaration order.
func (s *Service) List(ctx context.Context) ([]scholarship.Record, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing scholarships: %w", err)
	}
	return records, nil
}

// Get returns every record named name.
func (s *Service) Get(ctx context.Context, name string) ([]scholarship.Record, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var matches []scholarship.Record
	for _, rec := range records {
		if rec.Name == name {
			matches = append(matches, rec)
		}
	}
	if len(matches) == 0 {
		return nil, scholarship.ErrRecordNotFound
	}
	return matches, nil
}

// Index builds a fresh date index over the full record set.
func (s *Service) Index(ctx context.Context) (*calendar.Index, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return calendar.GroupByDate(records), nil
}

// Calendar renders month m.
func (s *Service) Calendar(ctx context.Context, m calendar.Month) (CalendarView, error) {
	records, err := s.List(ctx)
	if err != nil {
		return CalendarView{}, err
	}
	idx := calendar.GroupByDate(records)
	return CalendarView{
		Grid:   calendar.BuildMonth(idx, m),
		Events: idx.Events(),
		All:    ListItems(records),
	}, nil
}

// Lookup returns the records due on date. Nothing due is not an error.
func (s *Service) Lookup(ctx context.Context, date scholarship.Date) (DateDetails, error) {
	idx, err := s.Index(ctx)
	if err != nil {
		return DateDetails{}, err
	}
	details := Details(idx, date)
	s.logLookup(ctx, details)
	return details, nil
}

// Upcoming returns deadlines from today through days ahead.
func (s *Service) Upcoming(ctx context.Context, today scholarship.Date, days int) ([]calendar.Deadline, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return calendar.Upcoming(records, today, days), nil
}

// Search runs a full-text query over names and summaries.
func (s *Service) Search(ctx context.Context, query string, opts scholarship.SearchOptions) ([]scholarship.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, scholarship.ErrInvalidQuery
	}
	if s.search == nil {
		return nil, fmt.Errorf("search repository not configured")
	}
	results, err := s.search.Search(ctx, query, opts)
	if err != nil {
		if errors.Is(err, scholarship.ErrInvalidQuery) {
			return nil, err
		}
		return nil, fmt.Errorf("searching scholarships: %w", err)
	}
	return results, nil
}

// Details builds the selected-date panel from an index.
func Details(idx *calendar.Index, date scholarship.Date) DateDetails {
	due := idx.Lookup(date)
	details := DateDetails{Date: date, Scholarships: due}
	if len(due) == 0 {
		details.Message = fmt.Sprintf("No scholarships due on %s.", date)
	}
	return details
}

// ListItems formats records for the all-scholarships list.
func ListItems(records []scholarship.Record) []ListItem {
	items := make([]ListItem, len(records))
	for i, rec := range records {
		items[i] = ListItem{Name: rec.Name, DueDate: rec.DueDate.String(), Due: rec.DueDate.Long()}
	}
	return items
}

func (s *Service) logLookup(ctx context.Context, details DateDetails) {
	if s.activities == nil {
		return
	}
	err := s.activities.Log(ctx, &activity.ActivityEntry{
		ActivityType: activity.TypeDateLookup,
		Summary:      fmt.Sprintf("%s: %d due", details.Date, len(details.Scholarships)),
	})
	if err != nil && s.logger != nil {
		s.logger.Warn("failed to log lookup", "date", details.Date.String(), "error", err)
	}
}
