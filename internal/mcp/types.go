package mcp

import (
	"time"

	"github.com/rpggio/scholarships/internal/domain/activity"
	"github.com/rpggio/scholarships/internal/domain/calendar"
	"github.com/rpggio/scholarships/internal/domain/profile"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
	"github.com/rpggio/scholarships/internal/view"
)

type GetScholarshipParams struct {
	Name string `json:"name"`
}

type SearchScholarshipsParams struct {
	Query  string `json:"query"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

type GetCalendarParams struct {
	Month     string `json:"month,omitempty"`
	ViewStart string `json:"view_start,omitempty"`
}

type LookupDateParams struct {
	Date string `json:"date"`
}

type UpcomingDeadlinesParams struct {
	Days  *int   `json:"days,omitempty"`
	Today string `json:"today,omitempty"`
}

type RenderViewParams struct {
	view.Query
	Profile   *profile.Profile `json:"profile,omitempty"`
	Submitted bool             `json:"submitted,omitempty"`
	// Recommend asks the generator when a submitted find form is rendered.
	Recommend bool `json:"recommend,omitempty"`
}

type RecommendParams struct {
	Profile profile.Profile `json:"profile"`
}

type GetRecentActivityParams struct {
	Type      *activity.ActivityType `json:"type,omitempty"`
	RequestID *string                `json:"request_id,omitempty"`
	Limit     int                    `json:"limit,omitempty"`
	Offset    int                    `json:"offset,omitempty"`
}

// ScholarshipResponse is a record with its display date.
type ScholarshipResponse struct {
	Name    string           `json:"name"`
	DueDate scholarship.Date `json:"due_date"`
	Due     string           `json:"due"`
	Summary string           `json:"summary"`
}

type SearchResultResponse struct {
	ScholarshipResponse
	Rank    float64 `json:"rank"`
	Snippet string  `json:"snippet,omitempty"`
}

type DeadlineResponse struct {
	ScholarshipResponse
	calendar.DeadlineStatus
}

type UpcomingDeadlinesResponse struct {
	Today     scholarship.Date   `json:"today"`
	Days      int                `json:"days"`
	Deadlines []DeadlineResponse `json:"deadlines"`
}

// LookupDateResponse is the selected-date panel with display dates.
type LookupDateResponse struct {
	Date         scholarship.Date      `json:"date"`
	Scholarships []ScholarshipResponse `json:"scholarships"`
	Message      string                `json:"message,omitempty"`
}

type ActivityEntryResponse struct {
	Timestamp time.Time             `json:"timestamp"`
	Type      activity.ActivityType `json:"type"`
	RequestID string                `json:"request_id,omitempty"`
	Summary   string                `json:"summary"`
	Details   string                `json:"details,omitempty"`
}

func toScholarshipResponse(rec scholarship.Record) ScholarshipResponse {
	return ScholarshipResponse{
		Name:    rec.Name,
		DueDate: rec.DueDate,
		Due:     rec.DueDate.Long(),
		Summary: rec.Summary,
	}
}

func toScholarshipResponses(records []scholarship.Record) []ScholarshipResponse {
	resp := make([]ScholarshipResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toScholarshipResponse(rec))
	}
	return resp
}
