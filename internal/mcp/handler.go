package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rpggio/scholarships/internal/domain/activity"
	"github.com/rpggio/scholarships/internal/domain/calendar"
	"github.com/rpggio/scholarships/internal/domain/finder"
	"github.com/rpggio/scholarships/internal/domain/profile"
	"github.com/rpggio/scholarships/internal/domain/recommend"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
	"github.com/rpggio/scholarships/internal/view"
)

// FinderService defines browsing operations needed by MCP.
type FinderService interface {
	List(ctx context.Context) ([]scholarship.Record, error)
	Get(ctx context.Context, name string) ([]scholarship.Record, error)
	Calendar(ctx context.Context, m calendar.Month) (finder.CalendarView, error)
	Lookup(ctx context.Context, date scholarship.Date) (finder.DateDetails, error)
	Upcoming(ctx context.Context, today scholarship.Date, days int) ([]calendar.Deadline, error)
	Search(ctx context.Context, query string, opts scholarship.SearchOptions) ([]scholarship.SearchResult, error)
}

// RecommendService defines recommendation operations needed by MCP.
type RecommendService interface {
	Recommend(ctx context.Context, p profile.Profile) (recommend.Result, error)
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Finder      FinderService
	Recommender RecommendService
	Activity    ActivityService
}

// Handler dispatches MCP commands.
type Handler struct {
	finder       FinderService
	recommender  RecommendService
	activity     ActivityService
	today        func() scholarship.Date
	upcomingDays int
}

// NewHandler creates a new MCP handler. A nil today uses the local date.
func NewHandler(services Services, today func() scholarship.Date, upcomingDays int) *Handler {
	if today == nil {
		today = func() scholarship.Date { return scholarship.DateOf(time.Now()) }
	}
	return &Handler{
		finder:       services.Finder,
		recommender:  services.Recommender,
		activity:     services.Activity,
		today:        today,
		upcomingDays: upcomingDays,
	}
}

// Handle dispatches MCP requests to domain services.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "list_scholarships":
		records, err := h.finder.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return toScholarshipResponses(records), nil
	case "get_scholarship":
		var req GetScholarshipParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		records, err := h.finder.Get(ctx, req.Name)
		if err != nil {
			return nil, mapError(err)
		}
		return toScholarshipResponses(records), nil
	case "search_scholarships":
		var req SearchScholarshipsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		results, err := h.finder.Search(ctx, req.Query, scholarship.SearchOptions{Limit: req.Limit, Offset: req.Offset})
		if err != nil {
			return nil, mapError(err)
		}
		resp := make([]SearchResultResponse, 0, len(results))
		for _, result := range results {
			resp = append(resp, SearchResultResponse{
				ScholarshipResponse: toScholarshipResponse(result.Record),
				Rank:                result.Rank,
				Snippet:             result.Snippet,
			})
		}
		return resp, nil
	case "get_calendar":
		var req GetCalendarParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		month, err := h.month(req)
		if err != nil {
			return nil, mapError(err)
		}
		cal, err := h.finder.Calendar(ctx, month)
		if err != nil {
			return nil, mapError(err)
		}
		return cal, nil
	case "lookup_date":
		var req LookupDateParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		date, err := scholarship.ParseDate(req.Date)
		if err != nil {
			return nil, mapError(err)
		}
		details, err := h.finder.Lookup(ctx, date)
		if err != nil {
			return nil, mapError(err)
		}
		return LookupDateResponse{
			Date:         details.Date,
			Scholarships: toScholarshipResponses(details.Scholarships),
			Message:      details.Message,
		}, nil
	case "upcoming_deadlines":
		var req UpcomingDeadlinesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.upcoming(ctx, req)
	case "render_view":
		var req RenderViewParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.renderView(ctx, req)
	case "profile_options":
		return profile.Options(), nil
	case "recommend":
		var req RecommendParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		result, err := h.recommender.Recommend(ctx, req.Profile)
		if err != nil {
			return nil, mapError(err)
		}
		return result, nil
	case "get_recent_activity":
		var req GetRecentActivityParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		opts := activity.ListActivityOptions{
			ActivityType: req.Type,
			RequestID:    req.RequestID,
			Limit:        req.Limit,
			Offset:       req.Offset,
		}
		entries, err := h.activity.GetRecentActivity(ctx, opts)
		if err != nil {
			return nil, mapError(err)
		}
		resp := make([]ActivityEntryResponse, 0, len(entries))
		for _, entry := range entries {
			resp = append(resp, ActivityEntryResponse{
				Timestamp: entry.CreatedAt,
				Type:      entry.ActivityType,
				RequestID: stringValue(entry.RequestID),
				Summary:   entry.Summary,
				Details:   entry.Details,
			})
		}
		return resp, nil
	default:
		return nil, &APIError{Code: CodeMethodNotFound, Message: fmt.Sprintf("unknown method: %s", method)}
	}
}

func (h *Handler) month(req GetCalendarParams) (calendar.Month, error) {
	switch {
	case req.Month != "":
		return calendar.ParseMonth(req.Month)
	case req.ViewStart != "":
		return calendar.MonthFromViewStart(req.ViewStart)
	default:
		return calendar.MonthOf(h.today()), nil
	}
}

func (h *Handler) upcoming(ctx context.Context, req UpcomingDeadlinesParams) (UpcomingDeadlinesResponse, error) {
	today := h.today()
	if req.Today != "" {
		parsed, err := scholarship.ParseDate(req.Today)
		if err != nil {
			return UpcomingDeadlinesResponse{}, mapError(err)
		}
		today = parsed
	}
	days := h.upcomingDays
	if req.Days != nil {
		days = *req.Days
	}

	deadlines, err := h.finder.Upcoming(ctx, today, days)
	if err != nil {
		return UpcomingDeadlinesResponse{}, mapError(err)
	}
	resp := UpcomingDeadlinesResponse{Today: today, Days: days, Deadlines: make([]DeadlineResponse, 0, len(deadlines))}
	for _, d := range deadlines {
		resp.Deadlines = append(resp.Deadlines, DeadlineResponse{
			ScholarshipResponse: toScholarshipResponse(d.Record),
			DeadlineStatus:      d.DeadlineStatus,
		})
	}
	return resp, nil
}

func (h *Handler) renderView(ctx context.Context, req RenderViewParams) (view.Payload, error) {
	state, err := req.Query.State(h.today())
	if err != nil {
		return view.Payload{}, mapError(err)
	}
	state.Profile = req.Profile
	state.Submitted = req.Submitted

	if state.View == view.Find && req.Submitted && req.Recommend && req.Profile != nil {
		result, err := h.recommender.Recommend(ctx, *req.Profile)
		if err != nil {
			return view.Payload{}, mapError(err)
		}
		state.Recommendation = &result
	}

	records, err := h.finder.List(ctx)
	if err != nil {
		return view.Payload{}, mapError(err)
	}
	payload, err := view.Render(state, records)
	if err != nil {
		return view.Payload{}, mapError(err)
	}
	return payload, nil
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 || string(params) == "null" {
		return nil
	}
	if err := json.Unmarshal(params, out); err != nil {
		return invalidParams(err)
	}
	return nil
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}

func stringValue(val *string) string {
	if val == nil {
		return ""
	}
	return *val
}
