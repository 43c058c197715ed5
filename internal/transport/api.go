package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rpggio/scholarships/internal/domain/activity"
	"github.com/rpggio/scholarships/internal/domain/calendar"
	"github.com/rpggio/scholarships/internal/domain/profile"
	"github.com/rpggio/scholarships/internal/domain/recommend"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
	"github.com/rpggio/scholarships/internal/view"
)

// apiError is the REST error body.
type apiError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type scholarshipItem struct {
	Name    string           `json:"name"`
	DueDate scholarship.Date `json:"due_date"`
	Due     string           `json:"due"`
	Summary string           `json:"summary"`
}

type findRequest struct {
	Profile   profile.Profile `json:"profile"`
	Recommend bool            `json:"recommend"`
}

func toItems(records []scholarship.Record) []scholarshipItem {
	items := make([]scholarshipItem, 0, len(records))
	for _, rec := range records {
		items = append(items, scholarshipItem{Name: rec.Name, DueDate: rec.DueDate, Due: rec.DueDate.Long(), Summary: rec.Summary})
	}
	return items
}

func (s *Server) handleListScholarships(w http.ResponseWriter, r *http.Request) {
	records, err := s.finder.List(r.Context())
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scholarships": toItems(records)})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := queryInt(q.Get("limit"), 0)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	offset, err := queryInt(q.Get("offset"), 0)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}

	results, err := s.finder.Search(r.Context(), q.Get("q"), scholarship.SearchOptions{Limit: limit, Offset: offset})
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	month := calendar.MonthOf(s.today())
	var err error
	switch {
	case q.Get("month") != "":
		month, err = calendar.ParseMonth(q.Get("month"))
	case q.Get("view_start") != "":
		month, err = calendar.MonthFromViewStart(q.Get("view_start"))
	}
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}

	cal, err := s.finder.Calendar(r.Context(), month)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cal)
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	date, err := scholarship.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	details, err := s.finder.Lookup(r.Context(), date)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (s *Server) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	days, err := queryInt(q.Get("days"), s.upcomingDays)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	today := s.today()
	if raw := q.Get("today"); raw != "" {
		if today, err = scholarship.ParseDate(raw); err != nil {
			s.writeAPIError(w, r, err)
			return
		}
	}

	deadlines, err := s.finder.Upcoming(r.Context(), today, days)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"today": today, "days": days, "deadlines": deadlines})
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state, err := view.Query{
		View:      chi.URLParam(r, "view"),
		Month:     q.Get("month"),
		ViewStart: q.Get("view_start"),
		Date:      q.Get("date"),
	}.State(s.today())
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	s.render(w, r, state)
}

func (s *Server) handleFind(w http.ResponseWriter, r *http.Request) {
	var req findRequest
	req.Profile = profile.Default()
	if err := decodeBody(r, &req); err != nil {
		s.writeAPIError(w, r, err)
		return
	}

	state := view.State{View: view.Find, Today: s.today(), Profile: &req.Profile, Submitted: true}
	if req.Recommend {
		result, err := s.recommender.Recommend(r.Context(), req.Profile)
		if err != nil {
			s.writeAPIError(w, r, err)
			return
		}
		state.Recommendation = &result
	}
	s.render(w, r, state)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, state view.State) {
	records, err := s.finder.List(r.Context())
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	payload, err := view.Render(state, records)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	p := profile.Default()
	if err := decodeBody(r, &p); err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	result, err := s.recommender.Recommend(r.Context(), p)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = FormatICS
	}

	opts := ICSOptions{CalendarName: q.Get("name")}
	for _, raw := range q["reminder"] {
		reminder, err := ParseReminder(raw)
		if err != nil {
			s.writeAPIError(w, r, err)
			return
		}
		opts.Reminders = append(opts.Reminders, reminder)
	}

	records, err := s.finder.List(r.Context())
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := Write(&buf, format, records, opts); err != nil {
		s.writeAPIError(w, r, err)
		return
	}

	if s.activity != nil {
		entry := &activity.ActivityEntry{
			ActivityType: activity.TypeExportGenerated,
			Summary:      fmt.Sprintf("%s export of %d scholarships", format, len(records)),
		}
		if requestID, ok := RequestIDFromContext(r.Context()); ok {
			entry.RequestID = &requestID
		}
		if err := s.activity.LogActivity(r.Context(), entry); err != nil && s.logger != nil {
			s.logger.Warn("failed to log export", "error", err)
		}
	}

	w.Header().Set("Content-Type", ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=scholarships.%s", format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := queryInt(q.Get("limit"), 50)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	offset, err := queryInt(q.Get("offset"), 0)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	opts := activity.ListActivityOptions{Limit: limit, Offset: offset}
	if typ := q.Get("type"); typ != "" {
		activityType := activity.ActivityType(typ)
		opts.ActivityType = &activityType
	}

	entries, err := s.activity.GetRecentActivity(r.Context(), opts)
	if err != nil {
		s.writeAPIError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"activity": entries})
}

var errBadRequest = errors.New("bad request")

func decodeBody(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func queryInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a non-negative integer", errBadRequest, raw)
	}
	return n, nil
}

func (s *Server) writeAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	body := apiError{Code: code, Message: err.Error()}
	if requestID, ok := RequestIDFromContext(r.Context()); ok {
		body.RequestID = requestID
	}
	if status == http.StatusInternalServerError {
		if s.logger != nil {
			s.logger.Error("request failed", "path", r.URL.Path, "request_id", body.RequestID, "error", err)
		}
		body.Message = "internal error"
	}
	writeJSON(w, status, map[string]apiError{"error": body})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, scholarship.ErrRecordNotFound):
		return http.StatusNotFound, "SCHOLARSHIP_NOT_FOUND"
	case errors.Is(err, view.ErrUnknownView):
		return http.StatusNotFound, "UNKNOWN_VIEW"
	case errors.Is(err, scholarship.ErrInvalidDueDate):
		return http.StatusBadRequest, "INVALID_DATE"
	case errors.Is(err, scholarship.ErrInvalidQuery):
		return http.StatusBadRequest, "INVALID_QUERY"
	case errors.Is(err, calendar.ErrInvalidMonth):
		return http.StatusBadRequest, "INVALID_MONTH"
	case errors.Is(err, profile.ErrInvalidProfile):
		return http.StatusBadRequest, "INVALID_PROFILE"
	case errors.Is(err, ErrInvalidExport):
		return http.StatusBadRequest, "INVALID_EXPORT"
	case errors.Is(err, errBadRequest), errors.Is(err, activity.ErrInvalidInput):
		return http.StatusBadRequest, "BAD_REQUEST"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

var _ RecommendService = (*recommend.Service)(nil)
