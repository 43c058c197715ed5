package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpggio/scholarships/internal/domain/activity"
	"github.com/rpggio/scholarships/internal/domain/calendar"
	"github.com/rpggio/scholarships/internal/domain/finder"
	"github.com/rpggio/scholarships/internal/domain/profile"
	"github.com/rpggio/scholarships/internal/domain/recommend"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
)

// RPCHandler handles JSON-RPC method dispatch.
type RPCHandler interface {
	Handle(ctx context.Context, method string, params json.RawMessage) (any, error)
}

// FinderService defines browsing operations needed over HTTP.
type FinderService interface {
	List(ctx context.Context) ([]scholarship.Record, error)
	Calendar(ctx context.Context, m calendar.Month) (finder.CalendarView, error)
	Lookup(ctx context.Context, date scholarship.Date) (finder.DateDetails, error)
	Upcoming(ctx context.Context, today scholarship.Date, days int) ([]calendar.Deadline, error)
	Search(ctx context.Context, query string, opts scholarship.SearchOptions) ([]scholarship.SearchResult, error)
}

// RecommendService defines recommendation operations needed over HTTP.
type RecommendService interface {
	Recommend(ctx context.Context, p profile.Profile) (recommend.Result, error)
}

// ActivityService defines activity operations needed over HTTP.
type ActivityService interface {
	LogActivity(ctx context.Context, entry *activity.ActivityEntry) error
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Config wires the HTTP server.
type Config struct {
	RPC         RPCHandler
	Finder      FinderService
	Recommender RecommendService
	Activity    ActivityService
	// MCP is mounted at /mcp when set.
	MCP http.Handler
	// Today overrides the clock; nil uses the local date.
	Today        func() scholarship.Date
	UpcomingDays int
	Logger       *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	rpc          RPCHandler
	finder       FinderService
	recommender  RecommendService
	activity     ActivityService
	today        func() scholarship.Date
	upcomingDays int
	logger       *slog.Logger
}

// NewServer creates an HTTP server router with middleware.
func NewServer(cfg Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)

	srv := &Server{
		rpc:          cfg.RPC,
		finder:       cfg.Finder,
		recommender:  cfg.Recommender,
		activity:     cfg.Activity,
		today:        cfg.Today,
		upcomingDays: cfg.UpcomingDays,
		logger:       cfg.Logger,
	}
	if srv.today == nil {
		srv.today = func() scholarship.Date { return scholarship.DateOf(time.Now()) }
	}

	r.Get("/health", srv.handleHealth)
	r.Post("/rpc", srv.handleRPC)
	if cfg.MCP != nil {
		r.Handle("/mcp", cfg.MCP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/scholarships", srv.handleListScholarships)
		r.Get("/scholarships/search", srv.handleSearch)
		r.Get("/calendar", srv.handleCalendar)
		r.Get("/calendar/{date}", srv.handleLookup)
		r.Get("/upcoming", srv.handleUpcoming)
		r.Get("/views/{view}", srv.handleView)
		r.Post("/views/find", srv.handleFind)
		r.Post("/recommend", srv.handleRecommend)
		r.Get("/export", srv.handleExport)
		r.Get("/activity", srv.handleActivity)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r.Body)
	if err != nil {
		code := ErrInvalidReq
		if errors.Is(err, errParse) {
			code = ErrParseCode
		}
		WriteError(w, req.ID, code, err.Error(), nil)
		return
	}

	result, err := s.rpc.Handle(r.Context(), req.Method, req.Params)
	if err != nil {
		WriteHandlerError(w, req.ID, err)
		return
	}

	WriteResult(w, req.ID, result)
}
