package integration_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rpggio/scholarships/internal/domain/activity"
	"github.com/rpggio/scholarships/internal/domain/calendar"
	"github.com/rpggio/scholarships/internal/domain/finder"
	"github.com/rpggio/scholarships/internal/domain/profile"
	"github.com/rpggio/scholarships/internal/domain/recommend"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
	"github.com/rpggio/scholarships/internal/sqlite"
	"github.com/rpggio/scholarships/internal/view"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db              *sqlite.DB
	scholarshipRepo *sqlite.ScholarshipRepository
	searchRepo      *sqlite.SearchRepository
	activityRepo    *sqlite.ActivityRepository

	finderSvc   *finder.Service
	activitySvc *activity.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	scholarshipRepo := sqlite.NewScholarshipRepository(db)
	searchRepo := sqlite.NewSearchRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	return &testEnv{
		db:              db,
		scholarshipRepo: scholarshipRepo,
		searchRepo:      searchRepo,
		activityRepo:    activityRepo,
		finderSvc:       finder.NewService(scholarshipRepo, searchRepo, activityRepo, nil),
		activitySvc:     activity.NewService(activityRepo, nil),
	}
}

var dateComparer = cmp.Comparer(func(a, b scholarship.Date) bool { return a == b })

func TestIntegration_LoadLookupWorkflow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	records, err := scholarship.Decode(strings.NewReader(`scholarships:
  - name: A
    due_date: "2024-12-20"
    summary: first
  - name: B
    due_date: "2024-12-20"
    summary: second
  - name: C
    due_date: "2025-01-10"
`))
	require.NoError(t, err)
	require.NoError(t, env.scholarshipRepo.ReplaceAll(ctx, records))

	stored, err := env.finderSvc.List(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(records, stored, dateComparer); diff != "" {
		t.Fatalf("stored records mismatch (-want +got):\n%s", diff)
	}

	details, err := env.finderSvc.Lookup(ctx, scholarship.MustDate(2024, time.December, 20))
	require.NoError(t, err)
	require.Len(t, details.Scholarships, 2)
	require.Equal(t, "A", details.Scholarships[0].Name)
	require.Equal(t, "B", details.Scholarships[1].Name)

	details, err = env.finderSvc.Lookup(ctx, scholarship.MustDate(2024, time.December, 21))
	require.NoError(t, err)
	require.Empty(t, details.Scholarships)

	idx, err := env.finderSvc.Index(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, idx.Len())
	if diff := cmp.Diff(records, idx.Flatten(), dateComparer); diff != "" {
		t.Fatalf("flattened index mismatch (-want +got):\n%s", diff)
	}

	lookups := activity.TypeDateLookup
	entries, err := env.activitySvc.GetRecentActivity(ctx, activity.ListActivityOptions{ActivityType: &lookups})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "2024-12-21: 0 due", entries[0].Summary)
}

func TestIntegration_MalformedDateNeverReachesStore(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := scholarship.Load([]scholarship.RawRecord{{Name: "Bad", DueDate: "2024-13-45"}})
	require.ErrorIs(t, err, scholarship.ErrInvalidDueDate)

	_, err = env.db.ExecContext(ctx,
		`INSERT INTO scholarships (position, name, due_date, summary) VALUES (0, 'Bad', '2024-13-45', '')`)
	require.Error(t, err)
}

func TestIntegration_ReloadReplacesCatalog(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	scu, err := scholarship.LoadCatalog(scholarship.CatalogSCU)
	require.NoError(t, err)
	require.NoError(t, env.scholarshipRepo.ReplaceAll(ctx, scu))

	compact, err := scholarship.LoadCatalog(scholarship.CatalogCompact)
	require.NoError(t, err)
	require.NoError(t, env.scholarshipRepo.ReplaceAll(ctx, compact))

	all, err := env.finderSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(compact))

	results, err := env.finderSvc.Search(ctx, "immigrant", scholarship.SearchOptions{})
	require.NoError(t, err)
	require.Empty(t, results)

	results, err = env.finderSvc.Search(ctx, "senior care", scholarship.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Alert1 Seniors Scholarship", results[0].Record.Name)
}

func TestIntegration_CalendarAndViews(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	scu, err := scholarship.LoadCatalog(scholarship.CatalogSCU)
	require.NoError(t, err)
	require.NoError(t, env.scholarshipRepo.ReplaceAll(ctx, scu))

	month, err := calendar.ParseMonth("2024-12")
	require.NoError(t, err)
	cal, err := env.finderSvc.Calendar(ctx, month)
	require.NoError(t, err)
	require.Equal(t, 2, cal.Grid.Due)
	require.Len(t, cal.Events, 6)

	all, err := env.finderSvc.List(ctx)
	require.NoError(t, err)

	today := scholarship.MustDate(2024, time.December, 1)
	for _, name := range view.Names() {
		state, err := view.Query{View: string(name)}.State(today)
		require.NoError(t, err)
		payload, err := view.Render(state, all)
		require.NoError(t, err)
		require.Equal(t, name, payload.View)
	}
}

func TestIntegration_RecommendationActivity(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	failing := recommend.GeneratorFunc(func(context.Context, string) (string, error) {
		return "", fmt.Errorf("quota exceeded")
	})
	svc := recommend.NewService(failing, env.activityRepo, time.Second, nil)

	p := profile.Default()
	p.Name = "Jordan"
	result, err := svc.Recommend(ctx, p)
	require.NoError(t, err)
	require.False(t, result.Available)

	entries, err := env.activitySvc.GetRecentActivity(ctx, activity.ListActivityOptions{RequestID: &result.RequestID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, activity.TypeRecommendationUnavailable, entries[0].ActivityType)
	require.NotContains(t, entries[0].Summary+entries[0].Details, "Jordan")
}
