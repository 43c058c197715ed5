package finder_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rpggio/scholarships/internal/domain/activity"
	"github.com/rpggio/scholarships/internal/domain/calendar"
	"github.com/rpggio/scholarships/internal/domain/finder"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
	"github.com/rpggio/scholarships/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *scholarship.MemoryStore {
	t.Helper()
	records, err := scholarship.LoadCatalog(scholarship.CatalogSCU)
	require.NoError(t, err)
	return scholarship.NewMemoryStore(records)
}

func TestService_ListAndGet(t *testing.T) {
	ctx := context.Background()
	svc := finder.NewService(newStore(t), nil, nil, nil)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 6)
	require.Equal(t, "🎓 Kuru Footsteps to Your Future Scholarship", records[0].Name)

	got, err := svc.Get(ctx, "🚀 Innovation In Education Scholarship")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, scholarship.MustDate(2024, time.October, 15), got[0].DueDate)

	_, err = svc.Get(ctx, "Missing")
	require.ErrorIs(t, err, scholarship.ErrRecordNotFound)
}

func TestService_GetReturnsDuplicates(t *testing.T) {
	due := scholarship.MustDate(2025, time.March, 1)
	store := scholarship.NewMemoryStore([]scholarship.Record{
		{Name: "Twin", DueDate: due, Summary: "first"},
		{Name: "Twin", DueDate: due.AddDays(1), Summary: "second"},
	})
	svc := finder.NewService(store, nil, nil, nil)

	got, err := svc.Get(context.Background(), "Twin")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "first", got[0].Summary)
}

func TestService_Lookup(t *testing.T) {
	ctx := context.Background()
	acts := &mocks.ActivityRepository{}
	acts.On("Log", ctx, mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.ActivityType == activity.TypeDateLookup
	})).Return(nil)

	svc := finder.NewService(newStore(t), nil, acts, nil)

	details, err := svc.Lookup(ctx, scholarship.MustDate(2024, time.December, 20))
	require.NoError(t, err)
	require.Len(t, details.Scholarships, 1)
	require.Empty(t, details.Message)

	details, err = svc.Lookup(ctx, scholarship.MustDate(2024, time.December, 21))
	require.NoError(t, err)
	require.NotNil(t, details.Scholarships)
	require.Empty(t, details.Scholarships)
	require.Equal(t, "No scholarships due on 2024-12-21.", details.Message)

	acts.AssertNumberOfCalls(t, "Log", 2)
}

func TestService_LookupIgnoresActivityFailure(t *testing.T) {
	ctx := context.Background()
	acts := &mocks.ActivityRepository{}
	acts.On("Log", ctx, mock.Anything).Return(errors.New("closed"))

	svc := finder.NewService(newStore(t), nil, acts, nil)
	details, err := svc.Lookup(ctx, scholarship.MustDate(2024, time.October, 18))
	require.NoError(t, err)
	require.Len(t, details.Scholarships, 1)
}

func TestService_Calendar(t *testing.T) {
	svc := finder.NewService(newStore(t), nil, nil, nil)

	view, err := svc.Calendar(context.Background(), calendar.Month{Year: 2024, Month: time.December})
	require.NoError(t, err)
	require.Equal(t, "December 2024", view.Grid.Title)
	require.Len(t, view.Events, 6)
	require.Equal(t, "⭐ Blankstyle Scholarship Opportunity #1", view.Events["2024-12-31"])
	require.Len(t, view.All, 6)
	require.Equal(t, "December 20, 2024", view.All[0].Due)
}

func TestService_Upcoming(t *testing.T) {
	svc := finder.NewService(newStore(t), nil, nil, nil)

	deadlines, err := svc.Upcoming(context.Background(), scholarship.MustDate(2024, time.December, 1), 31)
	require.NoError(t, err)
	require.Len(t, deadlines, 2)
	require.Equal(t, 19, deadlines[0].DaysLeft)
	require.Equal(t, 30, deadlines[1].DaysLeft)
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()
	search := &mocks.SearchRepository{}
	opts := scholarship.SearchOptions{Limit: 5}
	search.On("Search", ctx, "essay", opts).Return([]scholarship.SearchResult{{Record: scholarship.Record{Name: "x"}}}, nil)

	svc := finder.NewService(newStore(t), search, nil, nil)
	results, err := svc.Search(ctx, "essay", opts)
	require.NoError(t, err)
	require.Len(t, results, 1)

	_, err = svc.Search(ctx, "   ", opts)
	require.ErrorIs(t, err, scholarship.ErrInvalidQuery)
	search.AssertExpectations(t)
}

func TestService_SearchWrapsErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("fts unavailable")
	search := &mocks.SearchRepository{}
	search.On("Search", ctx, "essay", mock.Anything).Return(nil, boom)

	svc := finder.NewService(newStore(t), search, nil, nil)
	_, err := svc.Search(ctx, "essay", scholarship.SearchOptions{})
	require.ErrorIs(t, err, boom)

	_, err = finder.NewService(newStore(t), nil, nil, nil).Search(ctx, "essay", scholarship.SearchOptions{})
	require.Error(t, err)
}

func TestService_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ScholarshipRepository{}
	boom := errors.New("db closed")
	repo.On("List", ctx).Return(nil, boom)

	svc := finder.NewService(repo, nil, nil, nil)
	_, err := svc.Lookup(ctx, scholarship.MustDate(2024, time.December, 20))
	require.ErrorIs(t, err, boom)
}
