package sqlite

import (
	"context"
	"testing"

	"github.com/rpggio/scholarships/internal/domain/scholarship"
	"github.com/stretchr/testify/require"
)

func TestSearchRepository_Search(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	seedCatalog(t, db)

	repo := NewSearchRepository(db)
	results, err := repo.Search(ctx, "immigrant", scholarship.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "🌍 New Beginnings Immigrant Scholarship", results[0].Record.Name)
	require.Contains(t, results[0].Snippet, "[immigrant]")
}

func TestSearchRepository_AllTermsMustMatch(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	seedCatalog(t, db)

	repo := NewSearchRepository(db)
	results, err := repo.Search(ctx, "essay", scholarship.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 2)

	results, err = repo.Search(ctx, "essay senior", scholarship.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "💡 Alert1 Students for Seniors Scholarship", results[0].Record.Name)
}

func TestSearchRepository_QuotesSyntax(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	seedCatalog(t, db)

	repo := NewSearchRepository(db)
	_, err := repo.Search(ctx, `Bert & "Phyllis`, scholarship.SearchOptions{})
	require.NoError(t, err)

	_, err = repo.Search(ctx, "  ", scholarship.SearchOptions{})
	require.ErrorIs(t, err, scholarship.ErrInvalidQuery)
}

func TestSearchRepository_Paging(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	seedCatalog(t, db)

	repo := NewSearchRepository(db)
	all, err := repo.Search(ctx, "scholarship", scholarship.SearchOptions{})
	require.NoError(t, err)
	require.Greater(t, len(all), 2)

	page, err := repo.Search(ctx, "scholarship", scholarship.SearchOptions{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, all[1].Record.Name, page[0].Record.Name)

	rest, err := repo.Search(ctx, "scholarship", scholarship.SearchOptions{Offset: 1})
	require.NoError(t, err)
	require.Len(t, rest, len(all)-1)
}

func TestMatchExpression(t *testing.T) {
	require.Equal(t, `"essay" "senior"`, matchExpression(" essay  senior "))
	require.Equal(t, `"Bert" """Phyllis"`, matchExpression(`Bert & "Phyllis`))
	require.Equal(t, "", matchExpression("& 🎓"))
}
