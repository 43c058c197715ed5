package sqlite

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/rpggio/scholarships/internal/domain/scholarship"
)

// SearchRepository implements repository.SearchRepository for SQLite
type SearchRepository struct {
	db *DB
}

// NewSearchRepository creates a new SearchRepository
func NewSearchRepository(db *DB) *SearchRepository {
	return &SearchRepository{db: db}
}

// Search performs a full-text search over names and summaries. Every query
// term must match; results are ordered by relevance, then declaration order.
func (r *SearchRepository) Search(ctx context.Context, query string, opts scholarship.SearchOptions) ([]scholarship.SearchResult, error) {
	match := matchExpression(query)
	if match == "" {
		return nil, scholarship.ErrInvalidQuery
	}

	baseQuery := `
		SELECT
			s.name, s.due_date, s.summary,
			bm25(scholarships_fts) AS rank,
			snippet(scholarships_fts, 1, '[', ']', '...', 12) AS snippet
		FROM scholarships_fts
		JOIN scholarships s ON s.position = scholarships_fts.rowid
		WHERE scholarships_fts MATCH ?
		ORDER BY rank, s.position
	`
	args := []any{match}

	if opts.Limit > 0 {
		baseQuery += " LIMIT ?"
		args = append(args, opts.Limit)
	} else if opts.Offset > 0 {
		baseQuery += " LIMIT -1"
	}
	if opts.Offset > 0 {
		baseQuery += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search scholarships: %w", err)
	}
	defer rows.Close()

	results := []scholarship.SearchResult{}
	for rows.Next() {
		var result scholarship.SearchResult
		rec, err := scanRecord(rows, &result.Rank, &result.Snippet)
		if err != nil {
			return nil, err
		}
		result.Record = rec
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search rows: %w", err)
	}

	return results, nil
}

// matchExpression quotes each whitespace-separated term so user input is
// never parsed as FTS5 query syntax. Terms without a letter or digit carry no
// tokens and are dropped.
func matchExpression(query string) string {
	terms := strings.Fields(query)
	quoted := make([]string, 0, len(terms))
	for _, term := range terms {
		if strings.IndexFunc(term, isTokenRune) < 0 {
			continue
		}
		quoted = append(quoted, `"`+strings.ReplaceAll(term, `"`, `""`)+`"`)
	}
	return strings.Join(quoted, " ")
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
