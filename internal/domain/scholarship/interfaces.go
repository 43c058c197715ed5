package scholarship

import (
	"context"

	"github.com/rpggio/scholarships/internal/domain/activity"
)

// Repository provides read access to the loaded record set.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	ListByDueDate(ctx context.Context, due Date) ([]Record, error)
}

// SearchRepository performs full-text search over names and summaries.
type SearchRepository interface {
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
}

// ActivityRepository logs lookups.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
}
