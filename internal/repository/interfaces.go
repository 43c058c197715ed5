package repository

import (
	"context"

	"github.com/rpggio/scholarships/internal/domain/activity"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
)

// ScholarshipRepository manages the loaded record set. ReplaceAll is only
// called while seeding at startup.
type ScholarshipRepository interface {
	ReplaceAll(ctx context.Context, records []scholarship.Record) error
	List(ctx context.Context) ([]scholarship.Record, error)
	ListByDueDate(ctx context.Context, due scholarship.Date) ([]scholarship.Record, error)
}

// SearchRepository manages full-text search
type SearchRepository interface {
	Search(ctx context.Context, query string, opts scholarship.SearchOptions) ([]scholarship.SearchResult, error)
}

// ActivityRepository manages activity log persistence
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
	List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}
