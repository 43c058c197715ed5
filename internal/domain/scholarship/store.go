package scholarship

import (
	"context"
	"strings"
)

// MemoryStore holds the loaded record set in declaration order. It is
// immutable after construction and safe for concurrent readers.
type MemoryStore struct {
	records []Record
}

// NewMemoryStore copies records into a new store.
func NewMemoryStore(records []Record) *MemoryStore {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &MemoryStore{records: cp}
}

// All returns the records in declaration order. The returned slice is a copy.
func (s *MemoryStore) All() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// List implements Repository.
func (s *MemoryStore) List(_ context.Context) ([]Record, error) {
	return s.All(), nil
}

// ListByDueDate implements Repository.
func (s *MemoryStore) ListByDueDate(_ context.Context, due Date) ([]Record, error) {
	out := []Record{}
	for _, rec := range s.records {
		if rec.DueDate == due {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Search implements SearchRepository with a case-insensitive substring match
// on every query term. Hits are returned in declaration order.
func (s *MemoryStore) Search(_ context.Context, query string, opts SearchOptions) ([]SearchResult, error) {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil, ErrInvalidQuery
	}

	results := []SearchResult{}
	for _, rec := range s.records {
		text := strings.ToLower(rec.Name + " " + rec.Summary)
		matched := true
		for _, term := range terms {
			if !strings.Contains(text, term) {
				matched = false
				break
			}
		}
		if matched {
			results = append(results, SearchResult{Record: rec})
		}
	}

	if opts.Offset > 0 {
		if opts.Offset >= len(results) {
			return []SearchResult{}, nil
		}
		results = results[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(results) {
		results = results[:opts.Limit]
	}
	return results, nil
}
