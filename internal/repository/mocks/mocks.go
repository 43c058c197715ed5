package mocks

import (
	"context"

	"github.com/rpggio/scholarships/internal/domain/activity"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
	"github.com/stretchr/testify/mock"
)

// ScholarshipRepository is a mock for repository.ScholarshipRepository.
type ScholarshipRepository struct {
	mock.Mock
}

func (m *ScholarshipRepository) ReplaceAll(ctx context.Context, records []scholarship.Record) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *ScholarshipRepository) List(ctx context.Context) ([]scholarship.Record, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]scholarship.Record); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScholarshipRepository) ListByDueDate(ctx context.Context, due scholarship.Date) ([]scholarship.Record, error) {
	args := m.Called(ctx, due)
	if list, ok := args.Get(0).([]scholarship.Record); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SearchRepository is a mock for repository.SearchRepository.
type SearchRepository struct {
	mock.Mock
}

func (m *SearchRepository) Search(ctx context.Context, query string, opts scholarship.SearchOptions) ([]scholarship.SearchResult, error) {
	args := m.Called(ctx, query, opts)
	if list, ok := args.Get(0).([]scholarship.SearchResult); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityRepository is a mock for repository.ActivityRepository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// Generator is a mock for recommend.Generator.
type Generator struct {
	mock.Mock
}

func (m *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
