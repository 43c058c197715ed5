package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpggio/scholarships/internal/domain/scholarship"
	"github.com/rpggio/scholarships/internal/repository"
)

// ScholarshipRepository implements repository.ScholarshipRepository for SQLite
type ScholarshipRepository struct {
	db *DB
}

var (
	_ repository.ScholarshipRepository = (*ScholarshipRepository)(nil)
	_ repository.SearchRepository      = (*SearchRepository)(nil)
	_ repository.ActivityRepository    = (*ActivityRepository)(nil)
)

// NewScholarshipRepository creates a new ScholarshipRepository
func NewScholarshipRepository(db *DB) *ScholarshipRepository {
	return &ScholarshipRepository{db: db}
}

// ReplaceAll swaps the stored record set for records in one transaction,
// keeping their order.
func (r *ScholarshipRepository) ReplaceAll(ctx context.Context, records []scholarship.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM scholarships`); err != nil {
		return fmt.Errorf("failed to clear scholarships: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO scholarships (position, name, due_date, summary)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.ExecContext(ctx, i, rec.Name, rec.DueDate.String(), rec.Summary); err != nil {
			if isCheckViolation(err) {
				return fmt.Errorf("%w: record %d (%q)", repository.ErrInvalidInput, i, rec.Name)
			}
			return fmt.Errorf("failed to insert scholarship %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit scholarships: %w", err)
	}
	return nil
}

// List returns every record in declaration order
func (r *ScholarshipRepository) List(ctx context.Context) ([]scholarship.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, due_date, summary
		FROM scholarships
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list scholarships: %w", err)
	}
	return scanRecords(rows)
}

// ListByDueDate returns the records due on due, in declaration order
func (r *ScholarshipRepository) ListByDueDate(ctx context.Context, due scholarship.Date) ([]scholarship.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, due_date, summary
		FROM scholarships
		WHERE due_date = ?
		ORDER BY position
	`, due.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list scholarships by due date: %w", err)
	}
	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]scholarship.Record, error) {
	defer rows.Close()

	records := []scholarship.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scholarship rows: %w", err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner, extra ...any) (scholarship.Record, error) {
	var rec scholarship.Record
	var due string
	dest := append([]any{&rec.Name, &due, &rec.Summary}, extra...)
	if err := row.Scan(dest...); err != nil {
		return scholarship.Record{}, fmt.Errorf("failed to scan scholarship: %w", err)
	}
	date, err := scholarship.ParseDate(due)
	if err != nil {
		return scholarship.Record{}, fmt.Errorf("stored scholarship %q: %w", rec.Name, err)
	}
	rec.DueDate = date
	return rec, nil
}
