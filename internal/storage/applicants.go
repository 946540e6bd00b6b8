package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"policypulse/internal/models"
)

// Store provides append-only access to applicant records. It is constructed
// once at startup and handed to the HTTP layer; all concurrency control is
// delegated to the database engine.
type Store struct {
	db *sql.DB
}

// NewStore builds a store around an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Insert persists one applicant record and returns the assigned id.
// ID and CreatedAt on the argument are ignored; the store assigns both.
func (s *Store) Insert(ctx context.Context, rec *models.ApplicantRecord) (int64, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO applicants
			(created_at, first_name, last_name, address, city, state, zip,
			 cellphone, email, licensed_agent, years_experience,
			 resume_path, resume_original_name, disclaimer_checked)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		now, rec.FirstName, rec.LastName, rec.Address, rec.City, rec.State, rec.Zip,
		rec.Cellphone, rec.Email, rec.LicensedAgent, rec.YearsExperience,
		nullable(rec.ResumePath), nullable(rec.ResumeOriginalName), rec.DisclaimerChecked,
	)
	if err != nil {
		return 0, fmt.Errorf("insert applicant: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("applicant id: %w", err)
	}
	rec.ID = id
	rec.CreatedAt = now
	return id, nil
}

// ListAll returns every applicant record, newest first. Ties on created_at are
// broken by id so the order is always reverse insertion order.
func (s *Store) ListAll(ctx context.Context) ([]models.ApplicantRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, first_name, last_name, address, city, state, zip,
			cellphone, email, licensed_agent, years_experience,
			resume_path, resume_original_name, disclaimer_checked
		 FROM applicants
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	defer rows.Close()

	var records []models.ApplicantRecord
	for rows.Next() {
		var (
			rec        models.ApplicantRecord
			resumePath sql.NullString
			resumeName sql.NullString
		)
		if err := rows.Scan(
			&rec.ID, &rec.CreatedAt, &rec.FirstName, &rec.LastName,
			&rec.Address, &rec.City, &rec.State, &rec.Zip,
			&rec.Cellphone, &rec.Email, &rec.LicensedAgent, &rec.YearsExperience,
			&resumePath, &resumeName, &rec.DisclaimerChecked,
		); err != nil {
			return nil, fmt.Errorf("scan applicant: %w", err)
		}
		rec.ResumePath = resumePath.String
		rec.ResumeOriginalName = resumeName.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applicants: %w", err)
	}
	return records, nil
}

// Count reports the number of stored applicants.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applicants`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count applicants: %w", err)
	}
	return n, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
