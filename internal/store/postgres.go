package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/SuchitArtal/virtual-lab/internal/models"
)

// Postgres stores the collection in a lab_requests table. It keeps the
// same whole-collection contract as the file backend: Save rewrites the
// table inside one transaction, with a position column preserving
// insertion order.
type Postgres struct {
	db *sqlx.DB
}

// NewPostgres wraps an open connection.
func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

// EnsureSchema creates the lab_requests table if it does not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS lab_requests (
			position    INT PRIMARY KEY,
			id          TEXT NOT NULL UNIQUE,
			name        TEXT NOT NULL,
			email       TEXT NOT NULL,
			lab_name    TEXT NOT NULL,
			status      TEXT NOT NULL,
			lab_url     TEXT,
			created_at  TIMESTAMPTZ NOT NULL,
			approved_at TIMESTAMPTZ
		)`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (p *Postgres) Load(ctx context.Context) ([]models.LabRequest, error) {
	var requests []models.LabRequest
	err := p.db.SelectContext(ctx, &requests, `
		SELECT id, name, email, lab_name, status, lab_url, created_at, approved_at
		FROM lab_requests ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load requests: %w", err)
	}
	if requests == nil {
		requests = []models.LabRequest{}
	}
	return requests, nil
}

func (p *Postgres) Save(ctx context.Context, requests []models.LabRequest) error {
	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM lab_requests`); err != nil {
		return fmt.Errorf("clear requests: %w", err)
	}
	for i, r := range requests {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO lab_requests
			(position, id, name, email, lab_name, status, lab_url, created_at, approved_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			i, r.ID, r.Name, r.Email, r.LabName, r.Status, r.LabURL, r.CreatedAt, r.ApprovedAt)
		if err != nil {
			return fmt.Errorf("insert request %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}
