package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dferrell/cadence/internal/db"
	"github.com/dferrell/cadence/internal/domain"
)

// SQLiteRequestRepo implements RequestRepo using a SQLite database.
type SQLiteRequestRepo struct {
	db db.DBTX
}

// NewSQLiteRequestRepo creates a new SQLiteRequestRepo.
func NewSQLiteRequestRepo(conn db.DBTX) *SQLiteRequestRepo {
	return &SQLiteRequestRepo{db: conn}
}

func (r *SQLiteRequestRepo) Create(ctx context.Context, req *domain.SessionRequest) error {
	query := `INSERT INTO session_requests (id, client_id, duration_min, count, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		req.ID,
		req.ClientID,
		req.DurationMin,
		req.Count,
		req.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session request: %w", err)
	}
	return nil
}

func (r *SQLiteRequestRepo) List(ctx context.Context) ([]*domain.SessionRequest, error) {
	query := `SELECT id, client_id, duration_min, count, created_at
		FROM session_requests ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing session requests: %w", err)
	}
	defer rows.Close()
	return r.scanRequests(rows)
}

func (r *SQLiteRequestRepo) ListByClient(ctx context.Context, clientID string) ([]*domain.SessionRequest, error) {
	query := `SELECT id, client_id, duration_min, count, created_at
		FROM session_requests WHERE client_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing session requests by client: %w", err)
	}
	defer rows.Close()
	return r.scanRequests(rows)
}

func (r *SQLiteRequestRepo) DeleteByClient(ctx context.Context, clientID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_requests WHERE client_id = ?`, clientID); err != nil {
		return fmt.Errorf("deleting session requests: %w", err)
	}
	return nil
}

func (r *SQLiteRequestRepo) scanRequests(rows *sql.Rows) ([]*domain.SessionRequest, error) {
	var requests []*domain.SessionRequest
	for rows.Next() {
		var req domain.SessionRequest
		var createdAt string
		if err := rows.Scan(&req.ID, &req.ClientID, &req.DurationMin, &req.Count, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning session request: %w", err)
		}
		t, err := parseStoredTime("created_at", createdAt)
		if err != nil {
			return nil, err
		}
		req.CreatedAt = t
		requests = append(requests, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session requests: %w", err)
	}
	return requests, nil
}
