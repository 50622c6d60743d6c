package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dferrell/cadence/internal/db"
	"github.com/dferrell/cadence/internal/domain"
)

// SQLiteClientRepo implements ClientRepo using a SQLite database.
type SQLiteClientRepo struct {
	db db.DBTX
}

// NewSQLiteClientRepo creates a new SQLiteClientRepo.
func NewSQLiteClientRepo(conn db.DBTX) *SQLiteClientRepo {
	return &SQLiteClientRepo{db: conn}
}

func (r *SQLiteClientRepo) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (id, name, email, location, default_duration_min, priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Email,
		string(c.Location),
		c.DefaultDurationMin,
		c.Priority,
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting client: %w", err)
	}
	return r.writeDetails(ctx, c)
}

func (r *SQLiteClientRepo) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET name = ?, email = ?, location = ?, default_duration_min = ?,
		priority = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Email,
		string(c.Location),
		c.DefaultDurationMin,
		c.Priority,
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("client %s: %w", c.ID, ErrNotFound)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM client_preferences WHERE client_id = ?`, c.ID); err != nil {
		return fmt.Errorf("clearing preferences: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM client_blocked_dates WHERE client_id = ?`, c.ID); err != nil {
		return fmt.Errorf("clearing blocked dates: %w", err)
	}
	return r.writeDetails(ctx, c)
}

// writeDetails inserts the preference and blocked-date child rows.
func (r *SQLiteClientRepo) writeDetails(ctx context.Context, c *domain.Client) error {
	for _, p := range c.Preferences {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO client_preferences (client_id, weekdays, start_min, end_min, min_gap_min, weight)
				VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, joinWeekdays(p.Weekdays), p.Window.StartMin, p.Window.EndMin, p.MinGapMin, p.Weight,
		)
		if err != nil {
			return fmt.Errorf("inserting preference: %w", err)
		}
	}
	for _, d := range c.BlockedDates {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO client_blocked_dates (client_id, day) VALUES (?, ?)`,
			c.ID, d.Format(dateLayout),
		)
		if err != nil {
			return fmt.Errorf("inserting blocked date: %w", err)
		}
	}
	return nil
}

func (r *SQLiteClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return r.getOne(ctx, `WHERE id = ?`, id)
}

func (r *SQLiteClientRepo) GetByName(ctx context.Context, name string) (*domain.Client, error) {
	return r.getOne(ctx, `WHERE name = ? COLLATE NOCASE`, name)
}

func (r *SQLiteClientRepo) getOne(ctx context.Context, where string, arg any) (*domain.Client, error) {
	query := `SELECT id, name, email, location, default_duration_min, priority, created_at, updated_at
		FROM clients ` + where
	c, err := r.scanClient(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		return nil, err
	}
	if err := r.loadDetails(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *SQLiteClientRepo) List(ctx context.Context) ([]*domain.Client, error) {
	query := `SELECT id, name, email, location, default_duration_min, priority, created_at, updated_at
		FROM clients ORDER BY name COLLATE NOCASE, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		c, err := r.scanClientRow(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clients: %w", err)
	}

	for _, c := range clients {
		if err := r.loadDetails(ctx, c); err != nil {
			return nil, err
		}
	}
	return clients, nil
}

func (r *SQLiteClientRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("client %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteClientRepo) scanClient(row *sql.Row) (*domain.Client, error) {
	var c domain.Client
	var location, createdAt, updatedAt string
	err := row.Scan(&c.ID, &c.Name, &c.Email, &location, &c.DefaultDurationMin, &c.Priority, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("client: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning client: %w", err)
	}
	return r.populateClient(&c, location, createdAt, updatedAt)
}

func (r *SQLiteClientRepo) scanClientRow(rows *sql.Rows) (*domain.Client, error) {
	var c domain.Client
	var location, createdAt, updatedAt string
	err := rows.Scan(&c.ID, &c.Name, &c.Email, &location, &c.DefaultDurationMin, &c.Priority, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("scanning client row: %w", err)
	}
	return r.populateClient(&c, location, createdAt, updatedAt)
}

func (r *SQLiteClientRepo) populateClient(c *domain.Client, location, createdAt, updatedAt string) (*domain.Client, error) {
	c.Location = domain.Location(location)
	var err error
	if c.CreatedAt, err = parseStoredTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseStoredTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

// loadDetails attaches preference and blocked-date rows to a client.
func (r *SQLiteClientRepo) loadDetails(ctx context.Context, c *domain.Client) error {
	prefRows, err := r.db.QueryContext(ctx,
		`SELECT weekdays, start_min, end_min, min_gap_min, weight
			FROM client_preferences WHERE client_id = ? ORDER BY id`, c.ID)
	if err != nil {
		return fmt.Errorf("loading preferences: %w", err)
	}
	defer prefRows.Close()

	for prefRows.Next() {
		var p domain.Preference
		var weekdays string
		if err := prefRows.Scan(&weekdays, &p.Window.StartMin, &p.Window.EndMin, &p.MinGapMin, &p.Weight); err != nil {
			return fmt.Errorf("scanning preference: %w", err)
		}
		if p.Weekdays, err = splitWeekdays(weekdays); err != nil {
			return err
		}
		c.Preferences = append(c.Preferences, p)
	}
	if err := prefRows.Err(); err != nil {
		return fmt.Errorf("iterating preferences: %w", err)
	}

	dateRows, err := r.db.QueryContext(ctx,
		`SELECT day FROM client_blocked_dates WHERE client_id = ? ORDER BY day`, c.ID)
	if err != nil {
		return fmt.Errorf("loading blocked dates: %w", err)
	}
	defer dateRows.Close()

	for dateRows.Next() {
		var day string
		if err := dateRows.Scan(&day); err != nil {
			return fmt.Errorf("scanning blocked date: %w", err)
		}
		t, err := time.Parse(dateLayout, day)
		if err != nil {
			return fmt.Errorf("parsing blocked date: %w", err)
		}
		c.BlockedDates = append(c.BlockedDates, t)
	}
	return dateRows.Err()
}
