package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dferrell/cadence/internal/app"
	"github.com/dferrell/cadence/internal/db"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
// Save writes the header plus all session and unplaced rows; run it inside a
// UnitOfWork so a failed write leaves no partial schedule behind.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

func (r *SQLiteScheduleRepo) Save(ctx context.Context, s *app.Schedule) error {
	query := `INSERT INTO schedules (id, generated_at, horizon_start, horizon_end, granularity_min, free_minutes)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.GeneratedAt.Format(time.RFC3339),
		s.HorizonStart.Format(time.RFC3339),
		s.HorizonEnd.Format(time.RFC3339),
		s.GranularityMin,
		s.FreeMinutes,
	)
	if err != nil {
		return fmt.Errorf("inserting schedule: %w", err)
	}

	for _, sess := range s.Sessions {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO scheduled_sessions (id, schedule_id, request_id, client_id, client_name, week_index, start_at, end_at, score)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			sess.ID, s.ID, sess.RequestID, sess.ClientID, sess.ClientName,
			sess.WeekIndex, sess.Start.Format(time.RFC3339), sess.End.Format(time.RFC3339), sess.Score,
		)
		if err != nil {
			return fmt.Errorf("inserting scheduled session: %w", err)
		}
	}

	for _, u := range s.Unplaced {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO unplaced_requests (schedule_id, request_id, client_id, client_name, week_index, reason, message)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
			s.ID, u.RequestID, u.ClientID, u.ClientName, u.WeekIndex, string(u.Reason), u.Message,
		)
		if err != nil {
			return fmt.Errorf("inserting unplaced request: %w", err)
		}
	}
	return nil
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*app.Schedule, error) {
	return r.getOne(ctx, `WHERE id = ?`, id)
}

func (r *SQLiteScheduleRepo) GetLatest(ctx context.Context) (*app.Schedule, error) {
	return r.getOne(ctx, `ORDER BY generated_at DESC, id DESC LIMIT 1`)
}

func (r *SQLiteScheduleRepo) getOne(ctx context.Context, clause string, args ...any) (*app.Schedule, error) {
	query := `SELECT id, generated_at, horizon_start, horizon_end, granularity_min, free_minutes
		FROM schedules ` + clause

	var s app.Schedule
	var generatedAt, horizonStart, horizonEnd string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &generatedAt, &horizonStart, &horizonEnd, &s.GranularityMin, &s.FreeMinutes,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule: %w", err)
	}
	if s.GeneratedAt, err = parseStoredTime("generated_at", generatedAt); err != nil {
		return nil, err
	}
	if s.HorizonStart, err = parseStoredTime("horizon_start", horizonStart); err != nil {
		return nil, err
	}
	if s.HorizonEnd, err = parseStoredTime("horizon_end", horizonEnd); err != nil {
		return nil, err
	}

	if err := r.loadSessions(ctx, &s); err != nil {
		return nil, err
	}
	if err := r.loadUnplaced(ctx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteScheduleRepo) loadSessions(ctx context.Context, s *app.Schedule) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, request_id, client_id, client_name, week_index, start_at, end_at, score
			FROM scheduled_sessions WHERE schedule_id = ? ORDER BY start_at, id`, s.ID)
	if err != nil {
		return fmt.Errorf("loading scheduled sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sess app.ScheduledSession
		var start, end string
		if err := rows.Scan(&sess.ID, &sess.RequestID, &sess.ClientID, &sess.ClientName,
			&sess.WeekIndex, &start, &end, &sess.Score); err != nil {
			return fmt.Errorf("scanning scheduled session: %w", err)
		}
		if sess.Start, err = parseStoredTime("start_at", start); err != nil {
			return err
		}
		if sess.End, err = parseStoredTime("end_at", end); err != nil {
			return err
		}
		s.Sessions = append(s.Sessions, sess)
	}
	return rows.Err()
}

func (r *SQLiteScheduleRepo) loadUnplaced(ctx context.Context, s *app.Schedule) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT request_id, client_id, client_name, week_index, reason, message
			FROM unplaced_requests WHERE schedule_id = ? ORDER BY week_index, request_id`, s.ID)
	if err != nil {
		return fmt.Errorf("loading unplaced requests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var u app.UnplacedRequest
		var reason string
		if err := rows.Scan(&u.RequestID, &u.ClientID, &u.ClientName, &u.WeekIndex, &reason, &u.Message); err != nil {
			return fmt.Errorf("scanning unplaced request: %w", err)
		}
		u.Reason = app.UnscheduledReason(reason)
		s.Unplaced = append(s.Unplaced, u)
	}
	return rows.Err()
}

func (r *SQLiteScheduleRepo) List(ctx context.Context, limit int) ([]ScheduleSummary, error) {
	query := `SELECT s.id, s.generated_at, s.horizon_start, s.horizon_end,
			(SELECT COUNT(*) FROM scheduled_sessions ss WHERE ss.schedule_id = s.id),
			(SELECT COUNT(*) FROM unplaced_requests ur WHERE ur.schedule_id = s.id)
		FROM schedules s ORDER BY s.generated_at DESC, s.id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	defer rows.Close()

	var out []ScheduleSummary
	for rows.Next() {
		var sum ScheduleSummary
		if err := rows.Scan(&sum.ID, &sum.GeneratedAt, &sum.HorizonStart, &sum.HorizonEnd,
			&sum.Sessions, &sum.Unplaced); err != nil {
			return nil, fmt.Errorf("scanning schedule summary: %w", err)
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedules: %w", err)
	}
	return out, nil
}

func (r *SQLiteScheduleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("schedule %s: %w", id, ErrNotFound)
	}
	return nil
}
