package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Repository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewRepository(pool *pgxpool.Pool, logger *zap.Logger) *Repository {
	return &Repository{pool: pool, logger: logger}
}

func (r *Repository) InsertSchedule(ctx context.Context, s MentorSchedule) (MentorSchedule, error) {
	if !s.AvailableTo.After(s.AvailableFrom) {
		return MentorSchedule{}, ErrInvalidWindow
	}

	s.ID = uuid.New().String()
	s.AvailableStatus = "ACTIVE"
	s.DateCreated = time.Now()
	s.DateUpdated = s.DateCreated

	sql, args, err := sq.Insert("mentor_schedule").
		Columns("id", "mentor_id", "available_from", "available_to", "available_status", "date_created", "date_updated").
		Values(s.ID, s.MentorID, s.AvailableFrom, s.AvailableTo, s.AvailableStatus, s.DateCreated, s.DateUpdated).
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return MentorSchedule{}, fmt.Errorf("failed to build schedule insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		r.logger.Error("SQL error", zap.Error(err), zap.String("query", sql))
		return MentorSchedule{}, fmt.Errorf("failed to insert schedule: %w", err)
	}

	return s, nil
}

// GetActiveSchedule is the read contract the booking core consumes: it only
// ever sees ACTIVE windows.
func (r *Repository) GetActiveSchedule(ctx context.Context, id string) (MentorSchedule, error) {
	sql := `
			SELECT id, mentor_id, available_from, available_to, available_status, date_created, date_updated
			FROM mentor_schedule
			WHERE id=$1 AND available_status='ACTIVE';
		`

	var s MentorSchedule
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&s.ID,
		&s.MentorID,
		&s.AvailableFrom,
		&s.AvailableTo,
		&s.AvailableStatus,
		&s.DateCreated,
		&s.DateUpdated,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return MentorSchedule{}, ErrScheduleNotFound
	}

	if err != nil {
		return MentorSchedule{}, fmt.Errorf("failed to fetch schedule with id %v: %w", id, err)
	}

	return s, nil
}

func (r *Repository) GetActiveSchedules(ctx context.Context) ([]MentorSchedule, error) {
	sql := `
			SELECT id, mentor_id, available_from, available_to, available_status, date_created, date_updated
			FROM mentor_schedule
			WHERE available_status='ACTIVE'
			ORDER BY available_from;
		`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}

	defer rows.Close()

	var schedules []MentorSchedule

	for rows.Next() {
		var s MentorSchedule
		err := rows.Scan(
			&s.ID,
			&s.MentorID,
			&s.AvailableFrom,
			&s.AvailableTo,
			&s.AvailableStatus,
			&s.DateCreated,
			&s.DateUpdated,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning schedule row: %w", err)
		}

		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule rows: %w", err)
	}

	return schedules, nil
}

func (r *Repository) UpdateSchedule(ctx context.Context, s MentorSchedule) error {
	if !s.AvailableTo.After(s.AvailableFrom) {
		return ErrInvalidWindow
	}

	sql, args, err := sq.Update("mentor_schedule").
		Set("available_from", s.AvailableFrom).
		Set("available_to", s.AvailableTo).
		Set("date_updated", time.Now()).
		Where(sq.Eq{"id": s.ID, "available_status": "ACTIVE"}).
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build schedule update: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)

	if err != nil {
		r.logger.Error("SQL error", zap.Error(err), zap.String("query", sql))
		return fmt.Errorf("failed to update schedule '%v': %w", s.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// DeleteSchedule soft-deletes: the row stays for bookings that reference it.
func (r *Repository) DeleteSchedule(ctx context.Context, id string) error {
	sql, args, err := sq.Update("mentor_schedule").
		Set("available_status", "INACTIVE").
		Set("date_updated", time.Now()).
		Where(sq.Eq{"id": id, "available_status": "ACTIVE"}).
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build schedule delete: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)

	if err != nil {
		return fmt.Errorf("failed to delete schedule '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrScheduleNotFound
	}

	return nil
}
