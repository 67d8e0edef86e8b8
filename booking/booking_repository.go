package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mentorhub/mentor-booking-backend/group"
)

type Repository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewRepository(pool *pgxpool.Pool, logger *zap.Logger) *Repository {
	return &Repository{pool: pool, logger: logger}
}

const bookingColumns = `id, schedule_id, mentor_id, group_id, status, available_status, point_pay, date_created, date_updated`

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID,
		&b.ScheduleID,
		&b.MentorID,
		&b.GroupID,
		&b.Status,
		&b.Availability,
		&b.PointPay,
		&b.DateCreated,
		&b.DateUpdated,
	)
	return b, err
}

func (r *Repository) GetActiveBookings(ctx context.Context) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
	        FROM booking
	        WHERE available_status='ACTIVE'
	        ORDER BY date_created;`

	return r.queryBookings(ctx, sql)
}

// GetHistoricalBookings returns terminal bookings: rejected, cancelled and
// confirmed ones whose window already elapsed.
func (r *Repository) GetHistoricalBookings(ctx context.Context) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
	        FROM booking
	        WHERE available_status='INACTIVE'
	        ORDER BY date_created;`

	return r.queryBookings(ctx, sql)
}

func (r *Repository) GetBookingsPerClass(ctx context.Context, classID string) ([]Booking, error) {
	sql := `SELECT b.id, b.schedule_id, b.mentor_id, b.group_id, b.status, b.available_status, b.point_pay, b.date_created, b.date_updated
	        FROM booking b
	        JOIN student_group g ON g.id = b.group_id
	        WHERE g.class_id=$1 AND b.available_status='ACTIVE'
	        ORDER BY b.date_created;`

	return r.queryBookings(ctx, sql, classID)
}

func (r *Repository) queryBookings(ctx context.Context, sql string, args ...any) ([]Booking, error) {
	rows, err := r.pool.Query(ctx, sql, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		b, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `SELECT ` + bookingColumns + ` FROM booking WHERE id=$1;`

	b, err := scanBooking(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return b, nil
}

func (r *Repository) GetLedgerEntries(ctx context.Context, bookingID string) ([]LedgerEntry, error) {
	sql := `SELECT id, booking_id, kind, points, date_created
	        FROM point_history
	        WHERE booking_id=$1
	        ORDER BY date_created;`

	rows, err := r.pool.Query(ctx, sql, bookingID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger of booking %v: %w", bookingID, err)
	}

	defer rows.Close()

	var entries []LedgerEntry

	for rows.Next() {
		var e LedgerEntry
		if err := rows.Scan(&e.ID, &e.BookingID, &e.Kind, &e.Points, &e.DateCreated); err != nil {
			return nil, fmt.Errorf("error scanning ledger row: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger rows: %w", err)
	}

	return entries, nil
}

func (r *Repository) InsertBooking(ctx context.Context, b Booking) (Booking, error) {
	b.ID = uuid.New().String()
	b.Status = StatusPending
	b.Availability = Active
	b.DateCreated = time.Now()
	b.DateUpdated = b.DateCreated

	sql, args, err := sq.Insert("booking").
		Columns("id", "schedule_id", "mentor_id", "group_id", "status", "available_status", "point_pay", "date_created", "date_updated").
		Values(b.ID, b.ScheduleID, b.MentorID, b.GroupID, b.Status, b.Availability, b.PointPay, b.DateCreated, b.DateUpdated).
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return Booking{}, fmt.Errorf("failed to build booking insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		r.logger.Error("SQL error", zap.Error(err), zap.String("query", sql))
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	return b, nil
}

// PerformTransition drives one lifecycle event through its full atomic unit:
// the booking status change, the ledger append and the balance adjustment
// either all commit or all roll back. The booking row is locked first, then
// the group row, always in that order. Lock waits are bounded; a timeout,
// deadlock or serialization failure surfaces as ErrBookingConflict so the
// caller can retry.
func (r *Repository) PerformTransition(ctx context.Context, id string, ev Event) (Booking, error) {
	conn, err := r.pool.Acquire(ctx)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to acquire connection: %w", err)
	}

	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})

	if err != nil {
		return Booking{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false

	defer func() {
		if !committed {
			tx.Rollback(ctx)
		}
	}()

	if _, err := tx.Exec(ctx, `SET LOCAL lock_timeout = '3s'`); err != nil {
		return Booking{}, fmt.Errorf("failed to set lock timeout: %w", err)
	}

	b, err := scanBooking(tx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM booking WHERE id=$1 FOR UPDATE`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, r.transitionError(id, ev, err)
	}

	_, memberCount, err := group.LockBalance(ctx, tx, b.GroupID)

	if err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			return Booking{}, err
		}
		return Booking{}, r.transitionError(id, ev, err)
	}

	if ev == EventAccept {
		taken, err := r.slotTaken(ctx, tx, b.ScheduleID, b.ID)

		if err != nil {
			return Booking{}, r.transitionError(id, ev, err)
		}

		if taken {
			return Booking{}, fmt.Errorf("schedule %v already has a confirmed booking: %w", b.ScheduleID, ErrBookingConflict)
		}
	}

	updated, effect, err := Transition(b, ev)

	if err != nil {
		return Booking{}, err
	}

	updated.DateUpdated = time.Now()

	if effect != nil {
		if err := r.appendLedgerEntry(ctx, tx, updated.ID, *effect); err != nil {
			return Booking{}, r.transitionError(id, ev, err)
		}

		if effect.Movement != 0 {
			if memberCount == 0 {
				return Booking{}, ErrEmptyGroup
			}

			err := group.ApplyBalanceDelta(ctx, tx, updated.GroupID, effect.TotalDelta(), effect.PerMemberDelta(memberCount))

			if err != nil {
				return Booking{}, r.transitionError(id, ev, err)
			}
		}
	}

	sql, args, err := sq.Update("booking").
		Set("status", updated.Status).
		Set("available_status", updated.Availability).
		Set("date_updated", updated.DateUpdated).
		Where(sq.Eq{"id": updated.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return Booking{}, fmt.Errorf("failed to build booking update: %w", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return Booking{}, r.transitionError(id, ev, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Booking{}, r.transitionError(id, ev, err)
	}

	committed = true

	return updated, nil
}

// slotTaken enforces the one-confirmed-booking-per-slot invariant inside the
// accept transaction, not as a prior unguarded read.
func (r *Repository) slotTaken(ctx context.Context, tx pgx.Tx, scheduleID, bookingID string) (bool, error) {
	var taken bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS(
		     SELECT 1 FROM booking
		     WHERE schedule_id=$1 AND id<>$2 AND status='CONFIRMED' AND available_status='ACTIVE'
		 )`, scheduleID, bookingID).Scan(&taken)

	if err != nil {
		return false, fmt.Errorf("failed to check schedule %v for confirmed bookings: %w", scheduleID, err)
	}

	return taken, nil
}

func (r *Repository) appendLedgerEntry(ctx context.Context, tx pgx.Tx, bookingID string, effect LedgerEffect) error {
	sql, args, err := sq.Insert("point_history").
		Columns("id", "booking_id", "kind", "points", "date_created").
		Values(uuid.New().String(), bookingID, effect.Kind, effect.Points, time.Now()).
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build ledger insert: %w", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to append ledger entry for booking %v: %w", bookingID, err)
	}

	return nil
}

// transitionError folds lock timeouts, deadlocks and serialization failures
// into ErrBookingConflict; everything else passes through wrapped.
func (r *Repository) transitionError(id string, ev Event, err error) error {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03":
			r.logger.Warn("concurrent booking transition",
				zap.String("booking", id),
				zap.Stringer("event", ev),
				zap.String("sqlstate", pgErr.Code),
			)
			return fmt.Errorf("concurrent transition on booking %v: %w", id, ErrBookingConflict)
		}
	}

	return fmt.Errorf("failed to %v booking %v: %w", ev, id, err)
}
