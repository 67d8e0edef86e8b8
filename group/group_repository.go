package group

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetActiveGroup returns an ACTIVE group together with its members and their
// current point balances.
func (r *Repository) GetActiveGroup(ctx context.Context, id string) (Group, error) {
	sql := `
			SELECT id, name, COALESCE(class_id, ''), total_point, available_status
			FROM student_group
			WHERE id=$1 AND available_status='ACTIVE';
		`

	var g Group
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&g.ID,
		&g.Name,
		&g.ClassID,
		&g.TotalPoint,
		&g.AvailableStatus,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Group{}, ErrGroupNotFound
	}

	if err != nil {
		return Group{}, fmt.Errorf("failed to fetch group with id %v: %w", id, err)
	}

	g.Members, err = r.getMembers(ctx, id)

	if err != nil {
		return Group{}, err
	}

	return g, nil
}

func (r *Repository) getMembers(ctx context.Context, groupID string) ([]Member, error) {
	sql := `
			SELECT student_id, COALESCE(full_name, ''), point
			FROM group_member
			WHERE group_id=$1
			ORDER BY student_id;
		`

	rows, err := r.pool.Query(ctx, sql, groupID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch members of group %v: %w", groupID, err)
	}

	defer rows.Close()

	var members []Member

	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.StudentID, &m.FullName, &m.Point); err != nil {
			return nil, fmt.Errorf("error scanning group member row: %w", err)
		}

		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group member rows: %w", err)
	}

	return members, nil
}

func (r *Repository) GetGroups(ctx context.Context) ([]Group, error) {
	sql := `
			SELECT id, name, COALESCE(class_id, ''), total_point, available_status
			FROM student_group
			WHERE available_status='ACTIVE'
			ORDER BY name;
		`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch groups: %w", err)
	}

	defer rows.Close()

	var groups []Group

	for rows.Next() {
		var g Group
		err := rows.Scan(&g.ID, &g.Name, &g.ClassID, &g.TotalPoint, &g.AvailableStatus)

		if err != nil {
			return nil, fmt.Errorf("error scanning group row: %w", err)
		}

		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group rows: %w", err)
	}

	return groups, nil
}

// LockBalance locks the group row for the rest of the enclosing transaction
// and returns the current total and member count. Callers must lock the
// booking row first to keep lock acquisition in a stable order.
func LockBalance(ctx context.Context, tx pgx.Tx, groupID string) (totalPoint, memberCount int, err error) {
	row := tx.QueryRow(ctx,
		`SELECT total_point, (SELECT COUNT(*) FROM group_member WHERE group_id=$1)
		 FROM student_group
		 WHERE id=$1 AND available_status='ACTIVE'
		 FOR UPDATE`, groupID)

	err = row.Scan(&totalPoint, &memberCount)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, ErrGroupNotFound
	}

	if err != nil {
		return 0, 0, fmt.Errorf("failed to lock balance of group %v: %w", groupID, err)
	}

	return totalPoint, memberCount, nil
}

// ApplyBalanceDelta adjusts the group total and every member balance inside
// the caller's transaction. The two updates always travel together with the
// ledger append that justifies them.
func ApplyBalanceDelta(ctx context.Context, tx pgx.Tx, groupID string, totalDelta, perMemberDelta int) error {
	sql, args, err := sq.Update("student_group").
		Set("total_point", sq.Expr("total_point + ?", totalDelta)).
		Where(sq.Eq{"id": groupID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build group balance update: %w", err)
	}

	tag, err := tx.Exec(ctx, sql, args...)

	if err != nil {
		return fmt.Errorf("failed to adjust total of group %v: %w", groupID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrGroupNotFound
	}

	sql, args, err = sq.Update("group_member").
		Set("point", sq.Expr("point + ?", perMemberDelta)).
		Where(sq.Eq{"group_id": groupID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build member balance update: %w", err)
	}

	_, err = tx.Exec(ctx, sql, args...)

	if err != nil {
		return fmt.Errorf("failed to adjust member points of group %v: %w", groupID, err)
	}

	return nil
}
