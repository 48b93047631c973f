package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/rallypoint-app/rallypoint-backend/internal/groups/domain"
)

// Repo provides persistence operations for groups and memberships
type Repo struct {
	db *sql.DB
}

// New creates a new group repository
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// RefID parses a group reference for the numeric arm of id-or-shareCode
// lookups. Non-numeric references (share codes) parse to 0, which never
// matches a real group id.
func RefID(ref string) int64 {
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// CreateInput carries a new group and its initial member ids.
type CreateInput struct {
	Name         string
	Description  string
	ActionToTake string
	ActivityID   int64
	UserIDs      []int64
}

// CreateWithMembers inserts the group plus one member row per user id in a
// single transaction. Any failure, including commit, rolls the whole group
// back; no partial state is left visible.
func (r *Repo) CreateWithMembers(ctx context.Context, in CreateInput) (int64, error) {
	if len(in.UserIDs) == 0 {
		return 0, fmt.Errorf("at least one member is required")
	}

	shareCode, err := domain.NewShareCode()
	if err != nil {
		return 0, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	const insertGroup = `
INSERT INTO groups (name, description, action_to_take, share_code, activity_id)
VALUES (nullif($1, ''), nullif($2, ''), $3, $4, nullif($5, 0))
RETURNING group_id;
`
	var groupID int64
	err = tx.QueryRowContext(ctx, insertGroup,
		in.Name, in.Description, in.ActionToTake, shareCode, in.ActivityID,
	).Scan(&groupID)
	if err != nil {
		return 0, err
	}

	// One multi-row insert for all members.
	var sb strings.Builder
	sb.WriteString(`INSERT INTO members (user_id, group_id, accounted_for) VALUES `)
	args := make([]any, 0, len(in.UserIDs)*3)
	for i, userID := range in.UserIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3)
		args = append(args, userID, groupID, true)
	}
	sb.WriteString(";")

	if _, err := tx.ExecContext(ctx, sb.String(), args...); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return groupID, nil
}

// DetailRows returns the member join rows for a group looked up by id or
// share code. A group with no members yields zero rows.
func (r *Repo) DetailRows(ctx context.Context, ref string) ([]domain.DetailRow, error) {
	const q = `
SELECT
  u.user_id,
  u.first_name,
  u.last_name,
  coalesce(g.name, ''),
  coalesce(g.description, ''),
  g.action_to_take,
  g.share_code,
  coalesce(g.activity_id, 0)
FROM groups g
INNER JOIN members m ON g.group_id = m.group_id
INNER JOIN users u ON m.user_id = u.user_id
WHERE g.group_id = $1 OR g.share_code = $2;
`
	rows, err := r.db.QueryContext(ctx, q, RefID(ref), ref)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.DetailRow, 0, 8)
	for rows.Next() {
		var row domain.DetailRow
		err := rows.Scan(&row.UserID, &row.FirstName, &row.LastName,
			&row.Name, &row.Description, &row.ActionToTake, &row.ShareCode, &row.ActivityID)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ActivityName returns the name of the activity a group points at.
func (r *Repo) ActivityName(ctx context.Context, activityID int64) (string, error) {
	const q = `SELECT coalesce(name, '') FROM activities WHERE activity_id = $1;`

	var name string
	if err := r.db.QueryRowContext(ctx, q, activityID).Scan(&name); err != nil {
		return "", err
	}
	return name, nil
}

// Update rewrites a group's editable fields, matched by id or share code.
// Empty name/description and a zero activity id are stored as NULL.
func (r *Repo) Update(ctx context.Context, ref, name, description, actionToTake string, activityID int64) error {
	const q = `
UPDATE groups
SET name = nullif($1, ''),
    description = nullif($2, ''),
    action_to_take = $3,
    activity_id = nullif($4, 0)
WHERE group_id = $5 OR share_code = $6;
`
	_, err := r.db.ExecContext(ctx, q, name, description, actionToTake, activityID, RefID(ref), ref)
	return err
}

// List returns every group.
func (r *Repo) List(ctx context.Context) ([]domain.Group, error) {
	const q = `
SELECT group_id, coalesce(name, ''), coalesce(description, ''), action_to_take, share_code, coalesce(activity_id, 0)
FROM groups
ORDER BY group_id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Group, 0, 16)
	for rows.Next() {
		var g domain.Group
		err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.ActionToTake, &g.ShareCode, &g.ActivityID)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// UserMemberships returns one row per group the user belongs to, or a single
// row with GroupID 0 when the user exists but has no memberships. A missing
// user yields zero rows.
func (r *Repo) UserMemberships(ctx context.Context, userID int64) ([]domain.Membership, error) {
	const q = `
SELECT u.user_id, coalesce(m.group_id, 0)
FROM users u
LEFT JOIN members m ON u.user_id = m.user_id
WHERE u.user_id = $1;
`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Membership, 0, 4)
	for rows.Next() {
		var ms domain.Membership
		if err := rows.Scan(&ms.UserID, &ms.GroupID); err != nil {
			return nil, err
		}
		out = append(out, ms)
	}
	return out, rows.Err()
}

// AddMember inserts a membership row with accountedFor defaulted to true.
func (r *Repo) AddMember(ctx context.Context, userID, groupID int64) error {
	const q = `INSERT INTO members (user_id, group_id, accounted_for) VALUES ($1, $2, $3);`
	_, err := r.db.ExecContext(ctx, q, userID, groupID, true)
	return err
}

// RemoveMember deletes a membership row; removing an absent row is not an error.
func (r *Repo) RemoveMember(ctx context.Context, groupID, userID int64) error {
	const q = `DELETE FROM members WHERE user_id = $1 AND group_id = $2;`
	_, err := r.db.ExecContext(ctx, q, userID, groupID)
	return err
}
