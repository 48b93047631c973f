package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rallypoint-app/rallypoint-backend/internal/users/domain"
)

// Repo provides persistence operations for users
type Repo struct {
	db *sql.DB
}

// New creates a new user repository
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a user. An empty email is stored as NULL.
func (r *Repo) Create(ctx context.Context, firstName, lastName, phone, email string) (int64, error) {
	const q = `
INSERT INTO users (first_name, last_name, phone, email)
VALUES ($1, $2, $3, nullif($4, ''))
RETURNING user_id;
`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, firstName, lastName, phone, email).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// List returns every user.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	const q = `
SELECT user_id, first_name, last_name, phone, coalesce(email, '')
FROM users
ORDER BY user_id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.User, 0, 16)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Phone, &u.Email); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// ListOptions returns every user formatted for a select input.
func (r *Repo) ListOptions(ctx context.Context) ([]domain.Option, error) {
	const q = `
SELECT user_id, first_name, last_name
FROM users
ORDER BY user_id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Option, 0, 16)
	for rows.Next() {
		var (
			id                  int64
			firstName, lastName string
		)
		if err := rows.Scan(&id, &firstName, &lastName); err != nil {
			return nil, err
		}
		out = append(out, domain.Option{ID: id, Label: domain.OptionLabel(id, firstName, lastName)})
	}
	return out, rows.Err()
}

// FirstName returns the first name of a user, or domain.ErrNotFound.
func (r *Repo) FirstName(ctx context.Context, userID int64) (string, error) {
	const q = `SELECT first_name FROM users WHERE user_id = $1;`

	var name string
	err := r.db.QueryRowContext(ctx, q, userID).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return name, nil
}

// ListGroups returns the groups a user belongs to. The user's first name is
// repeated on every row; users with no memberships produce zero rows.
func (r *Repo) ListGroups(ctx context.Context, userID int64) (string, []domain.UserGroup, error) {
	const q = `
SELECT u.first_name, g.group_id, coalesce(g.name, ''), coalesce(g.description, '')
FROM users u
INNER JOIN members m ON u.user_id = m.user_id
INNER JOIN groups g ON m.group_id = g.group_id
WHERE u.user_id = $1;
`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return "", nil, err
	}
	defer rows.Close()

	var firstName string
	out := make([]domain.UserGroup, 0, 8)
	for rows.Next() {
		var g domain.UserGroup
		if err := rows.Scan(&firstName, &g.GroupID, &g.Name, &g.Description); err != nil {
			return "", nil, err
		}
		out = append(out, g)
	}
	return firstName, out, rows.Err()
}
