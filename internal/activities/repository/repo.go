package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rallypoint-app/rallypoint-backend/internal/activities/domain"
)

// Repo provides persistence operations for activities and their contacts
type Repo struct {
	db *sql.DB
}

// New creates a new activity repository
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// ListOptions returns activities formatted for a select input. The inner
// join drops any activity whose location row is missing.
func (r *Repo) ListOptions(ctx context.Context) ([]domain.Option, error) {
	const q = `
SELECT a.activity_id, coalesce(a.name, ''), a.start_time, l.latitude, l.longitude
FROM activities a
INNER JOIN locations l ON a.location_id = l.location_id
ORDER BY a.activity_id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Option, 0, 16)
	for rows.Next() {
		var (
			id       int64
			name     string
			start    time.Time
			lat, lng float64
		)
		if err := rows.Scan(&id, &name, &start, &lat, &lng); err != nil {
			return nil, err
		}
		out = append(out, domain.Option{ID: id, Label: domain.OptionLabel(name, start, lat, lng)})
	}
	return out, rows.Err()
}

// ListRows returns the activity list joined with the place name.
func (r *Repo) ListRows(ctx context.Context) ([]domain.ListRow, error) {
	const q = `
SELECT a.activity_id, coalesce(a.name, ''), a.start_time, a.end_time, a.risk, l.name AS place
FROM activities a
INNER JOIN locations l ON a.location_id = l.location_id
ORDER BY a.activity_id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ListRow, 0, 16)
	for rows.Next() {
		var row domain.ListRow
		if err := rows.Scan(&row.ID, &row.Name, &row.StartTime, &row.EndTime, &row.Risk, &row.Place); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// DetailRow is an activity joined with its location name.
type DetailRow struct {
	Location  string
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Risk      string
}

// GetDetail returns one activity with its location name, or domain.ErrNotFound.
func (r *Repo) GetDetail(ctx context.Context, activityID int64) (*DetailRow, error) {
	const q = `
SELECT l.name AS location, coalesce(a.name, ''), a.start_time, a.end_time, a.risk
FROM activities a
INNER JOIN locations l ON a.location_id = l.location_id
WHERE a.activity_id = $1;
`
	var row DetailRow
	err := r.db.QueryRowContext(ctx, q, activityID).
		Scan(&row.Location, &row.Name, &row.StartTime, &row.EndTime, &row.Risk)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// EditRow carries the edit-form fields, with times pre-formatted for
// datetime-local inputs.
type EditRow struct {
	Location   string
	LocationID int64
	Name       string
	StartTime  string
	EndTime    string
	Risk       string
}

// GetEdit returns the edit-form row for an activity, or domain.ErrNotFound.
func (r *Repo) GetEdit(ctx context.Context, activityID int64) (*EditRow, error) {
	const q = `
SELECT l.name AS location, l.location_id, coalesce(a.name, ''), a.start_time, a.end_time, a.risk
FROM activities a
INNER JOIN locations l ON a.location_id = l.location_id
WHERE a.activity_id = $1;
`
	var (
		row        EditRow
		start, end time.Time
	)
	err := r.db.QueryRowContext(ctx, q, activityID).
		Scan(&row.Location, &row.LocationID, &row.Name, &start, &end, &row.Risk)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	row.StartTime = start.Format(domain.EditTimeLayout)
	row.EndTime = end.Format(domain.EditTimeLayout)
	return &row, nil
}

// ListContacts returns the contacts of an activity in insertion order.
func (r *Repo) ListContacts(ctx context.Context, activityID int64) ([]domain.Contact, error) {
	const q = `
SELECT u.user_id, u.first_name, u.last_name, u.phone
FROM activities a
INNER JOIN contacts c ON a.activity_id = c.activity_id
INNER JOIN users u ON u.user_id = c.user_id
WHERE a.activity_id = $1;
`
	rows, err := r.db.QueryContext(ctx, q, activityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Contact, 0, 4)
	for rows.Next() {
		var ct domain.Contact
		if err := rows.Scan(&ct.UserID, &ct.FirstName, &ct.LastName, &ct.Phone); err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	return out, rows.Err()
}

// CreateInput carries the fields of a new activity and its initial contact.
type CreateInput struct {
	Name       string
	StartTime  time.Time
	EndTime    time.Time
	Risk       string
	LocationID int64
	UserID     int64
}

// CreateWithContact inserts an activity and its initial contact row in one
// transaction, so a contact-insert failure never leaves an orphaned activity.
func (r *Repo) CreateWithContact(ctx context.Context, in CreateInput) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	const insertActivity = `
INSERT INTO activities (name, start_time, end_time, risk, location_id)
VALUES (nullif($1, ''), $2, $3, $4, $5)
RETURNING activity_id;
`
	var activityID int64
	err = tx.QueryRowContext(ctx, insertActivity, in.Name, in.StartTime, in.EndTime, in.Risk, in.LocationID).
		Scan(&activityID)
	if err != nil {
		return 0, err
	}

	const insertContact = `INSERT INTO contacts (user_id, activity_id) VALUES ($1, $2);`
	if _, err := tx.ExecContext(ctx, insertContact, in.UserID, activityID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return activityID, nil
}

// Update rewrites an activity's fields.
func (r *Repo) Update(ctx context.Context, activityID int64, name string, start, end time.Time, risk string, locationID int64) error {
	const q = `
UPDATE activities
SET name = nullif($1, ''), start_time = $2, end_time = $3, risk = $4, location_id = $5
WHERE activity_id = $6;
`
	_, err := r.db.ExecContext(ctx, q, name, start, end, risk, locationID, activityID)
	return err
}

// AddContact inserts a contact row. No duplicate check is performed.
func (r *Repo) AddContact(ctx context.Context, userID, activityID int64) error {
	const q = `INSERT INTO contacts (user_id, activity_id) VALUES ($1, $2);`
	_, err := r.db.ExecContext(ctx, q, userID, activityID)
	return err
}

// RemoveContact deletes a contact row; removing an absent row is not an error.
func (r *Repo) RemoveContact(ctx context.Context, userID, activityID int64) error {
	const q = `DELETE FROM contacts WHERE user_id = $1 AND activity_id = $2;`
	_, err := r.db.ExecContext(ctx, q, userID, activityID)
	return err
}
