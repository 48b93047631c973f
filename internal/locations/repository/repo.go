package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rallypoint-app/rallypoint-backend/internal/locations/domain"
)

// Repo provides persistence operations for locations
type Repo struct {
	db *sql.DB
}

// New creates a new location repository
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const locationColumns = `location_id, name, address1, coalesce(address2, ''), city, state, zip_code, latitude, longitude`

func scanLocation(row interface{ Scan(...any) error }, loc *domain.Location) error {
	return row.Scan(&loc.ID, &loc.Name, &loc.Address1, &loc.Address2,
		&loc.City, &loc.State, &loc.ZipCode, &loc.Latitude, &loc.Longitude)
}

// List returns every location.
func (r *Repo) List(ctx context.Context) ([]domain.Location, error) {
	q := `SELECT ` + locationColumns + ` FROM locations ORDER BY location_id;`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Location, 0, 16)
	for rows.Next() {
		var loc domain.Location
		if err := scanLocation(rows, &loc); err != nil {
			return nil, err
		}
		out = append(out, loc)
	}
	return out, rows.Err()
}

// Get returns a single location, or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, id int64) (*domain.Location, error) {
	q := `SELECT ` + locationColumns + ` FROM locations WHERE location_id = $1;`

	var loc domain.Location
	if err := scanLocation(r.db.QueryRowContext(ctx, q, id), &loc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &loc, nil
}

// Create inserts a location. An empty second address line is stored as NULL.
func (r *Repo) Create(ctx context.Context, loc domain.Location) (int64, error) {
	const q = `
INSERT INTO locations (name, address1, address2, city, state, zip_code, latitude, longitude)
VALUES ($1, $2, nullif($3, ''), $4, $5, $6, $7, $8)
RETURNING location_id;
`
	var id int64
	err := r.db.QueryRowContext(ctx, q,
		loc.Name, loc.Address1, loc.Address2, loc.City, loc.State, loc.ZipCode, loc.Latitude, loc.Longitude,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListRefs returns every location as a select-input reference.
func (r *Repo) ListRefs(ctx context.Context) ([]domain.Ref, error) {
	const q = `SELECT location_id, name FROM locations ORDER BY location_id;`
	return r.listRefs(ctx, q)
}

// ListRefsExcept returns every location except the given one, for
// reassignment selects where the current location is already shown.
func (r *Repo) ListRefsExcept(ctx context.Context, locationID int64) ([]domain.Ref, error) {
	const q = `SELECT location_id, name FROM locations WHERE location_id <> $1 ORDER BY location_id;`
	return r.listRefs(ctx, q, locationID)
}

func (r *Repo) listRefs(ctx context.Context, q string, args ...any) ([]domain.Ref, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Ref, 0, 16)
	for rows.Next() {
		var ref domain.Ref
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}
