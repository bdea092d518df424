package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aidosk/ride-hail-api/internal/model"
)

// DriverRepo manages persistence for driver profiles.
type DriverRepo struct{ DB *sql.DB }

func NewDriverRepo(db *sql.DB) *DriverRepo { return &DriverRepo{DB: db} }

// Create inserts a driver and returns its ID.
func (r *DriverRepo) Create(ctx context.Context, d *model.Driver) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO drivers (name, vehicle_type, is_available, rating) VALUES (?,?,?,?)",
		d.Name, d.VehicleType, d.IsAvailable, d.Rating)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// List returns drivers ordered by id. With onlyAvailable it narrows to
// drivers currently marked available, the query the dispatch side uses to
// find candidates.
func (r *DriverRepo) List(ctx context.Context, onlyAvailable bool) ([]model.Driver, error) {
	q := "SELECT id,name,vehicle_type,is_available,rating,created_at FROM drivers"
	if onlyAvailable {
		q += " WHERE is_available=1"
	}
	q += " ORDER BY id"
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Driver
	for rows.Next() {
		var d model.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.VehicleType, &d.IsAvailable, &d.Rating, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Update applies the non-nil fields of patch to a driver. An empty patch
// reports ErrNoChange; zero affected rows reports ErrDriverNotFound.
func (r *DriverRepo) Update(ctx context.Context, id uint64, patch model.DriverPatch) error {
	sets := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)
	if patch.Name != nil {
		sets = append(sets, "name=?")
		args = append(args, *patch.Name)
	}
	if patch.VehicleType != nil {
		sets = append(sets, "vehicle_type=?")
		args = append(args, *patch.VehicleType)
	}
	if patch.IsAvailable != nil {
		sets = append(sets, "is_available=?")
		args = append(args, *patch.IsAvailable)
	}
	if patch.Rating != nil {
		sets = append(sets, "rating=?")
		args = append(args, *patch.Rating)
	}
	if len(sets) == 0 {
		return ErrNoChange
	}
	args = append(args, id)

	res, err := r.DB.ExecContext(ctx,
		"UPDATE drivers SET "+strings.Join(sets, ", ")+" WHERE id=?", args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDriverNotFound
	}
	return nil
}
