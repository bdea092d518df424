package repository

import (
	"context"
	"database/sql"

	"github.com/aidosk/ride-hail-api/internal/model"
)

// RideRepo manages persistence for ride requests.
type RideRepo struct{ DB *sql.DB }

func NewRideRepo(db *sql.DB) *RideRepo { return &RideRepo{DB: db} }

// Create inserts a ride and returns its ID. Status and requested_at are set
// by the caller (handlers always start rides as REQUESTED with a server-side
// timestamp).
func (r *RideRepo) Create(ctx context.Context, ride *model.Ride) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO rides (customer_id, pickup, destination, status, requested_at) VALUES (?,?,?,?,?)",
		ride.CustomerID, ride.Pickup, ride.Destination, string(ride.Status), ride.RequestedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// List returns all rides ordered by id.
func (r *RideRepo) List(ctx context.Context) ([]model.Ride, error) {
	return r.list(ctx,
		"SELECT id,customer_id,IFNULL(driver_id,0),pickup,destination,status,requested_at FROM rides ORDER BY id")
}

// ListByCustomer returns the rides requested by one customer.
func (r *RideRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]model.Ride, error) {
	return r.list(ctx,
		"SELECT id,customer_id,IFNULL(driver_id,0),pickup,destination,status,requested_at FROM rides WHERE customer_id=? ORDER BY id",
		customerID)
}

func (r *RideRepo) list(ctx context.Context, q string, args ...interface{}) ([]model.Ride, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Ride
	for rows.Next() {
		var ride model.Ride
		if err := rows.Scan(&ride.ID, &ride.CustomerID, &ride.DriverID, &ride.Pickup,
			&ride.Destination, &ride.Status, &ride.RequestedAt); err != nil {
			return nil, err
		}
		out = append(out, ride)
	}
	return out, rows.Err()
}

// UpdateStatus sets the status of a ride. Zero affected rows is reported as
// ErrRideNotFound.
func (r *RideRepo) UpdateStatus(ctx context.Context, id uint64, status model.RideStatus) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE rides SET status=? WHERE id=?", string(status), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRideNotFound
	}
	return nil
}

// Delete removes a ride by id.
func (r *RideRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM rides WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRideNotFound
	}
	return nil
}
