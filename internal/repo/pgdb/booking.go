package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dealership-api/internal/entity"
	"dealership-api/internal/repo/repo_errors"
	"dealership-api/pkg/postgres"

	"github.com/google/uuid"
)

type BookingRepo struct {
	*postgres.Postgres
}

func NewBookingRepo(pgdb *postgres.Postgres) *BookingRepo {
	return &BookingRepo{pgdb}
}

func (r *BookingRepo) CreateBooking(ctx context.Context, input *entity.CreateBookingInput) (uuid.UUID, error) {
	createBookingSql, args, _ := r.SqlBuilder.
		Insert("booking").
		Columns("customer_name", "customer_phone", "vehicle_id", "kind", "requested_at", "status").
		Values(input.CustomerName, input.CustomerPhone, input.VehicleId, input.Kind,
			input.RequestedAt, input.Status).
		Suffix("RETURNING id").
		ToSql()

	var bookingId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createBookingSql, args...).Scan(&bookingId); err != nil {
		return uuid.Nil, err
	}

	return bookingId, nil
}

func (r *BookingRepo) GetBookingById(ctx context.Context, id string) (*entity.Booking, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getBookingSql, args, _ := r.SqlBuilder.
		Select("id, customer_name, customer_phone, vehicle_id, kind, requested_at, status, created_at").
		From("booking").
		Where("id = ?", uuidForm).
		ToSql()

	var b entity.Booking
	var requestedAt, createdAt time.Time
	row := r.Database.QueryRowContext(ctx, getBookingSql, args...)
	err = row.Scan(&b.Id, &b.CustomerName, &b.CustomerPhone, &b.VehicleId, &b.Kind,
		&requestedAt, &b.Status, &createdAt)
	b.RequestedAt = requestedAt.Format(time.RFC3339)
	b.CreatedAt = createdAt.Format(time.RFC3339)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &b, nil
}

func (r *BookingRepo) GetBookings(ctx context.Context, pg *entity.PaginationInput) ([]entity.Booking, error) {
	getBookingsSql, args, _ := r.SqlBuilder.
		Select("id, customer_name, customer_phone, vehicle_id, kind, requested_at, status, created_at").
		From("booking").
		OrderBy("created_at DESC").
		Limit(uint64(pg.Limit)).
		Offset(uint64(pg.Offset)).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getBookingsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]entity.Booking, 0)
	for rows.Next() {
		var b entity.Booking
		var requestedAt, createdAt time.Time
		if err := rows.Scan(&b.Id, &b.CustomerName, &b.CustomerPhone, &b.VehicleId, &b.Kind,
			&requestedAt, &b.Status, &createdAt); err != nil {
			return nil, err
		}
		b.RequestedAt = requestedAt.Format(time.RFC3339)
		b.CreatedAt = createdAt.Format(time.RFC3339)
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *BookingRepo) UpdateBookingStatusById(ctx context.Context, id string, newStatus string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	updateStatusSql, args, _ := r.SqlBuilder.
		Update("booking").
		Set("status", newStatus).
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, updateStatusSql, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}
