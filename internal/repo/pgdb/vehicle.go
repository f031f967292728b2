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

type VehicleRepo struct {
	*postgres.Postgres
}

func NewVehicleRepo(pgdb *postgres.Postgres) *VehicleRepo {
	return &VehicleRepo{pgdb}
}

func (r *VehicleRepo) CreateVehicle(ctx context.Context, input *entity.CreateVehicleInput) (uuid.UUID, error) {
	createVehicleSql, args, _ := r.SqlBuilder.
		Insert("vehicle").
		Columns("make", "model", "year", "mileage", "fuel_type", "price", "image_url", "description").
		Values(input.Make, input.Model, input.Year, input.Mileage, input.FuelType,
			input.Price, input.ImageUrl, input.Description).
		Suffix("RETURNING id").
		ToSql()

	var vehicleId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createVehicleSql, args...).Scan(&vehicleId); err != nil {
		return uuid.Nil, err
	}

	return vehicleId, nil
}

func (r *VehicleRepo) GetVehicleById(ctx context.Context, id string) (*entity.Vehicle, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getVehicleSql, args, _ := r.SqlBuilder.
		Select("id, make, model, year, mileage, fuel_type, price, image_url, description, created_at").
		From("vehicle").
		Where("id = ?", uuidForm).
		ToSql()

	var v entity.Vehicle
	var createdAt time.Time
	row := r.Database.QueryRowContext(ctx, getVehicleSql, args...)
	err = row.Scan(&v.Id, &v.Make, &v.Model, &v.Year, &v.Mileage, &v.FuelType,
		&v.Price, &v.ImageUrl, &v.Description, &createdAt)
	v.CreatedAt = createdAt.Format(time.RFC3339)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &v, nil
}

func (r *VehicleRepo) GetVehicles(ctx context.Context, pg *entity.PaginationInput) ([]entity.Vehicle, error) {
	getVehiclesSql, args, _ := r.SqlBuilder.
		Select("id, make, model, year, mileage, fuel_type, price, image_url, description, created_at").
		From("vehicle").
		OrderBy("created_at DESC").
		Limit(uint64(pg.Limit)).
		Offset(uint64(pg.Offset)).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getVehiclesSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]entity.Vehicle, 0)
	for rows.Next() {
		var v entity.Vehicle
		var createdAt time.Time
		if err := rows.Scan(&v.Id, &v.Make, &v.Model, &v.Year, &v.Mileage, &v.FuelType,
			&v.Price, &v.ImageUrl, &v.Description, &createdAt); err != nil {
			return nil, err
		}
		v.CreatedAt = createdAt.Format(time.RFC3339)
		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}

func (r *VehicleRepo) EditVehicleById(ctx context.Context, id string, input *entity.EditVehicleInput) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	update := r.SqlBuilder.Update("vehicle").Where("id = ?", uuidForm)
	if input.Make != nil {
		update = update.Set("make", *input.Make)
	}
	if input.Model != nil {
		update = update.Set("model", *input.Model)
	}
	if input.Year != nil {
		update = update.Set("year", *input.Year)
	}
	if input.Mileage != nil {
		update = update.Set("mileage", *input.Mileage)
	}
	if input.FuelType != nil {
		update = update.Set("fuel_type", *input.FuelType)
	}
	if input.Price != nil {
		update = update.Set("price", *input.Price)
	}
	if input.ImageUrl != nil {
		update = update.Set("image_url", *input.ImageUrl)
	}
	if input.Description != nil {
		update = update.Set("description", *input.Description)
	}

	editVehicleSql, args, err := update.ToSql()
	if err != nil {
		return err
	}

	result, err := r.Database.ExecContext(ctx, editVehicleSql, args...)
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

func (r *VehicleRepo) DeleteVehicleById(ctx context.Context, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	deleteVehicleSql, args, _ := r.SqlBuilder.
		Delete("vehicle").
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, deleteVehicleSql, args...)
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
