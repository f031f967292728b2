package service

import (
	"context"
	"errors"
	"strings"

	"dealership-api/internal/entity"
	"dealership-api/internal/repo"
	"dealership-api/internal/repo/repo_errors"
)

type VehicleService struct {
	vehicleRepo repo.Vehicle
}

func NewVehicleService(repos *repo.Repositories) *VehicleService {
	return &VehicleService{vehicleRepo: repos.Vehicle}
}

func (s *VehicleService) CreateVehicle(ctx context.Context, input *entity.CreateVehicleInput) (*entity.VehicleOutputModel, error) {
	if strings.TrimSpace(input.Make) == "" || strings.TrimSpace(input.Model) == "" {
		return nil, ErrVehicleNameRequired
	}

	id, err := s.vehicleRepo.CreateVehicle(ctx, input)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetVehicleById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapVehicle(vehicle), nil
}

func (s *VehicleService) GetVehicleById(ctx context.Context, vehicleId string) (*entity.VehicleOutputModel, error) {
	vehicle, err := s.vehicleRepo.GetVehicleById(ctx, vehicleId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}

		return nil, err
	}

	return mapVehicle(vehicle), nil
}

func (s *VehicleService) GetVehicles(ctx context.Context, pg *entity.PaginationInput) ([]entity.VehicleOutputModel, error) {
	vehicles, err := s.vehicleRepo.GetVehicles(ctx, pg)
	if err != nil {
		return nil, err
	}

	return mapVehicles(vehicles), nil
}

func (s *VehicleService) EditVehicleById(ctx context.Context, vehicleId string, input *entity.EditVehicleInput) (*entity.VehicleOutputModel, error) {
	err := s.vehicleRepo.EditVehicleById(ctx, vehicleId, input)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}

		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetVehicleById(ctx, vehicleId)
	if err != nil {
		return nil, err
	}

	return mapVehicle(vehicle), nil
}

func (s *VehicleService) DeleteVehicleById(ctx context.Context, vehicleId string) error {
	err := s.vehicleRepo.DeleteVehicleById(ctx, vehicleId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrVehicleNotFound
		}

		return err
	}

	return nil
}
