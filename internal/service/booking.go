package service

import (
	"context"
	"errors"

	"dealership-api/internal/common"
	"dealership-api/internal/entity"
	"dealership-api/internal/repo"
	"dealership-api/internal/repo/repo_errors"
)

type BookingService struct {
	bookingRepo repo.Booking
}

func NewBookingService(repos *repo.Repositories) *BookingService {
	return &BookingService{bookingRepo: repos.Booking}
}

func (s *BookingService) CreateBooking(ctx context.Context, input *entity.CreateBookingInput) (*entity.BookingOutputModel, error) {
	input.Status = common.BookingPending

	id, err := s.bookingRepo.CreateBooking(ctx, input)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetBookingById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapBooking(booking), nil
}

func (s *BookingService) GetBookings(ctx context.Context, pg *entity.PaginationInput) ([]entity.BookingOutputModel, error) {
	bookings, err := s.bookingRepo.GetBookings(ctx, pg)
	if err != nil {
		return nil, err
	}

	return mapBookings(bookings), nil
}

func (s *BookingService) UpdateBookingStatusById(ctx context.Context, bookingId string, newStatus string) (*entity.BookingOutputModel, error) {
	err := s.bookingRepo.UpdateBookingStatusById(ctx, bookingId, newStatus)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBookingNotFound
		}

		return nil, err
	}

	booking, err := s.bookingRepo.GetBookingById(ctx, bookingId)
	if err != nil {
		return nil, err
	}

	return mapBooking(booking), nil
}
