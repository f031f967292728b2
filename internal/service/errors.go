package service

import "errors"

var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrMessageNotFound = errors.New("contact message not found")

	ErrVehicleNameRequired    = errors.New("vehicle make and model are required")
	ErrNonPositiveStartingBid = errors.New("starting bid must be positive")
	ErrNonPositiveDuration    = errors.New("auction duration must be positive")

	ErrInvalidLoanTerms = errors.New("loan principal and term must be positive")
)

// errBidRejected aborts the bid transaction; the user-facing reason travels
// alongside it in the service, never to the caller as an error.
var errBidRejected = errors.New("bid rejected")
