package entity

import (
	"github.com/google/uuid"
)

// db model
type Booking struct {
	Id            uuid.UUID `json:"id" db:"id"`
	CustomerName  string    `json:"customerName" db:"customer_name"`
	CustomerPhone string    `json:"customerPhone" db:"customer_phone"`
	VehicleId     *string   `json:"vehicleId,omitempty" db:"vehicle_id"`
	Kind          string    `json:"kind" db:"kind"`
	RequestedAt   string    `json:"requestedAt" db:"requested_at"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     string    `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateBookingInput struct {
	CustomerName  string
	CustomerPhone string
	VehicleId     *string
	Kind          string
	RequestedAt   string
	Status        string // should be set: "pending"
}

// controller model
type BookingOutputModel struct {
	Id            string  `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	VehicleId     *string `json:"vehicleId,omitempty"`
	Kind          string  `json:"kind"`
	RequestedAt   string  `json:"requestedAt"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}
