package entity

import (
	"github.com/google/uuid"
)

// db model
type Vehicle struct {
	Id          uuid.UUID `json:"id" db:"id"`
	Make        string    `json:"make" db:"make"`
	Model       string    `json:"model" db:"model"`
	Year        int       `json:"year" db:"year"`
	Mileage     int       `json:"mileage" db:"mileage"`
	FuelType    string    `json:"fuelType" db:"fuel_type"`
	Price       float64   `json:"price" db:"price"`
	ImageUrl    string    `json:"imageUrl" db:"image_url"`
	Description string    `json:"description" db:"description"`
	CreatedAt   string    `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateVehicleInput struct {
	Make        string
	Model       string
	Year        int
	Mileage     int
	FuelType    string
	Price       float64
	ImageUrl    string
	Description string
}

// service + repo input model; nil fields keep the stored value
type EditVehicleInput struct {
	Make        *string
	Model       *string
	Year        *int
	Mileage     *int
	FuelType    *string
	Price       *float64
	ImageUrl    *string
	Description *string
}

// controller model
type VehicleOutputModel struct {
	Id          string  `json:"id"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	Mileage     int     `json:"mileage"`
	FuelType    string  `json:"fuelType"`
	Price       float64 `json:"price"`
	ImageUrl    string  `json:"imageUrl"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"createdAt"`
}
