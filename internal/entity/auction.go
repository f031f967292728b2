package entity

import (
	"time"

	"dealership-api/internal/common"

	"github.com/google/uuid"
)

// db model. The vehicle fields are a snapshot taken at auction creation;
// they are never re-synced from the inventory record.
type Auction struct {
	Id             uuid.UUID `json:"id" db:"id"`
	Make           string    `json:"make" db:"make"`
	Model          string    `json:"model" db:"model"`
	Year           int       `json:"year" db:"year"`
	Mileage        int       `json:"mileage" db:"mileage"`
	FuelType       string    `json:"fuelType" db:"fuel_type"`
	ImageUrl       string    `json:"imageUrl" db:"image_url"`
	Description    string    `json:"description" db:"description"`
	StartTime      time.Time `json:"startTime" db:"start_time"`
	EndTime        time.Time `json:"endTime" db:"end_time"`
	StartingBid    float64   `json:"startingBid" db:"starting_bid"`
	CurrentBid     float64   `json:"currentBid" db:"current_bid"`
	ExtensionCount int       `json:"extensionCount" db:"extension_count"`
	Status         string    `json:"status" db:"status"`
	Bids           []Bid     `json:"bids"`
}

// IsOpen reports whether the auction currently accepts bids. The stored
// status alone is not enough: an expired auction may still read "active".
func (a *Auction) IsOpen(now time.Time) bool {
	return a.Status == common.AuctionActive && now.Before(a.EndTime)
}

// Bid is an immutable fact once appended; bids are never edited or removed.
type Bid struct {
	Id          uuid.UUID `json:"id" db:"id"`
	AuctionId   uuid.UUID `json:"auctionId" db:"auction_id"`
	BidderName  string    `json:"bidderName" db:"bidder_name"`
	BidderPhone string    `json:"bidderPhone" db:"bidder_phone"`
	Amount      float64   `json:"amount" db:"amount"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateAuctionInput struct {
	Make          string
	Model         string
	Year          int
	Mileage       int
	FuelType      string
	ImageUrl      string
	Description   string
	StartingBid   float64
	DurationHours int
}

// service input model
type PlaceBidInput struct {
	BidderName  string
	BidderPhone string
	Amount      float64
}

// BidOutcome is the result of a PlaceBid call. Rejections are ordinary
// outcomes, not errors; Message is user-facing in both cases.
type BidOutcome struct {
	Accepted       bool      `json:"accepted"`
	Message        string    `json:"message"`
	CurrentBid     float64   `json:"currentBid"`
	MinimumBid     float64   `json:"minimumBid"`
	EndTime        time.Time `json:"endTime"`
	ExtensionCount int       `json:"extensionCount"`
}

// controller model
type AuctionOutputModel struct {
	Id             string           `json:"id"`
	Make           string           `json:"make"`
	Model          string           `json:"model"`
	Year           int              `json:"year"`
	Mileage        int              `json:"mileage"`
	FuelType       string           `json:"fuelType"`
	ImageUrl       string           `json:"imageUrl"`
	Description    string           `json:"description"`
	StartTime      string           `json:"startTime"`
	EndTime        string           `json:"endTime"`
	StartingBid    float64          `json:"startingBid"`
	CurrentBid     float64          `json:"currentBid"`
	MinimumBid     float64          `json:"minimumBid"`
	ExtensionCount int              `json:"extensionCount"`
	Status         string           `json:"status"`
	Open           bool             `json:"open"`
	Bids           []BidOutputModel `json:"bids,omitempty"`
}

// controller model
type BidOutputModel struct {
	Id         string  `json:"id"`
	BidderName string  `json:"bidderName"`
	Amount     float64 `json:"amount"`
	CreatedAt  string  `json:"createdAt"`
}

// BidEvent is published on the message bus when a bid is accepted and
// fanned out to live subscribers of the auction.
type BidEvent struct {
	AuctionId      string    `json:"auctionId"`
	BidderName     string    `json:"bidderName"`
	Amount         float64   `json:"amount"`
	EndTime        time.Time `json:"endTime"`
	ExtensionCount int       `json:"extensionCount"`
	Timestamp      time.Time `json:"timestamp"`
}
