package common

import "time"

// Auction statuses. An auction whose end time has passed may still carry
// the Active status in the store; callers must check the end time as well.
const (
	AuctionActive    = "active"
	AuctionCompleted = "completed"
	AuctionCancelled = "cancelled"
)

// Bidding rules.
const (
	MinBidIncrement = 50.0
	SnipeWindow     = time.Minute
	SnipeExtension  = 10 * time.Minute
	MaxExtensions   = 3
)

// Booking statuses.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking kinds.
const (
	BookingTestDrive = "test_drive"
	BookingService   = "service"
)

// Subject prefix for bid events on the message bus. The auction id is
// appended as the last token.
const BidEventsSubjectPrefix = "auction.bids."
