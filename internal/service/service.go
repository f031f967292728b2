package service

import (
	"context"

	"dealership-api/internal/entity"
	"dealership-api/internal/repo"
)

type Diagnostics interface {
	Ping() error
}

type Auction interface {
	CreateAuction(ctx context.Context, input *entity.CreateAuctionInput) (*entity.AuctionOutputModel, error)
	GetAuctionById(ctx context.Context, auctionId string) (*entity.AuctionOutputModel, error)
	GetAuctions(ctx context.Context, pg *entity.PaginationInput) ([]entity.AuctionOutputModel, error)
	PlaceBid(ctx context.Context, auctionId string, input *entity.PlaceBidInput) (*entity.BidOutcome, error)
	CancelAuction(ctx context.Context, auctionId string) error
}

type Vehicle interface {
	CreateVehicle(ctx context.Context, input *entity.CreateVehicleInput) (*entity.VehicleOutputModel, error)
	GetVehicleById(ctx context.Context, vehicleId string) (*entity.VehicleOutputModel, error)
	GetVehicles(ctx context.Context, pg *entity.PaginationInput) ([]entity.VehicleOutputModel, error)
	EditVehicleById(ctx context.Context, vehicleId string, input *entity.EditVehicleInput) (*entity.VehicleOutputModel, error)
	DeleteVehicleById(ctx context.Context, vehicleId string) error
}

type Booking interface {
	CreateBooking(ctx context.Context, input *entity.CreateBookingInput) (*entity.BookingOutputModel, error)
	GetBookings(ctx context.Context, pg *entity.PaginationInput) ([]entity.BookingOutputModel, error)
	UpdateBookingStatusById(ctx context.Context, bookingId string, newStatus string) (*entity.BookingOutputModel, error)
}

type Message interface {
	CreateMessage(ctx context.Context, input *entity.CreateMessageInput) (string, error)
	GetMessages(ctx context.Context, pg *entity.PaginationInput) ([]entity.MessageOutputModel, error)
	MarkMessageReadById(ctx context.Context, messageId string) error
}

type Chat interface {
	Chat(ctx context.Context, input *entity.ChatInput) (*entity.ChatOutputModel, error)
}

type Lead interface {
	GetLeads(ctx context.Context, pg *entity.PaginationInput) ([]entity.LeadOutputModel, error)
}

type Loan interface {
	Quote(input *entity.LoanQuoteInput) (*entity.LoanQuoteOutputModel, error)
}

// EventPublisher pushes accepted-bid events onto the message bus; delivery
// is best effort and never fails the write path.
type EventPublisher interface {
	Publish(subject string, data []byte) error
}

// Assistant produces structured replies from the hosted generative model.
type Assistant interface {
	Reply(ctx context.Context, history []entity.ChatTurn, message string) (*entity.AssistantReply, error)
}

type Services struct {
	Diagnostics Diagnostics
	Auction     Auction
	Vehicle     Vehicle
	Booking     Booking
	Message     Message
	Chat        Chat
	Lead        Lead
	Loan        Loan
}

func NewServices(repos *repo.Repositories, publisher EventPublisher, assistant Assistant) *Services {
	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Auction:     NewAuctionService(repos, publisher),
		Vehicle:     NewVehicleService(repos),
		Booking:     NewBookingService(repos),
		Message:     NewMessageService(repos),
		Chat:        NewChatService(repos, assistant),
		Lead:        NewLeadService(repos),
		Loan:        NewLoanService(),
	}
}
