package repo

import (
	"context"

	"dealership-api/internal/entity"
	"dealership-api/internal/repo/pgdb"
	"dealership-api/internal/repo/redisdb"
	"dealership-api/pkg/postgres"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Diagnostics interface {
	Ping() error
}

type Vehicle interface {
	CreateVehicle(ctx context.Context, input *entity.CreateVehicleInput) (uuid.UUID, error)
	GetVehicleById(ctx context.Context, id string) (*entity.Vehicle, error)
	GetVehicles(ctx context.Context, pg *entity.PaginationInput) ([]entity.Vehicle, error)
	EditVehicleById(ctx context.Context, id string, input *entity.EditVehicleInput) error
	DeleteVehicleById(ctx context.Context, id string) error
}

type Auction interface {
	CreateAuction(ctx context.Context, a *entity.Auction) error
	GetAuctionById(ctx context.Context, id string) (*entity.Auction, error)
	GetAuctions(ctx context.Context, pg *entity.PaginationInput) ([]entity.Auction, error)
	UpdateAuctionStatusById(ctx context.Context, id string, newStatus string) error

	// PlaceBid loads the auction under a row lock and hands it to decide.
	// When decide returns a bid, the bid is appended and the auction's
	// current_bid, end_time and extension_count are written back in the
	// same transaction. When decide returns an error the transaction is
	// rolled back and the error is propagated unchanged.
	PlaceBid(ctx context.Context, auctionId string, decide func(a *entity.Auction) (*entity.Bid, error)) (*entity.Auction, error)
}

type Booking interface {
	CreateBooking(ctx context.Context, input *entity.CreateBookingInput) (uuid.UUID, error)
	GetBookingById(ctx context.Context, id string) (*entity.Booking, error)
	GetBookings(ctx context.Context, pg *entity.PaginationInput) ([]entity.Booking, error)
	UpdateBookingStatusById(ctx context.Context, id string, newStatus string) error
}

type Message interface {
	CreateMessage(ctx context.Context, input *entity.CreateMessageInput) (uuid.UUID, error)
	GetMessages(ctx context.Context, pg *entity.PaginationInput) ([]entity.ContactMessage, error)
	MarkMessageReadById(ctx context.Context, id string) error
}

type Lead interface {
	// CreateLead inserts a lead unless one already exists for the same
	// (session, intent) pair; the bool reports whether a row was written.
	CreateLead(ctx context.Context, input *entity.CreateLeadInput) (bool, error)
	GetLeads(ctx context.Context, pg *entity.PaginationInput) ([]entity.Lead, error)
}

type ChatSession interface {
	// MarkLeadCaptured records that a lead was captured for the session and
	// intent; returns true the first time, false on repeats.
	MarkLeadCaptured(ctx context.Context, sessionId string, intent string) (bool, error)
}

type Repositories struct {
	Diagnostics
	Vehicle
	Auction
	Booking
	Message
	Lead
	ChatSession
}

func NewRepositories(p *postgres.Postgres, rdb *redis.Client) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		Vehicle:     pgdb.NewVehicleRepo(p),
		Auction:     pgdb.NewAuctionRepo(p),
		Booking:     pgdb.NewBookingRepo(p),
		Message:     pgdb.NewMessageRepo(p),
		Lead:        pgdb.NewLeadRepo(p),
		ChatSession: redisdb.NewChatSessionRepo(rdb),
	}
}
