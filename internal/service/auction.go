package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"dealership-api/internal/common"
	"dealership-api/internal/entity"
	"dealership-api/internal/repo"
	"dealership-api/internal/repo/repo_errors"
)

type AuctionService struct {
	auctionRepo repo.Auction
	publisher   EventPublisher
}

func NewAuctionService(repos *repo.Repositories, publisher EventPublisher) *AuctionService {
	return &AuctionService{
		auctionRepo: repos.Auction,
		publisher:   publisher,
	}
}

func (s *AuctionService) CreateAuction(ctx context.Context, input *entity.CreateAuctionInput) (*entity.AuctionOutputModel, error) {
	if strings.TrimSpace(input.Make) == "" || strings.TrimSpace(input.Model) == "" {
		return nil, ErrVehicleNameRequired
	}
	if input.StartingBid <= 0 {
		return nil, ErrNonPositiveStartingBid
	}
	if input.DurationHours <= 0 {
		return nil, ErrNonPositiveDuration
	}

	now := time.Now()
	auction := &entity.Auction{
		Make:           input.Make,
		Model:          input.Model,
		Year:           input.Year,
		Mileage:        input.Mileage,
		FuelType:       input.FuelType,
		ImageUrl:       input.ImageUrl,
		Description:    input.Description,
		StartTime:      now,
		EndTime:        now.Add(time.Duration(input.DurationHours) * time.Hour),
		StartingBid:    input.StartingBid,
		CurrentBid:     input.StartingBid,
		ExtensionCount: 0,
		Status:         common.AuctionActive,
		Bids:           []entity.Bid{},
	}

	if err := s.auctionRepo.CreateAuction(ctx, auction); err != nil {
		return nil, err
	}

	return mapAuction(auction, now), nil
}

func (s *AuctionService) GetAuctionById(ctx context.Context, auctionId string) (*entity.AuctionOutputModel, error) {
	auction, err := s.auctionRepo.GetAuctionById(ctx, auctionId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrAuctionNotFound
		}

		return nil, err
	}

	return mapAuction(auction, time.Now()), nil
}

func (s *AuctionService) GetAuctions(ctx context.Context, pg *entity.PaginationInput) ([]entity.AuctionOutputModel, error) {
	auctions, err := s.auctionRepo.GetAuctions(ctx, pg)
	if err != nil {
		return nil, err
	}

	return mapAuctions(auctions, time.Now()), nil
}

// PlaceBid validates the candidate bid against the auction row held under a
// store lock, applies the anti-snipe extension, appends the bid and writes
// the new state in one transaction. Rejections come back as an outcome with
// a user-facing message, not as an error.
func (s *AuctionService) PlaceBid(ctx context.Context, auctionId string, input *entity.PlaceBidInput) (*entity.BidOutcome, error) {
	now := time.Now()

	var (
		reason   string
		snapshot entity.Auction
	)
	updated, err := s.auctionRepo.PlaceBid(ctx, auctionId, func(a *entity.Auction) (*entity.Bid, error) {
		if r := bidRejection(a, input, now); r != "" {
			reason = r
			snapshot = *a
			return nil, errBidRejected
		}

		extendOnLateBid(a, now)
		a.CurrentBid = input.Amount

		return &entity.Bid{
			AuctionId:   a.Id,
			BidderName:  input.BidderName,
			BidderPhone: input.BidderPhone,
			Amount:      input.Amount,
			CreatedAt:   now,
		}, nil
	})

	if err != nil {
		if errors.Is(err, errBidRejected) {
			return &entity.BidOutcome{
				Accepted:       false,
				Message:        reason,
				CurrentBid:     snapshot.CurrentBid,
				MinimumBid:     snapshot.CurrentBid + common.MinBidIncrement,
				EndTime:        snapshot.EndTime,
				ExtensionCount: snapshot.ExtensionCount,
			}, nil
		}
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrAuctionNotFound
		}

		return nil, err
	}

	s.publishBidEvent(updated, input, now)

	return &entity.BidOutcome{
		Accepted:       true,
		Message:        "Bid placed successfully!",
		CurrentBid:     updated.CurrentBid,
		MinimumBid:     updated.CurrentBid + common.MinBidIncrement,
		EndTime:        updated.EndTime,
		ExtensionCount: updated.ExtensionCount,
	}, nil
}

func (s *AuctionService) publishBidEvent(a *entity.Auction, input *entity.PlaceBidInput, now time.Time) {
	event := &entity.BidEvent{
		AuctionId:      a.Id.String(),
		BidderName:     input.BidderName,
		Amount:         input.Amount,
		EndTime:        a.EndTime,
		ExtensionCount: a.ExtensionCount,
		Timestamp:      now,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal bid event: %v", err)
		return
	}

	if err := s.publisher.Publish(common.BidEventsSubjectPrefix+event.AuctionId, data); err != nil {
		log.Printf("failed to publish bid event: %v", err)
	}
}

// CancelAuction writes the cancelled status unconditionally; cancelling an
// already ended or cancelled auction is harmless.
func (s *AuctionService) CancelAuction(ctx context.Context, auctionId string) error {
	err := s.auctionRepo.UpdateAuctionStatusById(ctx, auctionId, common.AuctionCancelled)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrAuctionNotFound
		}

		return err
	}

	return nil
}
