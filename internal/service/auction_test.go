package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"dealership-api/internal/common"
	"dealership-api/internal/entity"
	"dealership-api/internal/repo"
	"dealership-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

// fakeAuctionRepo keeps auctions in memory and mimics the store contract:
// PlaceBid hands decide a copy of the stored row and persists the mutated
// copy plus the returned bid only when decide succeeds.
type fakeAuctionRepo struct {
	mu       sync.Mutex
	auctions map[string]*entity.Auction
	failWith error
}

func newFakeAuctionRepo() *fakeAuctionRepo {
	return &fakeAuctionRepo{auctions: make(map[string]*entity.Auction)}
}

func (r *fakeAuctionRepo) put(a *entity.Auction) {
	if a.Id == uuid.Nil {
		a.Id = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[a.Id.String()] = a
}

func (r *fakeAuctionRepo) CreateAuction(ctx context.Context, a *entity.Auction) error {
	if r.failWith != nil {
		return r.failWith
	}
	clone := *a
	r.put(&clone)
	a.Id = clone.Id
	return nil
}

func (r *fakeAuctionRepo) GetAuctionById(ctx context.Context, id string) (*entity.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.auctions[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	clone := *a
	clone.Bids = append([]entity.Bid(nil), a.Bids...)
	return &clone, nil
}

func (r *fakeAuctionRepo) GetAuctions(ctx context.Context, pg *entity.PaginationInput) ([]entity.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]entity.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		all = append(all, *a)
	}
	return all, nil
}

func (r *fakeAuctionRepo) UpdateAuctionStatusById(ctx context.Context, id string, newStatus string) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.auctions[id]
	if !ok {
		return repo_errors.ErrNotFound
	}
	a.Status = newStatus
	return nil
}

func (r *fakeAuctionRepo) PlaceBid(ctx context.Context, auctionId string, decide func(a *entity.Auction) (*entity.Bid, error)) (*entity.Auction, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.auctions[auctionId]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	clone := *stored
	clone.Bids = nil
	bid, err := decide(&clone)
	if err != nil {
		return nil, err
	}

	bid.Id = uuid.New()
	stored.CurrentBid = clone.CurrentBid
	stored.EndTime = clone.EndTime
	stored.ExtensionCount = clone.ExtensionCount
	stored.Bids = append(stored.Bids, *bid)

	return &clone, nil
}

type fakePublisher struct {
	mu       sync.Mutex
	subjects []string
}

func (p *fakePublisher) Publish(subject string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subjects)
}

func newTestAuctionService(fake *fakeAuctionRepo, pub *fakePublisher) *AuctionService {
	return NewAuctionService(&repo.Repositories{Auction: fake}, pub)
}

func TestCreateAuction(t *testing.T) {
	s := newTestAuctionService(newFakeAuctionRepo(), &fakePublisher{})

	before := time.Now()
	out, err := s.CreateAuction(context.Background(), &entity.CreateAuctionInput{
		Make: "BMW", Model: "X5", StartingBid: 1000, DurationHours: 24,
	})
	if err != nil {
		t.Fatalf("CreateAuction() error = %v", err)
	}

	if out.CurrentBid != 1000 {
		t.Errorf("CurrentBid = %v, want 1000", out.CurrentBid)
	}
	if out.MinimumBid != 1050 {
		t.Errorf("MinimumBid = %v, want 1050", out.MinimumBid)
	}
	if out.Status != common.AuctionActive {
		t.Errorf("Status = %q, want active", out.Status)
	}
	if out.ExtensionCount != 0 {
		t.Errorf("ExtensionCount = %d, want 0", out.ExtensionCount)
	}
	if !out.Open {
		t.Error("new auction should be open")
	}

	start, _ := time.Parse(time.RFC3339, out.StartTime)
	end, _ := time.Parse(time.RFC3339, out.EndTime)
	if got, want := end.Sub(start), 24*time.Hour; got != want {
		t.Errorf("duration = %v, want %v", got, want)
	}
	if start.Before(before.Truncate(time.Second)) {
		t.Errorf("StartTime %v earlier than test start %v", start, before)
	}
}

func TestCreateAuctionValidation(t *testing.T) {
	s := newTestAuctionService(newFakeAuctionRepo(), &fakePublisher{})

	tests := []struct {
		name  string
		input entity.CreateAuctionInput
		want  error
	}{
		{"missing make", entity.CreateAuctionInput{Model: "X5", StartingBid: 1000, DurationHours: 1}, ErrVehicleNameRequired},
		{"missing model", entity.CreateAuctionInput{Make: "BMW", StartingBid: 1000, DurationHours: 1}, ErrVehicleNameRequired},
		{"zero starting bid", entity.CreateAuctionInput{Make: "BMW", Model: "X5", DurationHours: 1}, ErrNonPositiveStartingBid},
		{"zero duration", entity.CreateAuctionInput{Make: "BMW", Model: "X5", StartingBid: 1000}, ErrNonPositiveDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.CreateAuction(context.Background(), &tt.input); !errors.Is(err, tt.want) {
				t.Errorf("CreateAuction() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func seedAuction(fake *fakeAuctionRepo, endsIn time.Duration) *entity.Auction {
	now := time.Now()
	a := &entity.Auction{
		Make:        "BMW",
		Model:       "X5",
		StartTime:   now.Add(-time.Hour),
		EndTime:     now.Add(endsIn),
		StartingBid: 1000,
		CurrentBid:  1000,
		Status:      common.AuctionActive,
	}
	fake.put(a)
	return a
}

func TestPlaceBidHappyPath(t *testing.T) {
	fake := newFakeAuctionRepo()
	pub := &fakePublisher{}
	s := newTestAuctionService(fake, pub)
	a := seedAuction(fake, time.Hour)
	endBefore := a.EndTime

	outcome, err := s.PlaceBid(context.Background(), a.Id.String(), &entity.PlaceBidInput{
		BidderName: "Alice", BidderPhone: "+37060000000", Amount: 1050,
	})
	if err != nil {
		t.Fatalf("PlaceBid() error = %v", err)
	}

	if !outcome.Accepted {
		t.Fatalf("bid rejected: %s", outcome.Message)
	}
	if outcome.CurrentBid != 1050 {
		t.Errorf("CurrentBid = %v, want 1050", outcome.CurrentBid)
	}
	if !outcome.EndTime.Equal(endBefore) {
		t.Errorf("EndTime changed on an early bid: %v", outcome.EndTime)
	}
	if outcome.ExtensionCount != 0 {
		t.Errorf("ExtensionCount = %d, want 0", outcome.ExtensionCount)
	}
	if pub.count() != 1 {
		t.Errorf("published %d events, want 1", pub.count())
	}
}

func TestPlaceBidAppendsHistoryInOrder(t *testing.T) {
	fake := newFakeAuctionRepo()
	s := newTestAuctionService(fake, &fakePublisher{})
	a := seedAuction(fake, time.Hour)

	amounts := []float64{1050, 1100, 1200, 1300}
	previous := a.CurrentBid
	for _, amount := range amounts {
		outcome, err := s.PlaceBid(context.Background(), a.Id.String(), &entity.PlaceBidInput{
			BidderName: "Alice", BidderPhone: "+37060000000", Amount: amount,
		})
		if err != nil || !outcome.Accepted {
			t.Fatalf("bid %v not accepted: %v %v", amount, err, outcome)
		}
		if outcome.CurrentBid <= previous {
			t.Errorf("CurrentBid %v not above previous %v", outcome.CurrentBid, previous)
		}
		if outcome.CurrentBid < previous+common.MinBidIncrement {
			t.Errorf("CurrentBid %v below previous+increment", outcome.CurrentBid)
		}
		previous = outcome.CurrentBid
	}

	stored, err := s.GetAuctionById(context.Background(), a.Id.String())
	if err != nil {
		t.Fatalf("GetAuctionById() error = %v", err)
	}
	if len(stored.Bids) != len(amounts) {
		t.Fatalf("bid history has %d entries, want %d", len(stored.Bids), len(amounts))
	}
	for i, b := range stored.Bids {
		if b.Amount != amounts[i] {
			t.Errorf("bid %d amount = %v, want %v", i, b.Amount, amounts[i])
		}
	}
}

func TestPlaceBidRejectionWritesNothing(t *testing.T) {
	fake := newFakeAuctionRepo()
	pub := &fakePublisher{}
	s := newTestAuctionService(fake, pub)
	a := seedAuction(fake, time.Hour)

	outcome, err := s.PlaceBid(context.Background(), a.Id.String(), &entity.PlaceBidInput{
		BidderName: "Alice", BidderPhone: "+37060000000", Amount: 1049,
	})
	if err != nil {
		t.Fatalf("PlaceBid() error = %v", err)
	}

	if outcome.Accepted {
		t.Fatal("bid below minimum was accepted")
	}
	if outcome.Message != "Minimum bid is 1050 €" {
		t.Errorf("Message = %q", outcome.Message)
	}
	if outcome.MinimumBid != 1050 {
		t.Errorf("MinimumBid = %v, want 1050", outcome.MinimumBid)
	}

	stored, _ := s.GetAuctionById(context.Background(), a.Id.String())
	if len(stored.Bids) != 0 {
		t.Errorf("rejected bid was appended, history has %d entries", len(stored.Bids))
	}
	if stored.CurrentBid != 1000 {
		t.Errorf("CurrentBid = %v, want 1000", stored.CurrentBid)
	}
	if pub.count() != 0 {
		t.Errorf("published %d events for a rejected bid", pub.count())
	}
}

func TestPlaceBidAntiSnipe(t *testing.T) {
	fake := newFakeAuctionRepo()
	s := newTestAuctionService(fake, &fakePublisher{})
	a := seedAuction(fake, 30*time.Second)
	endBefore := a.EndTime

	outcome, err := s.PlaceBid(context.Background(), a.Id.String(), &entity.PlaceBidInput{
		BidderName: "Alice", BidderPhone: "+37060000000", Amount: 1050,
	})
	if err != nil || !outcome.Accepted {
		t.Fatalf("late bid not accepted: %v %v", err, outcome)
	}

	if got, want := outcome.EndTime, endBefore.Add(10*time.Minute); !got.Equal(want) {
		t.Errorf("EndTime = %v, want %v", got, want)
	}
	if outcome.ExtensionCount != 1 {
		t.Errorf("ExtensionCount = %d, want 1", outcome.ExtensionCount)
	}
}

func TestPlaceBidExpiredAuctionStillMarkedActive(t *testing.T) {
	fake := newFakeAuctionRepo()
	s := newTestAuctionService(fake, &fakePublisher{})
	a := seedAuction(fake, -time.Minute)

	outcome, err := s.PlaceBid(context.Background(), a.Id.String(), &entity.PlaceBidInput{
		BidderName: "Alice", BidderPhone: "+37060000000", Amount: 5000,
	})
	if err != nil {
		t.Fatalf("PlaceBid() error = %v", err)
	}
	if outcome.Accepted {
		t.Error("bid on an expired auction was accepted")
	}
	if outcome.Message != "Bidding time has expired" {
		t.Errorf("Message = %q", outcome.Message)
	}
}

func TestPlaceBidAuctionNotFound(t *testing.T) {
	s := newTestAuctionService(newFakeAuctionRepo(), &fakePublisher{})

	_, err := s.PlaceBid(context.Background(), uuid.New().String(), &entity.PlaceBidInput{
		BidderName: "Alice", BidderPhone: "+37060000000", Amount: 1050,
	})
	if !errors.Is(err, ErrAuctionNotFound) {
		t.Errorf("PlaceBid() error = %v, want ErrAuctionNotFound", err)
	}
}

func TestPlaceBidStoreFailure(t *testing.T) {
	fake := newFakeAuctionRepo()
	pub := &fakePublisher{}
	s := newTestAuctionService(fake, pub)
	a := seedAuction(fake, time.Hour)

	fake.failWith = errors.New("connection refused")
	_, err := s.PlaceBid(context.Background(), a.Id.String(), &entity.PlaceBidInput{
		BidderName: "Alice", BidderPhone: "+37060000000", Amount: 1050,
	})
	if err == nil {
		t.Fatal("PlaceBid() returned nil error on store failure")
	}
	if errors.Is(err, ErrAuctionNotFound) {
		t.Error("store failure reported as not found")
	}
	if pub.count() != 0 {
		t.Errorf("published %d events on store failure", pub.count())
	}
}

func TestCancelAuctionIdempotent(t *testing.T) {
	fake := newFakeAuctionRepo()
	s := newTestAuctionService(fake, &fakePublisher{})
	a := seedAuction(fake, time.Hour)

	for i := 0; i < 2; i++ {
		if err := s.CancelAuction(context.Background(), a.Id.String()); err != nil {
			t.Fatalf("CancelAuction() call %d error = %v", i+1, err)
		}
	}

	stored, _ := s.GetAuctionById(context.Background(), a.Id.String())
	if stored.Status != common.AuctionCancelled {
		t.Errorf("Status = %q, want cancelled", stored.Status)
	}

	outcome, err := s.PlaceBid(context.Background(), a.Id.String(), &entity.PlaceBidInput{
		BidderName: "Alice", BidderPhone: "+37060000000", Amount: 5000,
	})
	if err != nil {
		t.Fatalf("PlaceBid() error = %v", err)
	}
	if outcome.Accepted {
		t.Error("bid on a cancelled auction was accepted")
	}
}

func TestCancelAuctionNotFound(t *testing.T) {
	s := newTestAuctionService(newFakeAuctionRepo(), &fakePublisher{})

	if err := s.CancelAuction(context.Background(), uuid.New().String()); !errors.Is(err, ErrAuctionNotFound) {
		t.Errorf("CancelAuction() error = %v, want ErrAuctionNotFound", err)
	}
}
