package service

import (
	"testing"
	"time"

	"dealership-api/internal/common"
	"dealership-api/internal/entity"
)

func testAuction(endsIn time.Duration, now time.Time) *entity.Auction {
	return &entity.Auction{
		Make:        "BMW",
		Model:       "X5",
		StartTime:   now.Add(-time.Hour),
		EndTime:     now.Add(endsIn),
		StartingBid: 1000,
		CurrentBid:  1000,
		Status:      common.AuctionActive,
	}
}

func testBid(amount float64) *entity.PlaceBidInput {
	return &entity.PlaceBidInput{
		BidderName:  "Alice",
		BidderPhone: "+37060000000",
		Amount:      amount,
	}
}

func TestBidRejectionOrder(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		mutate func(a *entity.Auction, b *entity.PlaceBidInput)
		want   string
	}{
		{
			name:   "valid bid",
			mutate: func(a *entity.Auction, b *entity.PlaceBidInput) {},
			want:   "",
		},
		{
			name: "cancelled auction",
			mutate: func(a *entity.Auction, b *entity.PlaceBidInput) {
				a.Status = common.AuctionCancelled
			},
			want: "This auction is no longer active",
		},
		{
			name: "expired but still marked active",
			mutate: func(a *entity.Auction, b *entity.PlaceBidInput) {
				a.EndTime = now.Add(-time.Second)
			},
			want: "Bidding time has expired",
		},
		{
			name: "expired exactly now",
			mutate: func(a *entity.Auction, b *entity.PlaceBidInput) {
				a.EndTime = now
			},
			want: "Bidding time has expired",
		},
		{
			name: "below minimum increment",
			mutate: func(a *entity.Auction, b *entity.PlaceBidInput) {
				b.Amount = 1049
			},
			want: "Minimum bid is 1050 €",
		},
		{
			name: "too low even on a cancelled auction reports status first",
			mutate: func(a *entity.Auction, b *entity.PlaceBidInput) {
				a.Status = common.AuctionCancelled
				b.Amount = 1
			},
			want: "This auction is no longer active",
		},
		{
			name: "missing name",
			mutate: func(a *entity.Auction, b *entity.PlaceBidInput) {
				b.BidderName = "  "
			},
			want: "Please enter your name",
		},
		{
			name: "missing phone",
			mutate: func(a *entity.Auction, b *entity.PlaceBidInput) {
				b.BidderPhone = ""
			},
			want: "Please enter your phone number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testAuction(time.Hour, now)
			b := testBid(1050)
			tt.mutate(a, b)

			if got := bidRejection(a, b, now); got != tt.want {
				t.Errorf("bidRejection() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBidRejectionMinimumBoundary(t *testing.T) {
	now := time.Now()
	a := testAuction(time.Hour, now)

	if got := bidRejection(a, testBid(1049), now); got == "" {
		t.Error("bid below currentBid+50 should be rejected")
	}
	if got := bidRejection(a, testBid(1050), now); got != "" {
		t.Errorf("bid at currentBid+50 should be accepted, got %q", got)
	}
	if got := bidRejection(a, testBid(1051), now); got != "" {
		t.Errorf("bid above currentBid+50 should be accepted, got %q", got)
	}
}

func TestExtendOnLateBid(t *testing.T) {
	now := time.Now()

	t.Run("late bid extends by ten minutes", func(t *testing.T) {
		a := testAuction(30*time.Second, now)
		endBefore := a.EndTime

		extendOnLateBid(a, now)

		if got, want := a.EndTime, endBefore.Add(10*time.Minute); !got.Equal(want) {
			t.Errorf("EndTime = %v, want %v", got, want)
		}
		if a.ExtensionCount != 1 {
			t.Errorf("ExtensionCount = %d, want 1", a.ExtensionCount)
		}
	})

	t.Run("early bid leaves the end time alone", func(t *testing.T) {
		a := testAuction(2*time.Minute, now)
		endBefore := a.EndTime

		extendOnLateBid(a, now)

		if !a.EndTime.Equal(endBefore) {
			t.Errorf("EndTime changed to %v", a.EndTime)
		}
		if a.ExtensionCount != 0 {
			t.Errorf("ExtensionCount = %d, want 0", a.ExtensionCount)
		}
	})

	t.Run("bid at exactly one minute left does not extend", func(t *testing.T) {
		a := testAuction(common.SnipeWindow, now)
		endBefore := a.EndTime

		extendOnLateBid(a, now)

		if !a.EndTime.Equal(endBefore) {
			t.Errorf("EndTime changed to %v", a.EndTime)
		}
	})

	t.Run("fourth late bid stops extending", func(t *testing.T) {
		a := testAuction(30*time.Second, now)

		for i := 0; i < 3; i++ {
			// Walk the clock close to each new end so the window applies.
			at := a.EndTime.Add(-30 * time.Second)
			endBefore := a.EndTime
			extendOnLateBid(a, at)
			if got, want := a.EndTime, endBefore.Add(10*time.Minute); !got.Equal(want) {
				t.Fatalf("extension %d: EndTime = %v, want %v", i+1, got, want)
			}
		}
		if a.ExtensionCount != 3 {
			t.Fatalf("ExtensionCount = %d, want 3", a.ExtensionCount)
		}

		at := a.EndTime.Add(-30 * time.Second)
		endBefore := a.EndTime
		extendOnLateBid(a, at)
		if !a.EndTime.Equal(endBefore) {
			t.Errorf("fourth extension happened, EndTime = %v", a.EndTime)
		}
		if a.ExtensionCount != 3 {
			t.Errorf("ExtensionCount = %d, want 3", a.ExtensionCount)
		}
	})
}

func TestFormatAmount(t *testing.T) {
	if got := formatAmount(1050); got != "1050" {
		t.Errorf("formatAmount(1050) = %q", got)
	}
	if got := formatAmount(1050.5); got != "1050.5" {
		t.Errorf("formatAmount(1050.5) = %q", got)
	}
}
