package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dealership-api/internal/common"
	"dealership-api/internal/entity"
)

// bidRejection checks a candidate bid against the auction state and returns
// a user-facing reason when it must be rejected, or the empty string when it
// may be accepted. Checks run in a fixed order and the first failure wins.
// Expiry is derived from the clock: a stored "active" status is not enough.
func bidRejection(a *entity.Auction, input *entity.PlaceBidInput, now time.Time) string {
	if a.Status != common.AuctionActive {
		return "This auction is no longer active"
	}

	if !now.Before(a.EndTime) {
		return "Bidding time has expired"
	}

	minimum := a.CurrentBid + common.MinBidIncrement
	if input.Amount < minimum {
		return fmt.Sprintf("Minimum bid is %s €", formatAmount(minimum))
	}

	if strings.TrimSpace(input.BidderName) == "" {
		return "Please enter your name"
	}

	if strings.TrimSpace(input.BidderPhone) == "" {
		return "Please enter your phone number"
	}

	return ""
}

// extendOnLateBid pushes the closing time out when an accepted bid lands in
// the final minute, so a last-second bid never closes out other bidders.
// After three extensions the closing time is fixed.
func extendOnLateBid(a *entity.Auction, now time.Time) {
	if a.EndTime.Sub(now) < common.SnipeWindow && a.ExtensionCount < common.MaxExtensions {
		a.EndTime = a.EndTime.Add(common.SnipeExtension)
		a.ExtensionCount++
	}
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
