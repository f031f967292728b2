package entity

import (
	"testing"
	"time"

	"dealership-api/internal/common"
)

func TestAuctionIsOpen(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		status  string
		endTime time.Time
		want    bool
	}{
		{"active before end", common.AuctionActive, now.Add(time.Hour), true},
		{"active past end", common.AuctionActive, now.Add(-time.Second), false},
		{"active at exact end", common.AuctionActive, now, false},
		{"cancelled before end", common.AuctionCancelled, now.Add(time.Hour), false},
		{"completed before end", common.AuctionCompleted, now.Add(time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Auction{Status: tt.status, EndTime: tt.endTime}
			if got := a.IsOpen(now); got != tt.want {
				t.Errorf("IsOpen() = %v, want %v", got, tt.want)
			}
		})
	}
}
