package service

import (
	"time"

	"dealership-api/internal/common"
	"dealership-api/internal/entity"
)

func mapAuction(a *entity.Auction, now time.Time) *entity.AuctionOutputModel {
	return &entity.AuctionOutputModel{
		Id:             a.Id.String(),
		Make:           a.Make,
		Model:          a.Model,
		Year:           a.Year,
		Mileage:        a.Mileage,
		FuelType:       a.FuelType,
		ImageUrl:       a.ImageUrl,
		Description:    a.Description,
		StartTime:      a.StartTime.Format(time.RFC3339),
		EndTime:        a.EndTime.Format(time.RFC3339),
		StartingBid:    a.StartingBid,
		CurrentBid:     a.CurrentBid,
		MinimumBid:     a.CurrentBid + common.MinBidIncrement,
		ExtensionCount: a.ExtensionCount,
		Status:         a.Status,
		Open:           a.IsOpen(now),
		Bids:           mapBids(a.Bids),
	}
}

func mapAuctions(auctions []entity.Auction, now time.Time) []entity.AuctionOutputModel {
	s := make([]entity.AuctionOutputModel, 0)
	for _, a := range auctions {
		s = append(s, *mapAuction(&a, now))
	}

	return s
}

func mapBid(b *entity.Bid) *entity.BidOutputModel {
	return &entity.BidOutputModel{
		Id:         b.Id.String(),
		BidderName: b.BidderName,
		Amount:     b.Amount,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

func mapBids(bids []entity.Bid) []entity.BidOutputModel {
	s := make([]entity.BidOutputModel, 0)
	for _, b := range bids {
		s = append(s, *mapBid(&b))
	}

	return s
}

func mapVehicle(v *entity.Vehicle) *entity.VehicleOutputModel {
	return &entity.VehicleOutputModel{
		Id:          v.Id.String(),
		Make:        v.Make,
		Model:       v.Model,
		Year:        v.Year,
		Mileage:     v.Mileage,
		FuelType:    v.FuelType,
		Price:       v.Price,
		ImageUrl:    v.ImageUrl,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
	}
}

func mapVehicles(vehicles []entity.Vehicle) []entity.VehicleOutputModel {
	s := make([]entity.VehicleOutputModel, 0)
	for _, v := range vehicles {
		s = append(s, *mapVehicle(&v))
	}

	return s
}

func mapBooking(b *entity.Booking) *entity.BookingOutputModel {
	return &entity.BookingOutputModel{
		Id:            b.Id.String(),
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		VehicleId:     b.VehicleId,
		Kind:          b.Kind,
		RequestedAt:   b.RequestedAt,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}

func mapBookings(bookings []entity.Booking) []entity.BookingOutputModel {
	s := make([]entity.BookingOutputModel, 0)
	for _, b := range bookings {
		s = append(s, *mapBooking(&b))
	}

	return s
}

func mapMessage(m *entity.ContactMessage) *entity.MessageOutputModel {
	return &entity.MessageOutputModel{
		Id:        m.Id.String(),
		Name:      m.Name,
		Phone:     m.Phone,
		Content:   m.Content,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}

func mapMessages(messages []entity.ContactMessage) []entity.MessageOutputModel {
	s := make([]entity.MessageOutputModel, 0)
	for _, m := range messages {
		s = append(s, *mapMessage(&m))
	}

	return s
}

func mapLead(l *entity.Lead) *entity.LeadOutputModel {
	return &entity.LeadOutputModel{
		Id:        l.Id.String(),
		SessionId: l.SessionId,
		Intent:    l.Intent,
		Name:      l.Name,
		Phone:     l.Phone,
		Interest:  l.Interest,
		CreatedAt: l.CreatedAt,
	}
}

func mapLeads(leads []entity.Lead) []entity.LeadOutputModel {
	s := make([]entity.LeadOutputModel, 0)
	for _, l := range leads {
		s = append(s, *mapLead(&l))
	}

	return s
}
