package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"dealership-api/internal/entity"
	"dealership-api/internal/repo/repo_errors"
	"dealership-api/pkg/postgres"

	"github.com/google/uuid"
)

type AuctionRepo struct {
	*postgres.Postgres
}

func NewAuctionRepo(pgdb *postgres.Postgres) *AuctionRepo {
	return &AuctionRepo{pgdb}
}

const auctionColumns = "id, make, model, year, mileage, fuel_type, image_url, description, " +
	"start_time, end_time, starting_bid, current_bid, extension_count, status"

func (r *AuctionRepo) CreateAuction(ctx context.Context, a *entity.Auction) error {
	createAuctionSql, args, _ := r.SqlBuilder.
		Insert("auction").
		Columns("make", "model", "year", "mileage", "fuel_type", "image_url", "description",
			"start_time", "end_time", "starting_bid", "current_bid", "extension_count", "status").
		Values(a.Make, a.Model, a.Year, a.Mileage, a.FuelType, a.ImageUrl, a.Description,
			a.StartTime, a.EndTime, a.StartingBid, a.CurrentBid, a.ExtensionCount, a.Status).
		Suffix("RETURNING id").
		ToSql()

	return r.Database.QueryRowContext(ctx, createAuctionSql, args...).Scan(&a.Id)
}

func scanAuction(row interface{ Scan(...interface{}) error }) (*entity.Auction, error) {
	var a entity.Auction
	err := row.Scan(&a.Id, &a.Make, &a.Model, &a.Year, &a.Mileage, &a.FuelType,
		&a.ImageUrl, &a.Description, &a.StartTime, &a.EndTime,
		&a.StartingBid, &a.CurrentBid, &a.ExtensionCount, &a.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &a, nil
}

func (r *AuctionRepo) GetAuctionById(ctx context.Context, id string) (*entity.Auction, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getAuctionSql, args, _ := r.SqlBuilder.
		Select(auctionColumns).
		From("auction").
		Where("id = ?", uuidForm).
		ToSql()

	a, err := scanAuction(r.Database.QueryRowContext(ctx, getAuctionSql, args...))
	if err != nil {
		return nil, err
	}

	bids, err := r.getAuctionBids(ctx, uuidForm)
	if err != nil {
		return nil, err
	}
	a.Bids = bids

	return a, nil
}

// Bid order in the store equals acceptance order; created_at ties are broken
// by insertion order of the primary key default.
func (r *AuctionRepo) getAuctionBids(ctx context.Context, auctionId uuid.UUID) ([]entity.Bid, error) {
	getBidsSql, args, _ := r.SqlBuilder.
		Select("id, auction_id, bidder_name, bidder_phone, amount, created_at").
		From("auction_bid").
		Where("auction_id = ?", auctionId).
		OrderBy("created_at", "id").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getBidsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.Bid, 0)
	for rows.Next() {
		var b entity.Bid
		if err := rows.Scan(&b.Id, &b.AuctionId, &b.BidderName, &b.BidderPhone, &b.Amount, &b.CreatedAt); err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}

	return bids, rows.Err()
}

func (r *AuctionRepo) GetAuctions(ctx context.Context, pg *entity.PaginationInput) ([]entity.Auction, error) {
	getAuctionsSql, args, _ := r.SqlBuilder.
		Select(auctionColumns).
		From("auction").
		OrderBy("start_time DESC").
		Limit(uint64(pg.Limit)).
		Offset(uint64(pg.Offset)).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getAuctionsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	auctions := make([]entity.Auction, 0)
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, err
		}
		auctions = append(auctions, *a)
	}

	return auctions, rows.Err()
}

func (r *AuctionRepo) UpdateAuctionStatusById(ctx context.Context, id string, newStatus string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	updateStatusSql, args, _ := r.SqlBuilder.
		Update("auction").
		Set("status", newStatus).
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, updateStatusSql, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

// PlaceBid serialises competing bids on the same auction: the row lock taken
// by FOR UPDATE holds until commit, so decide always sees the latest state.
func (r *AuctionRepo) PlaceBid(ctx context.Context, auctionId string, decide func(a *entity.Auction) (*entity.Bid, error)) (*entity.Auction, error) {
	uuidForm, err := uuid.Parse(auctionId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	getAuctionSql, args, _ := r.SqlBuilder.
		Select(auctionColumns).
		From("auction").
		Where("id = ?", uuidForm).
		Suffix("FOR UPDATE").
		ToSql()

	a, err := scanAuction(tx.QueryRowContext(ctx, getAuctionSql, args...))
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return nil, e
		}

		return nil, err
	}

	bid, err := decide(a)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return nil, e
		}

		return nil, err
	}

	createBidSql, args, _ := r.SqlBuilder.
		Insert("auction_bid").
		Columns("auction_id", "bidder_name", "bidder_phone", "amount", "created_at").
		Values(uuidForm, bid.BidderName, bid.BidderPhone, bid.Amount, bid.CreatedAt).
		Suffix("RETURNING id").
		ToSql()

	if err = tx.QueryRowContext(ctx, createBidSql, args...).Scan(&bid.Id); err != nil {
		if e := tx.Rollback(); e != nil {
			return nil, e
		}

		return nil, err
	}

	updateAuctionSql, args, _ := r.SqlBuilder.
		Update("auction").
		Set("current_bid", a.CurrentBid).
		Set("end_time", a.EndTime).
		Set("extension_count", a.ExtensionCount).
		Where("id = ?", uuidForm).
		ToSql()

	if _, err = tx.ExecContext(ctx, updateAuctionSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return nil, e
		}

		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return a, nil
}
