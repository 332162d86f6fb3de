package postgres

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GrammoRPG_Go/internal/domain"
)

// MarketRepository implements repository.Market for PostgreSQL
type MarketRepository struct {
	*table[domain.MarketListing, domain.MarketListingInput, int]
}

// NewMarketRepository creates a new MarketRepository
func NewMarketRepository(db *pgxpool.Pool) *MarketRepository {
	return &MarketRepository{&table[domain.MarketListing, domain.MarketListingInput, int]{
		db:           db,
		entity:       domain.EntityMarket,
		name:         "market_listings",
		idColumn:     "listing_id",
		columns:      "listing_id, item_id, seller_id, price, quantity",
		orderBy:      "listing_id ASC",
		scan:         scanListing,
		writeColumns: []string{"item_id", "seller_id", "price", "quantity"},
		values: func(in domain.MarketListingInput) []any {
			return []any{in.ItemID, in.SellerID, in.Price, in.Quantity}
		},
	}}
}

func scanListing(row pgx.Row) (domain.MarketListing, error) {
	var l domain.MarketListing
	err := row.Scan(&l.ID, &l.ItemID, &l.SellerID, &l.Price, &l.Quantity)
	return l, err
}
