package repository

import "github.com/osse101/GrammoRPG_Go/internal/domain"

// Market defines the interface for market listing persistence
type Market interface {
	CRUD[domain.MarketListing, domain.MarketListingInput, int]
}
