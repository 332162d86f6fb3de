package domain

import "github.com/google/uuid"

// MarketListing offers a quantity of an item for sale by a player
type MarketListing struct {
	ID       int       `json:"id"`
	ItemID   int       `json:"item_id"`
	SellerID uuid.UUID `json:"seller_id"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
}

// MarketListingInput carries every mutable listing field
type MarketListingInput struct {
	ItemID   int       `json:"item_id" validate:"required,min=1,max=2147483647"`
	SellerID uuid.UUID `json:"seller_id" validate:"required"`
	Price    float64   `json:"price" validate:"min=0"`
	Quantity int       `json:"quantity" validate:"min=0,max=2147483647"`
}
