package models

import "time"

// MarketplaceItem is immutable after creation. Seller is an as-of snapshot.
type MarketplaceItem struct {
	ID          int64        `json:"id"`
	SellerID    int64        `json:"seller_id"`
	Seller      UserSnapshot `json:"seller"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Price       float64      `json:"price"`
	Image       string       `json:"image"`
	Location    string       `json:"location,omitempty"`
	Condition   string       `json:"condition,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
