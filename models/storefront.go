package models

import (
	"encoding/json"
	"time"
)

// StorefrontProduct represents a hydrated product on a listing page
// (customer-facing).
type StorefrontProduct struct {
	ID           int             `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug,omitempty"`
	Description  string          `json:"description,omitempty"`
	Price        float64         `json:"price"`
	RRP          float64         `json:"rrp,omitempty"`
	OnSale       bool            `json:"on_sale,omitempty"`
	Rating       float64         `json:"rating,omitempty"`
	InStock      bool            `json:"in_stock"`
	Manufacturer string          `json:"manufacturer,omitempty"`
	Media        json.RawMessage `json:"media,omitempty"` // Hidden if not set
	ReleaseDate  *time.Time      `json:"release_date,omitempty"`
}

// StorefrontCategory represents a category node in the storefront tree.
type StorefrontCategory struct {
	ID            int                  `json:"id"`
	Name          string               `json:"name"`
	Slug          string               `json:"slug,omitempty"`
	ParentID      int                  `json:"parent_id,omitempty"`
	ProductCount  int                  `json:"product_count"`
	Subcategories []StorefrontCategory `json:"subcategories,omitempty"`
}

// ListingResponse is the body of one product-listing page: the hydrated
// products plus the result metadata the frontend renders the pager from.
type ListingResponse struct {
	Products     []StorefrontProduct `json:"products"`
	ProductCount int                 `json:"product_count"`
	VisibleCount int                 `json:"visible_count"`
	OffsetStart  int                 `json:"offset_start"`
	OffsetEnd    int                 `json:"offset_end"`
	SearchTerm   string              `json:"search_term,omitempty"`
	SearchError  string              `json:"search_error,omitempty"`
}
