package models

import (
	"math"
	"time"
)

// Attribute is a named facet on a product, e.g. "Size" -> ["S","M","L"].
// Option order follows the backend and is preserved for display.
type Attribute struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// Product is the normalized catalog record. The commerce backend returns
// loosely-typed JSON (string prices, optional fields); normalization happens
// once at the proxy boundary so nothing downstream branches on missing
// fields.
type Product struct {
	ProductID    string      `json:"productId"`
	Name         string      `json:"name"`
	Slug         string      `json:"slug"`
	Description  string      `json:"description,omitempty"`
	RegularPrice float64     `json:"regularPrice"`
	SalePrice    *float64    `json:"salePrice,omitempty"`
	InStock      bool        `json:"inStock"`
	Featured     bool        `json:"featured"`
	Attributes   []Attribute `json:"attributes,omitempty"`
	Categories   []string    `json:"categories,omitempty"`
	Tags         []string    `json:"tags,omitempty"`
	Images       []string    `json:"images,omitempty"`
	RelatedIDs   []string    `json:"relatedIds,omitempty"`
	TotalSales   int         `json:"totalSales"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// EffectivePrice is the sale price when present, else the regular price.
func (p *Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.RegularPrice
}

// DiscountPercent is (regular-sale)/regular rounded to the nearest percent.
// Zero when there is no sale price or no regular price.
func (p *Product) DiscountPercent() int {
	if p.SalePrice == nil || p.RegularPrice <= 0 {
		return 0
	}
	return int(math.Round((p.RegularPrice - *p.SalePrice) / p.RegularPrice * 100))
}

// Category mirrors the backend category record.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Count       int    `json:"count"`
}

// Coupon is the backend-owned coupon record; only the fields this service
// reads are kept.
type Coupon struct {
	ID          int       `json:"id"`
	Code        string    `json:"code"`
	Amount      float64   `json:"amount"`       // % or flat value depending on DiscountType
	DiscountType string   `json:"discountType"` // "percent" or "fixed_cart"
	ExpiresAt   time.Time `json:"expiresAt"`
	MinimumSpend float64  `json:"minimumSpend"`
}
