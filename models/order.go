package models

import "time"

// OrderAddress is the billing/shipping block sent to the commerce backend.
type OrderAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// OrderLineItem is one purchased line in the order payload.
type OrderLineItem struct {
	ProductID string            `json:"product_id"`
	Quantity  int               `json:"quantity"`
	MetaData  map[string]string `json:"meta_data,omitempty"`
}

// OrderRequest is the payload POSTed to the backend's /orders endpoint.
type OrderRequest struct {
	PaymentMethod string          `json:"payment_method"`
	Billing       OrderAddress    `json:"billing"`
	Shipping      OrderAddress    `json:"shipping"`
	LineItems     []OrderLineItem `json:"line_items"`
	ShippingLines []ShippingLine  `json:"shipping_lines,omitempty"`
	CouponLines   []CouponLine    `json:"coupon_lines,omitempty"`
	CustomerID    int             `json:"customer_id,omitempty"`
}

type ShippingLine struct {
	MethodID    string `json:"method_id"`
	MethodTitle string `json:"method_title"`
	Total       string `json:"total"`
}

type CouponLine struct {
	Code string `json:"code"`
}

// Order is the backend-owned order record; fields the storefront reads.
type Order struct {
	ID         int       `json:"id"`
	Number     string    `json:"number"`
	Status     string    `json:"status"`
	Total      string    `json:"total"`
	Currency   string    `json:"currency,omitempty"`
	CustomerID int       `json:"customer_id"`
	CreatedAt  time.Time `json:"createdAt"`
	LineItems  []struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
		Total    string `json:"total"`
	} `json:"line_items,omitempty"`
}
