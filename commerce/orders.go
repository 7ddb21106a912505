package commerce

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vastra/models"
)

type rawOrder struct {
	ID          int    `json:"id"`
	Number      string `json:"number"`
	Status      string `json:"status"`
	Total       string `json:"total"`
	Currency    string `json:"currency"`
	CustomerID  int    `json:"customer_id"`
	DateCreated string `json:"date_created"`
	LineItems   []struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
		Total    string `json:"total"`
	} `json:"line_items"`
}

func (ro rawOrder) normalize() models.Order {
	o := models.Order{
		ID:         ro.ID,
		Number:     ro.Number,
		Status:     ro.Status,
		Total:      ro.Total,
		Currency:   ro.Currency,
		CustomerID: ro.CustomerID,
		CreatedAt:  parseBackendTime(ro.DateCreated),
	}
	o.LineItems = ro.LineItems
	return o
}

// CreateOrder POSTs the order payload and returns the created record.
func (c *Client) CreateOrder(ctx context.Context, req models.OrderRequest) (models.Order, error) {
	var raw rawOrder
	if err := c.send(ctx, http.MethodPost, "orders", nil, req, &raw); err != nil {
		return models.Order{}, err
	}
	return raw.normalize(), nil
}

// Orders lists a customer's order history.
func (c *Client) Orders(ctx context.Context, customerID string) ([]models.Order, error) {
	q := url.Values{}
	q.Set("customer", customerID)
	var raw []rawOrder
	if err := c.get(ctx, "orders", q, &raw); err != nil {
		return nil, err
	}
	out := make([]models.Order, 0, len(raw))
	for _, ro := range raw {
		out = append(out, ro.normalize())
	}
	return out, nil
}

// Order fetches one order by id.
func (c *Client) Order(ctx context.Context, orderID string) (models.Order, error) {
	var raw rawOrder
	if err := c.get(ctx, "orders/"+url.PathEscape(orderID), nil, &raw); err != nil {
		return models.Order{}, err
	}
	return raw.normalize(), nil
}

type rawCoupon struct {
	ID            int    `json:"id"`
	Code          string `json:"code"`
	Amount        string `json:"amount"`
	DiscountType  string `json:"discount_type"`
	DateExpires   string `json:"date_expires"`
	MinimumAmount string `json:"minimum_amount"`
}

// CouponByCode looks up a coupon; the backend answers code queries with an
// array.
func (c *Client) CouponByCode(ctx context.Context, code string) (models.Coupon, bool, error) {
	q := url.Values{}
	q.Set("code", strings.ToLower(strings.TrimSpace(code)))
	var raw []rawCoupon
	if err := c.get(ctx, "coupons", q, &raw); err != nil {
		return models.Coupon{}, false, err
	}
	if len(raw) == 0 {
		return models.Coupon{}, false, nil
	}
	rc := raw[0]
	coupon := models.Coupon{
		ID:           rc.ID,
		Code:         rc.Code,
		Amount:       parsePrice(rc.Amount),
		DiscountType: rc.DiscountType,
		MinimumSpend: parsePrice(rc.MinimumAmount),
	}
	if ts := parseBackendTime(rc.DateExpires); !ts.IsZero() {
		coupon.ExpiresAt = ts
	} else {
		coupon.ExpiresAt = time.Time{}
	}
	return coupon, true, nil
}

// Customer fetches a customer record by id.
func (c *Client) Customer(ctx context.Context, customerID string) (models.Customer, error) {
	var customer models.Customer
	if err := c.get(ctx, "customers/"+url.PathEscape(customerID), nil, &customer); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}
