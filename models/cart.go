package models

// LineItem is one entry in the cart, keyed by product plus optional size
// variant. Price is the unit price actually charged; OriginalPrice is the
// pre-discount unit price.
type LineItem struct {
	Key           string  `json:"key"`
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Image         string  `json:"image,omitempty"`
	Size          string  `json:"size,omitempty"`
	Quantity      int     `json:"quantity"`
}

// LineKey builds the composite cart key: product id, plus "-<size>" when a
// size variant was chosen.
func LineKey(productID, size string) string {
	if size == "" {
		return productID
	}
	return productID + "-" + size
}

// CartSummary is the cart payload sent to the client: the line items plus
// totals recomputed from them on every read.
type CartSummary struct {
	Items              []LineItem `json:"items"`
	ItemCount          int        `json:"itemCount"`
	DiscountedSubtotal float64    `json:"discountedSubtotal"`
	OriginalSubtotal   float64    `json:"originalSubtotal"`
}
