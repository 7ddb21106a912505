package catalog

import (
	"net/url"

	"vastra/utils"
)

// Criteria holds the selected values per filter group. Values are unique
// within a group and order does not matter; an empty group never restricts
// the result.
type Criteria struct {
	Size     []string `json:"size,omitempty"`
	Colors   []string `json:"colors,omitempty"`
	Category []string `json:"category,omitempty"`
	Fabric   []string `json:"fabric,omitempty"`
	Occasion []string `json:"occasion,omitempty"`
	Pattern  []string `json:"pattern,omitempty"`
	Price    []string `json:"price,omitempty"`
	Style    []string `json:"style,omitempty"`
}

// PriceBucket is a named price range used by the price group. Ranges are
// (min, max], with the zero-min bucket also covering its lower bound.
type PriceBucket struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// DefaultPriceBuckets is the fixed bucket table the storefront renders.
var DefaultPriceBuckets = []PriceBucket{
	{Label: "Under ₹500", Min: 0, Max: 500},
	{Label: "₹500 - ₹1000", Min: 500, Max: 1000},
	{Label: "₹1000 - ₹2000", Min: 1000, Max: 2000},
	{Label: "₹2000 - ₹5000", Min: 2000, Max: 5000},
	{Label: "Above ₹5000", Min: 5000, Max: 1000000},
}

// ParseCriteria reads comma-separated group selections from query params.
func ParseCriteria(q url.Values) Criteria {
	return Criteria{
		Size:     utils.SplitCSV(q.Get("size")),
		Colors:   utils.SplitCSV(q.Get("colors")),
		Category: utils.SplitCSV(q.Get("category")),
		Fabric:   utils.SplitCSV(q.Get("fabric")),
		Occasion: utils.SplitCSV(q.Get("occasion")),
		Pattern:  utils.SplitCSV(q.Get("pattern")),
		Price:    utils.SplitCSV(q.Get("price")),
		Style:    utils.SplitCSV(q.Get("style")),
	}
}

// CountSelected is the total number of selected values across all groups,
// used for the filter badge.
func (c Criteria) CountSelected() int {
	n := len(c.Price)
	for _, group := range c.groups() {
		n += len(group.values)
	}
	return n
}

// Clear drops every selection.
func (c *Criteria) Clear() {
	*c = Criteria{}
}

type filterGroup struct {
	name          string
	values        []string
	attributeName string
	// style/occasion selections also match against category names
	categoryFallback bool
}

func (c Criteria) groups() []filterGroup {
	return []filterGroup{
		{name: "size", values: c.Size, attributeName: "Size"},
		{name: "colors", values: c.Colors, attributeName: "Color"},
		{name: "category", values: c.Category},
		{name: "fabric", values: c.Fabric, attributeName: "Fabric"},
		{name: "occasion", values: c.Occasion, attributeName: "Occasion", categoryFallback: true},
		{name: "pattern", values: c.Pattern, attributeName: "Pattern"},
		{name: "style", values: c.Style, attributeName: "Style", categoryFallback: true},
	}
}
