package catalog

import (
	"sort"

	"vastra/models"
)

// SortKey selects the comparator for product ordering.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortDiscount  SortKey = "discount"
	SortPopular   SortKey = "popularity"
)

// ParseSortKey maps a query value onto a known key, defaulting to featured.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortNewest, SortPriceLow, SortPriceHigh, SortDiscount, SortPopular:
		return SortKey(s)
	default:
		return SortFeatured
	}
}

// Sort returns a newly ordered copy of products; the input is not mutated
// and ties keep their incoming order.
func Sort(products []models.Product, key SortKey) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	less := comparator(key)
	sort.SliceStable(out, func(i, j int) bool {
		return less(&out[i], &out[j])
	})
	return out
}

func comparator(key SortKey) func(a, b *models.Product) bool {
	switch key {
	case SortPriceLow:
		return func(a, b *models.Product) bool {
			return a.EffectivePrice() < b.EffectivePrice()
		}
	case SortPriceHigh:
		return func(a, b *models.Product) bool {
			return a.EffectivePrice() > b.EffectivePrice()
		}
	case SortDiscount:
		return func(a, b *models.Product) bool {
			return a.DiscountPercent() > b.DiscountPercent()
		}
	case SortNewest:
		// zero timestamps compare as the epoch, i.e. oldest
		return func(a, b *models.Product) bool {
			return a.CreatedAt.After(b.CreatedAt)
		}
	case SortPopular:
		return func(a, b *models.Product) bool {
			if a.TotalSales != b.TotalSales {
				return a.TotalSales > b.TotalSales
			}
			return a.Featured && !b.Featured
		}
	default: // featured: flagged first, then newest
		return func(a, b *models.Product) bool {
			if a.Featured != b.Featured {
				return a.Featured
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
	}
}

// ApplyFiltersAndSort is the single entry point the handlers use: filter,
// then stable-sort.
func ApplyFiltersAndSort(products []models.Product, c Criteria, key SortKey, buckets []PriceBucket) []models.Product {
	return Sort(Filter(products, c, buckets), key)
}
