package catalog

import (
	"testing"
	"time"

	"vastra/models"
)

func sortFixture() []models.Product {
	return []models.Product{
		{ProductID: "a", RegularPrice: 1200, SalePrice: price(900)},
		{ProductID: "b", RegularPrice: 500},
		{ProductID: "c", RegularPrice: 2000, SalePrice: price(1500)},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i := range products {
		out[i] = products[i].ProductID
	}
	return out
}

func assertOrder(t *testing.T, got []models.Product, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ProductID != want[i] {
			t.Fatalf("position %d: expected %s, got %v", i, want[i], ids(got))
		}
	}
}

func TestSortPriceLowUsesEffectivePrice(t *testing.T) {
	got := Sort(sortFixture(), SortPriceLow)
	assertOrder(t, got, "b", "a", "c") // 500, 900 effective, 1500 effective
}

func TestSortPriceHigh(t *testing.T) {
	got := Sort(sortFixture(), SortPriceHigh)
	assertOrder(t, got, "c", "a", "b")
}

func TestSortDiscount(t *testing.T) {
	// a: 25%, c: 25%, b: 0% — equal discounts keep input order
	got := Sort(sortFixture(), SortDiscount)
	assertOrder(t, got, "a", "c", "b")
}

func TestSortNewestTreatsZeroTimeAsOldest(t *testing.T) {
	now := time.Now()
	products := []models.Product{
		{ProductID: "old", CreatedAt: now.Add(-48 * time.Hour)},
		{ProductID: "missing"}, // zero timestamp
		{ProductID: "new", CreatedAt: now},
	}
	got := Sort(products, SortNewest)
	assertOrder(t, got, "new", "old", "missing")
}

func TestSortFeaturedThenNewest(t *testing.T) {
	now := time.Now()
	products := []models.Product{
		{ProductID: "plain-new", CreatedAt: now},
		{ProductID: "feat-old", Featured: true, CreatedAt: now.Add(-time.Hour)},
		{ProductID: "feat-new", Featured: true, CreatedAt: now},
	}
	got := Sort(products, SortFeatured)
	assertOrder(t, got, "feat-new", "feat-old", "plain-new")
}

func TestSortPopularityTieBreaksOnFeatured(t *testing.T) {
	products := []models.Product{
		{ProductID: "x", TotalSales: 10},
		{ProductID: "y", TotalSales: 10, Featured: true},
		{ProductID: "z", TotalSales: 50},
	}
	got := Sort(products, SortPopular)
	assertOrder(t, got, "z", "y", "x")
}

func TestSortIsStable(t *testing.T) {
	products := []models.Product{
		{ProductID: "first", RegularPrice: 999},
		{ProductID: "second", RegularPrice: 999},
		{ProductID: "third", RegularPrice: 999},
	}
	got := Sort(products, SortPriceLow)
	assertOrder(t, got, "first", "second", "third")
}

func TestSortSortedInputIsNoOp(t *testing.T) {
	once := Sort(sortFixture(), SortPriceLow)
	twice := Sort(once, SortPriceLow)
	assertOrder(t, twice, ids(once)...)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	products := sortFixture()
	_ = Sort(products, SortPriceLow)
	assertOrder(t, products, "a", "b", "c")
}

func TestParseSortKeyDefaultsToFeatured(t *testing.T) {
	if got := ParseSortKey(""); got != SortFeatured {
		t.Fatalf("expected featured default, got %s", got)
	}
	if got := ParseSortKey("bogus"); got != SortFeatured {
		t.Fatalf("expected featured for unknown key, got %s", got)
	}
	if got := ParseSortKey("price-low"); got != SortPriceLow {
		t.Fatalf("expected price-low, got %s", got)
	}
}

func TestApplyFiltersAndSort(t *testing.T) {
	products := []models.Product{
		{
			ProductID:    "201",
			RegularPrice: 800,
			Attributes:   []models.Attribute{{Name: "Size", Options: []string{"M"}}},
		},
		{
			ProductID:    "202",
			RegularPrice: 300,
			Attributes:   []models.Attribute{{Name: "Size", Options: []string{"M"}}},
		},
		{
			ProductID:    "203",
			RegularPrice: 400,
			Attributes:   []models.Attribute{{Name: "Size", Options: []string{"S"}}},
		},
	}
	got := ApplyFiltersAndSort(products, Criteria{Size: []string{"M"}}, SortPriceLow, DefaultPriceBuckets)
	assertOrder(t, got, "202", "201")
}
