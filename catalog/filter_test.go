package catalog

import (
	"net/url"
	"testing"

	"vastra/models"
)

func price(v float64) *float64 { return &v }

func sampleProducts() []models.Product {
	return []models.Product{
		{
			ProductID:    "101",
			Name:         "Cotton Kurta",
			RegularPrice: 1200,
			SalePrice:    price(900),
			Attributes: []models.Attribute{
				{Name: "Size", Options: []string{"S", "M", "L"}},
				{Name: "Fabric", Options: []string{"Cotton"}},
			},
			Categories: []string{"Kurtas"},
			Tags:       []string{"casual"},
		},
		{
			ProductID:    "102",
			Name:         "Silk Saree",
			RegularPrice: 5000,
			Attributes: []models.Attribute{
				{Name: "Fabric", Options: []string{"Silk"}},
			},
			Categories: []string{"Sarees", "Partywear"},
		},
		{
			ProductID:    "103",
			Name:         "Linen Shirt",
			RegularPrice: 500,
			Attributes: []models.Attribute{
				{Name: "Size", Options: []string{"XL"}},
				{Name: "Fabric", Options: []string{"Linen"}},
			},
			Categories: []string{"Shirts"},
		},
	}
}

func TestFilterEmptyCriteriaReturnsAll(t *testing.T) {
	products := sampleProducts()
	got := Filter(products, Criteria{}, DefaultPriceBuckets)
	if len(got) != len(products) {
		t.Fatalf("expected %d products, got %d", len(products), len(got))
	}
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter(nil, Criteria{Size: []string{"M"}}, DefaultPriceBuckets)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestFilterSizeMatchesSingleProduct(t *testing.T) {
	c := Criteria{Size: []string{"M"}, Colors: []string{}}
	got := Filter(sampleProducts(), c, DefaultPriceBuckets)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 match, got %d", len(got))
	}
	if got[0].ProductID != "101" {
		t.Fatalf("expected product 101, got %s", got[0].ProductID)
	}
}

func TestFilterGroupWithoutSourceIsNonMatching(t *testing.T) {
	// product 102 has no Size attribute; with a size selection it must drop out
	c := Criteria{Size: []string{"XL"}}
	got := Filter(sampleProducts(), c, DefaultPriceBuckets)
	if len(got) != 1 || got[0].ProductID != "103" {
		t.Fatalf("expected only product 103, got %+v", got)
	}
}

func TestFilterAndAcrossGroups(t *testing.T) {
	c := Criteria{Size: []string{"M"}, Fabric: []string{"Silk"}}
	got := Filter(sampleProducts(), c, DefaultPriceBuckets)
	if len(got) != 0 {
		t.Fatalf("no product is both size M and silk; got %d", len(got))
	}
}

func TestFilterOrWithinGroup(t *testing.T) {
	c := Criteria{Fabric: []string{"Silk", "Linen"}}
	got := Filter(sampleProducts(), c, DefaultPriceBuckets)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
}

func TestFilterTagFallback(t *testing.T) {
	c := Criteria{Pattern: []string{"casual"}}
	got := Filter(sampleProducts(), c, DefaultPriceBuckets)
	if len(got) != 1 || got[0].ProductID != "101" {
		t.Fatalf("expected tag match on product 101, got %+v", got)
	}
}

func TestFilterOccasionCategoryFallback(t *testing.T) {
	// "party" has no attribute or tag on product 102, but its Partywear
	// category contains it
	c := Criteria{Occasion: []string{"party"}}
	got := Filter(sampleProducts(), c, DefaultPriceBuckets)
	if len(got) != 1 || got[0].ProductID != "102" {
		t.Fatalf("expected category fallback match on 102, got %+v", got)
	}
}

func TestFilterCategoryGroup(t *testing.T) {
	c := Criteria{Category: []string{"Sarees"}}
	got := Filter(sampleProducts(), c, DefaultPriceBuckets)
	if len(got) != 1 || got[0].ProductID != "102" {
		t.Fatalf("expected 102, got %+v", got)
	}
}

func TestFilterPriceBucketInclusiveUpperBound(t *testing.T) {
	// effective price exactly 500 falls inside "Under ₹500"
	c := Criteria{Price: []string{"Under ₹500"}}
	got := Filter(sampleProducts(), c, DefaultPriceBuckets)
	if len(got) != 1 || got[0].ProductID != "103" {
		t.Fatalf("expected boundary product 103, got %+v", got)
	}
}

func TestFilterPriceUsesEffectivePrice(t *testing.T) {
	// product 101 sells at 900, not its 1200 regular price
	c := Criteria{Price: []string{"₹500 - ₹1000"}}
	got := Filter(sampleProducts(), c, DefaultPriceBuckets)
	if len(got) != 1 || got[0].ProductID != "101" {
		t.Fatalf("expected sale-priced product 101, got %+v", got)
	}
}

func TestFilterPriceBucketsAreDisjoint(t *testing.T) {
	// a boundary price falls in exactly one bucket
	boundary := []models.Product{{ProductID: "edge", RegularPrice: 500}}
	matched := 0
	for _, b := range DefaultPriceBuckets {
		got := Filter(boundary, Criteria{Price: []string{b.Label}}, DefaultPriceBuckets)
		if len(got) > 0 {
			matched++
			if b.Label != "Under ₹500" {
				t.Fatalf("price 500 matched %q", b.Label)
			}
		}
	}
	if matched != 1 {
		t.Fatalf("price 500 matched %d buckets", matched)
	}
}

func TestFilterNarrowingNeverGrows(t *testing.T) {
	products := sampleProducts()
	base := Filter(products, Criteria{Fabric: []string{"Cotton"}}, DefaultPriceBuckets)
	narrowed := Filter(products, Criteria{Fabric: []string{"Cotton"}, Size: []string{"M"}}, DefaultPriceBuckets)
	if len(narrowed) > len(base) {
		t.Fatalf("adding a group grew the result: %d > %d", len(narrowed), len(base))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	_ = Filter(products, Criteria{Size: []string{"M"}}, DefaultPriceBuckets)
	if products[0].ProductID != "101" || len(products) != 3 {
		t.Fatal("input slice was mutated")
	}
}

func TestParseCriteriaAndCountSelected(t *testing.T) {
	q := url.Values{}
	q.Set("size", "M,L")
	q.Set("fabric", "Cotton")
	q.Set("price", "Under ₹500")

	c := ParseCriteria(q)
	if got := c.CountSelected(); got != 4 {
		t.Fatalf("expected CountSelected 4, got %d", got)
	}
}

func TestClearResetsCount(t *testing.T) {
	c := Criteria{Size: []string{"M"}, Colors: []string{"Red", "Blue"}, Price: []string{"Under ₹500"}}
	c.Clear()
	if got := c.CountSelected(); got != 0 {
		t.Fatalf("expected 0 after Clear, got %d", got)
	}
	if len(c.Price) != 0 {
		t.Fatal("price selections survived Clear")
	}
}
