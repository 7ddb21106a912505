package catalog

import (
	"strings"

	"vastra/models"
	"vastra/utils"
)

// Filter returns the products matching the criteria: a product must match
// every group that has a selection (AND across groups), and matches a group
// when any selected value matches (OR within a group). The input slice is
// never mutated.
func Filter(products []models.Product, c Criteria, buckets []PriceBucket) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(&p, c, buckets) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p *models.Product, c Criteria, buckets []PriceBucket) bool {
	for _, g := range c.groups() {
		if len(g.values) == 0 {
			continue
		}
		if g.name == "category" {
			if !matchAnyCategory(p, g.values) {
				return false
			}
			continue
		}
		if !matchGroup(p, g) {
			return false
		}
	}
	if len(c.Price) > 0 && !matchPrice(p, c.Price, buckets) {
		return false
	}
	return true
}

// matchGroup tries the product's attribute options first, then its tags,
// and for style/occasion finally its category names.
func matchGroup(p *models.Product, g filterGroup) bool {
	for _, v := range g.values {
		if matchAttribute(p, g.attributeName, v) {
			return true
		}
		if matchTag(p, v) {
			return true
		}
		if g.categoryFallback && matchCategoryFallback(p, v) {
			return true
		}
	}
	return false
}

func matchAttribute(p *models.Product, attributeName, value string) bool {
	for _, attr := range p.Attributes {
		if !strings.EqualFold(attr.Name, attributeName) {
			continue
		}
		for _, opt := range attr.Options {
			if strings.EqualFold(opt, value) || utils.ContainsIgnoreCase(opt, value) {
				return true
			}
		}
	}
	return false
}

func matchTag(p *models.Product, value string) bool {
	for _, tag := range p.Tags {
		if utils.ContainsIgnoreCase(tag, value) {
			return true
		}
	}
	return false
}

// matchCategoryFallback is the style/occasion category-name containment
// heuristic. It can overmatch (e.g. "party" hits a "Partywear" category);
// callers that want attribute-only matching drop this call.
func matchCategoryFallback(p *models.Product, value string) bool {
	for _, cat := range p.Categories {
		if utils.ContainsIgnoreCase(cat, value) {
			return true
		}
	}
	return false
}

func matchAnyCategory(p *models.Product, values []string) bool {
	for _, v := range values {
		for _, cat := range p.Categories {
			if strings.EqualFold(cat, v) || utils.ContainsIgnoreCase(cat, v) {
				return true
			}
		}
	}
	return false
}

// matchPrice checks the effective price against every selected bucket label.
// Buckets are (min, max] so adjacent buckets stay disjoint; the zero-min
// bucket also takes its lower bound, so a ₹500 product is inside
// "Under ₹500" and nothing else.
func matchPrice(p *models.Product, selected []string, buckets []PriceBucket) bool {
	price := p.EffectivePrice()
	for _, label := range selected {
		for _, b := range buckets {
			if !strings.EqualFold(b.Label, label) {
				continue
			}
			if price <= b.Max && (price > b.Min || b.Min <= 0) {
				return true
			}
		}
	}
	return false
}
