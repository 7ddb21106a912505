package commerce

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vastra/models"
)

// rawProduct mirrors the backend's loosely-typed product JSON: prices come
// back as strings, the sale price may be empty, timestamps are strings in
// a handful of layouts. Normalization to models.Product happens here and
// nowhere else.
type rawProduct struct {
	ID           json.Number `json:"id"`
	Name         string      `json:"name"`
	Slug         string      `json:"slug"`
	Description  string      `json:"description"`
	Price        string      `json:"price"`
	RegularPrice string      `json:"regular_price"`
	SalePrice    string      `json:"sale_price"`
	StockStatus  string      `json:"stock_status"`
	Featured     bool        `json:"featured"`
	TotalSales   int         `json:"total_sales"`
	DateCreated  string      `json:"date_created"`
	Attributes   []struct {
		Name    string   `json:"name"`
		Options []string `json:"options"`
	} `json:"attributes"`
	Categories []struct {
		Name string `json:"name"`
	} `json:"categories"`
	Tags []struct {
		Name string `json:"name"`
	} `json:"tags"`
	Images []struct {
		Src string `json:"src"`
	} `json:"images"`
	RelatedIDs []json.Number `json:"related_ids"`
}

func (rp rawProduct) normalize() models.Product {
	p := models.Product{
		ProductID:   rp.ID.String(),
		Name:        rp.Name,
		Slug:        rp.Slug,
		Description: rp.Description,
		InStock:     rp.StockStatus != "outofstock",
		Featured:    rp.Featured,
		TotalSales:  rp.TotalSales,
		CreatedAt:   parseBackendTime(rp.DateCreated),
	}

	p.RegularPrice = parsePrice(rp.RegularPrice)
	if p.RegularPrice == 0 {
		// some records only carry the current price
		p.RegularPrice = parsePrice(rp.Price)
	}
	if sale := parsePrice(rp.SalePrice); sale > 0 && sale < p.RegularPrice {
		p.SalePrice = &sale
	}

	for _, a := range rp.Attributes {
		p.Attributes = append(p.Attributes, models.Attribute{Name: a.Name, Options: a.Options})
	}
	for _, c := range rp.Categories {
		p.Categories = append(p.Categories, c.Name)
	}
	for _, t := range rp.Tags {
		p.Tags = append(p.Tags, t.Name)
	}
	for _, img := range rp.Images {
		if img.Src != "" {
			p.Images = append(p.Images, img.Src)
		}
	}
	for _, id := range rp.RelatedIDs {
		p.RelatedIDs = append(p.RelatedIDs, id.String())
	}
	return p
}

func parsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseBackendTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// Products fetches a product list, passing known query params through.
func (c *Client) Products(ctx context.Context, query url.Values) ([]models.Product, error) {
	var raw []rawProduct
	if err := c.get(ctx, "products", query, &raw); err != nil {
		return nil, err
	}
	out := make([]models.Product, 0, len(raw))
	for _, rp := range raw {
		out = append(out, rp.normalize())
	}
	return out, nil
}

// ProductBySlug looks a single product up by its slug. The backend answers
// slug queries with an array; an empty one means not found.
func (c *Client) ProductBySlug(ctx context.Context, slug string) (models.Product, bool, error) {
	q := url.Values{}
	q.Set("slug", slug)
	list, err := c.Products(ctx, q)
	if err != nil {
		return models.Product{}, false, err
	}
	if len(list) == 0 {
		return models.Product{}, false, nil
	}
	return list[0], true, nil
}

// ProductByID fetches one product by numeric id.
func (c *Client) ProductByID(ctx context.Context, id string) (models.Product, error) {
	var raw rawProduct
	if err := c.get(ctx, "products/"+url.PathEscape(id), nil, &raw); err != nil {
		return models.Product{}, err
	}
	return raw.normalize(), nil
}

type rawCategory struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Image       *struct {
		Src string `json:"src"`
	} `json:"image"`
}

// Categories fetches the category list.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var raw []rawCategory
	if err := c.get(ctx, "products/categories", nil, &raw); err != nil {
		return nil, err
	}
	out := make([]models.Category, 0, len(raw))
	for _, rc := range raw {
		cat := models.Category{
			ID:          rc.ID,
			Name:        rc.Name,
			Slug:        rc.Slug,
			Description: rc.Description,
			Count:       rc.Count,
		}
		if rc.Image != nil {
			cat.Image = rc.Image.Src
		}
		out = append(out, cat)
	}
	return out, nil
}
