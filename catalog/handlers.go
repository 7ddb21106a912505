package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"vastra/commerce"
	"vastra/models"
	"vastra/rdx"
	"vastra/utils"

	"github.com/julienschmidt/httprouter"
)

const (
	fetchTimeout = 10 * time.Second
	cacheTTL     = 60 * time.Second
)

// Handler serves the catalog routes: proxied product/category reads with the
// filter/sort engine applied server-side.
type Handler struct {
	Client *commerce.Client
}

func NewHandler(client *commerce.Client) *Handler {
	return &Handler{Client: client}
}

// GetProducts fetches the upstream list (through the cache), then applies
// the selected filters and sort.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), fetchTimeout)
	defer cancel()

	q := r.URL.Query()
	products, err := h.fetchProducts(ctx, upstreamQuery(q))
	if err != nil {
		commerce.WriteError(w, err)
		return
	}

	criteria := ParseCriteria(q)
	sortKey := ParseSortKey(q.Get("sort"))
	result := ApplyFiltersAndSort(products, criteria, sortKey, DefaultPriceBuckets)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"products":      result,
		"total":         len(result),
		"selectedCount": criteria.CountSelected(),
		"sort":          sortKey,
	})
}

// GetProduct resolves a single product by slug, falling back to id lookup
// for numeric identifiers.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), fetchTimeout)
	defer cancel()

	slug := ps.ByName("slug")
	product, found, err := h.Client.ProductBySlug(ctx, slug)
	if err != nil {
		commerce.WriteError(w, err)
		return
	}
	if !found {
		product, err = h.Client.ProductByID(ctx, slug)
		if err != nil {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// GetCategories lists categories, cached like the product list.
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), fetchTimeout)
	defer cancel()

	const cacheKey = "catalog:categories"
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		var cats []models.Category
		if json.Unmarshal([]byte(cached), &cats) == nil {
			utils.RespondWithJSON(w, http.StatusOK, cats)
			return
		}
	}

	cats, err := h.Client.Categories(ctx)
	if err != nil {
		commerce.WriteError(w, err)
		return
	}
	if cats == nil {
		cats = []models.Category{}
	}
	if data, err := json.Marshal(cats); err == nil {
		rdx.RdxSetWithTTL(cacheKey, string(data), cacheTTL)
	}
	utils.RespondWithJSON(w, http.StatusOK, cats)
}

// GetPriceBuckets exposes the fixed bucket table for the filter UI.
func (h *Handler) GetPriceBuckets(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, DefaultPriceBuckets)
}

func (h *Handler) fetchProducts(ctx context.Context, upstream url.Values) ([]models.Product, error) {
	cacheKey := "catalog:products:" + upstream.Encode()
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		var products []models.Product
		if json.Unmarshal([]byte(cached), &products) == nil {
			return products, nil
		}
	}

	products, err := h.Client.Products(ctx, upstream)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	if data, err := json.Marshal(products); err == nil {
		rdx.RdxSetWithTTL(cacheKey, string(data), cacheTTL)
	}
	return products, nil
}

// upstreamQuery keeps only the params the backend understands; filter groups
// are applied locally.
func upstreamQuery(q url.Values) url.Values {
	out := url.Values{}
	for _, key := range []string{"category", "search", "page", "per_page", "featured"} {
		if v := q.Get(key); v != "" {
			out.Set(key, v)
		}
	}
	return out
}
