package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vastra/models"

	"github.com/julienschmidt/httprouter"
)

func cartRouter(h *Handler) *httprouter.Router {
	router := httprouter.New()
	router.GET("/api/cart", h.GetCart)
	router.POST("/api/cart/items", h.AddItem)
	router.PUT("/api/cart/items/:itemkey", h.SetQuantity)
	router.DELETE("/api/cart/items/:itemkey", h.RemoveItem)
	router.DELETE("/api/cart", h.ClearCart)
	return router
}

func doCart(t *testing.T, router *httprouter.Router, method, path, body, sid string) (*httptest.ResponseRecorder, models.CartSummary) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "vastra_sid", Value: sid})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var summary models.CartSummary
	if rec.Code < 400 {
		if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
			t.Fatalf("%s %s: bad summary JSON: %v", method, path, err)
		}
	}
	return rec, summary
}

func TestGetCartStartsEmpty(t *testing.T) {
	router := cartRouter(NewHandler(NewStore()))
	rec, summary := doCart(t, router, http.MethodGet, "/api/cart", "", "sid-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if summary.ItemCount != 0 || len(summary.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", summary)
	}
}

func TestAddItemEndpoint(t *testing.T) {
	router := cartRouter(NewHandler(NewStore()))
	body := `{"productId":"101","name":"Cotton Kurta","price":500,"originalPrice":700,"size":"M","quantity":2}`
	rec, summary := doCart(t, router, http.MethodPost, "/api/cart/items", body, "sid-1")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if summary.ItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", summary.ItemCount)
	}
	if len(summary.Items) != 1 || summary.Items[0].Key != "101-M" {
		t.Fatalf("expected one line keyed 101-M, got %+v", summary.Items)
	}
	if summary.DiscountedSubtotal != 1000 || summary.OriginalSubtotal != 1400 {
		t.Fatalf("bad totals: %+v", summary)
	}
}

func TestAddItemRejectsBadPayload(t *testing.T) {
	router := cartRouter(NewHandler(NewStore()))

	rec, _ := doCart(t, router, http.MethodPost, "/api/cart/items", `not json`, "sid-1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed JSON: expected 400, got %d", rec.Code)
	}

	rec, _ = doCart(t, router, http.MethodPost, "/api/cart/items", `{"name":"No ID"}`, "sid-1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing product id: expected 400, got %d", rec.Code)
	}
}

func TestAddItemClampsOriginalPrice(t *testing.T) {
	router := cartRouter(NewHandler(NewStore()))
	body := `{"productId":"101","name":"Kurta","price":900,"originalPrice":100,"quantity":1}`
	rec, summary := doCart(t, router, http.MethodPost, "/api/cart/items", body, "sid-1")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if summary.Items[0].OriginalPrice != 900 {
		t.Fatalf("original price below unit price must be clamped, got %v", summary.Items[0].OriginalPrice)
	}
}

func TestSetQuantityAndRemoveEndpoints(t *testing.T) {
	router := cartRouter(NewHandler(NewStore()))
	add := `{"productId":"101","name":"Kurta","price":500,"originalPrice":500,"size":"M","quantity":2}`
	doCart(t, router, http.MethodPost, "/api/cart/items", add, "sid-1")

	rec, summary := doCart(t, router, http.MethodPut, "/api/cart/items/101-M", `{"quantity":5}`, "sid-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if summary.ItemCount != 5 {
		t.Fatalf("expected item count 5, got %d", summary.ItemCount)
	}

	rec, summary = doCart(t, router, http.MethodPut, "/api/cart/items/101-M", `{"quantity":0}`, "sid-1")
	if rec.Code != http.StatusOK || len(summary.Items) != 0 {
		t.Fatalf("zero quantity must remove the line: %d %+v", rec.Code, summary)
	}

	doCart(t, router, http.MethodPost, "/api/cart/items", add, "sid-1")
	rec, summary = doCart(t, router, http.MethodDelete, "/api/cart/items/101-M", "", "sid-1")
	if rec.Code != http.StatusOK || len(summary.Items) != 0 {
		t.Fatalf("delete must remove the line: %d %+v", rec.Code, summary)
	}
}

func TestClearCartEndpoint(t *testing.T) {
	router := cartRouter(NewHandler(NewStore()))
	doCart(t, router, http.MethodPost, "/api/cart/items", `{"productId":"101","name":"A","price":100,"originalPrice":100,"quantity":1}`, "sid-1")
	doCart(t, router, http.MethodPost, "/api/cart/items", `{"productId":"102","name":"B","price":200,"originalPrice":200,"quantity":1}`, "sid-1")

	rec, summary := doCart(t, router, http.MethodDelete, "/api/cart", "", "sid-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if summary.ItemCount != 0 || summary.DiscountedSubtotal != 0 {
		t.Fatalf("expected cleared cart, got %+v", summary)
	}
}

func TestCartsAreSessionScoped(t *testing.T) {
	router := cartRouter(NewHandler(NewStore()))
	doCart(t, router, http.MethodPost, "/api/cart/items", `{"productId":"101","name":"A","price":100,"originalPrice":100,"quantity":1}`, "sid-1")

	_, other := doCart(t, router, http.MethodGet, "/api/cart", "", "sid-2")
	if other.ItemCount != 0 {
		t.Fatalf("sessions must not share carts, got %+v", other)
	}
}

func TestFirstContactIssuesSessionCookie(t *testing.T) {
	router := cartRouter(NewHandler(NewStore()))
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "vastra_sid" && c.Value != "" {
			return
		}
	}
	t.Fatal("expected a vastra_sid cookie on first contact")
}
