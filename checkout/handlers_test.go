package checkout

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vastra/cart"
	"vastra/commerce"
	"vastra/config"
	"vastra/models"

	"github.com/julienschmidt/httprouter"
)

func checkoutFixture(t *testing.T, backend http.HandlerFunc) (*Handler, *cart.Store, func()) {
	t.Helper()
	srv := httptest.NewServer(backend)
	client := commerce.New(&config.Config{
		CommerceAPIURL: srv.URL,
		CommerceKey:    "ck_test",
		CommerceSecret: "cs_test",
		JWTLoginURL:    srv.URL + "/token",
	})
	carts := cart.NewStore()
	return NewHandler(client, carts), carts, srv.Close
}

func doCheckout(t *testing.T, handle httprouter.Handle, method, path, body, sid string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: "vastra_sid", Value: sid})
	rec := httptest.NewRecorder()
	handle(rec, req, nil)
	return rec
}

func addressBody() string {
	return `{"name":"Asha Verma","email":"asha@example.com","phone":"9876543210","address1":"12 MG Road","city":"Pune","state":"Maharashtra","pincode":"411001"}`
}

func TestSecondCheckoutInSameSession(t *testing.T) {
	h, carts, done := checkoutFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 55, "number": "1055", "status": "processing", "total": "500"}`))
	})
	defer done()

	const sid = "sid-1"
	carts.Get(sid).AddOrReplace(models.LineItem{ProductID: "101", Name: "Kurta", Price: 500, OriginalPrice: 500, Quantity: 1})

	rec := doCheckout(t, h.SubmitAddress, http.MethodPost, "/api/checkout/address", addressBody(), sid)
	if rec.Code != http.StatusOK {
		t.Fatalf("address: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doCheckout(t, h.SubmitPayment, http.MethodPost, "/api/checkout/payment", `{"paymentMethod":"cod"}`, sid)
	if rec.Code != http.StatusCreated {
		t.Fatalf("payment: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var placed struct {
		Step    Step   `json:"step"`
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &placed); err != nil {
		t.Fatalf("payment response: %v", err)
	}
	if placed.Step != StepConfirmation || placed.OrderID != "1055" {
		t.Fatalf("expected confirmation with order 1055, got %+v", placed)
	}
	if carts.Get(sid).ItemCount() != 0 {
		t.Fatal("cart must be cleared after placement")
	}

	// the session can start over: fresh wizard, fresh cart
	rec = doCheckout(t, h.GetState, http.MethodGet, "/api/checkout", "", sid)
	var state struct {
		Step Step `json:"step"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("state response: %v", err)
	}
	if state.Step != StepAddress {
		t.Fatalf("expected a fresh wizard on the address step, got %s", state.Step)
	}

	carts.Get(sid).AddOrReplace(models.LineItem{ProductID: "102", Name: "Saree", Price: 900, OriginalPrice: 900, Quantity: 1})
	rec = doCheckout(t, h.SubmitAddress, http.MethodPost, "/api/checkout/address", addressBody(), sid)
	if rec.Code != http.StatusOK {
		t.Fatalf("second checkout address: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSubmitPaymentEmptyCart(t *testing.T) {
	h, _, done := checkoutFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called for an empty cart")
	})
	defer done()

	rec := doCheckout(t, h.SubmitPayment, http.MethodPost, "/api/checkout/payment", `{}`, "sid-1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBuildOrderRequestNumericCustomer(t *testing.T) {
	c := cart.New()
	c.AddOrReplace(models.LineItem{ProductID: "101", Name: "Kurta", Price: 500, OriginalPrice: 500, Size: "M", Quantity: 2})

	order := buildOrderRequest(c, validAddress(), paymentRequest{PaymentMethod: "cod"}, "7")
	if order.CustomerID != 7 {
		t.Fatalf("expected numeric customer id 7, got %v", order.CustomerID)
	}
	if len(order.LineItems) != 1 || order.LineItems[0].MetaData["size"] != "M" {
		t.Fatalf("line items lost: %+v", order.LineItems)
	}

	guest := buildOrderRequest(c, validAddress(), paymentRequest{PaymentMethod: "cod"}, "")
	if guest.CustomerID != 0 {
		t.Fatalf("guest orders must omit the customer id, got %v", guest.CustomerID)
	}
}
