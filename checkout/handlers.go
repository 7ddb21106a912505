package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"vastra/auth"
	"vastra/cart"
	"vastra/commerce"
	"vastra/models"
	"vastra/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler drives the checkout wizard per session: the cart feeds the order
// payload, the commerce backend receives it on the payment step.
type Handler struct {
	Client *commerce.Client
	Carts  *cart.Store

	mu      sync.Mutex
	wizards map[string]*Wizard
}

func NewHandler(client *commerce.Client, carts *cart.Store) *Handler {
	return &Handler{
		Client:  client,
		Carts:   carts,
		wizards: make(map[string]*Wizard),
	}
}

func (h *Handler) wizard(sessionID string) *Wizard {
	h.mu.Lock()
	defer h.mu.Unlock()
	wz, ok := h.wizards[sessionID]
	if !ok {
		wz = NewWizard()
		h.wizards[sessionID] = wz
	}
	return wz
}

// Drop discards a session's wizard, e.g. on logout.
func (h *Handler) Drop(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.wizards, sessionID)
}

type stateResponse struct {
	Step    Step        `json:"step"`
	Address AddressForm `json:"address,omitempty"`
	OrderID string      `json:"orderId,omitempty"`
}

// GetState reports the current wizard step.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	wz := h.wizard(auth.SessionID(w, r))
	utils.RespondWithJSON(w, http.StatusOK, stateResponse{
		Step:    wz.Step(),
		Address: wz.Address(),
		OrderID: wz.OrderID(),
	})
}

// SubmitAddress validates the address form; on success the wizard advances
// to the payment step, on field errors it stays put.
func (h *Handler) SubmitAddress(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form AddressForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	wz := h.wizard(auth.SessionID(w, r))
	fieldErrs, err := wz.SubmitAddress(form)
	if errors.Is(err, ErrInvalidTransition) {
		utils.RespondWithError(w, http.StatusConflict, "Address can only be submitted from the address step")
		return
	}
	if len(fieldErrs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{
			"step":   wz.Step(),
			"errors": fieldErrs,
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stateResponse{Step: wz.Step(), Address: wz.Address()})
}

type paymentRequest struct {
	PaymentMethod string `json:"paymentMethod"`
	CouponCode    string `json:"couponCode,omitempty"`
}

// SubmitPayment places the order with the commerce backend. Only a
// successful placement moves the wizard to confirmation; failures keep the
// shopper on the payment step.
func (h *Handler) SubmitPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "cod"
	}

	sid := auth.SessionID(w, r)
	c := h.Carts.Get(sid)
	if c.ItemCount() == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	user, _ := auth.ReadSessionCookie(r)
	wz := h.wizard(sid)

	err := wz.ConfirmPayment(func(addr AddressForm) (string, error) {
		order, err := h.Client.CreateOrder(ctx, buildOrderRequest(c, addr, req, user.ID))
		if err != nil {
			return "", err
		}
		return order.Number, nil
	})
	if errors.Is(err, ErrInvalidTransition) {
		utils.RespondWithError(w, http.StatusConflict, "Complete the address step first")
		return
	}
	if err != nil {
		commerce.WriteError(w, err)
		return
	}

	resp := stateResponse{
		Step:    wz.Step(),
		Address: wz.Address(),
		OrderID: wz.OrderID(),
	}

	// order placed; the cart is spent and the wizard is dropped so the
	// same session can start a fresh checkout
	c.Clear()
	h.Drop(sid)

	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// EditAddress moves from payment back to the address step.
func (h *Handler) EditAddress(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	wz := h.wizard(auth.SessionID(w, r))
	if err := wz.EditAddress(); err != nil {
		utils.RespondWithError(w, http.StatusConflict, "Address can only be edited from the payment step")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stateResponse{Step: wz.Step(), Address: wz.Address()})
}

func buildOrderRequest(c *cart.Cart, addr AddressForm, req paymentRequest, customerID string) models.OrderRequest {
	first, last := splitName(addr.Name)
	orderAddr := models.OrderAddress{
		FirstName: first,
		LastName:  last,
		Address1:  addr.Address1,
		Address2:  addr.Address2,
		City:      addr.City,
		State:     addr.State,
		Postcode:  addr.Pincode,
		Country:   "IN",
		Email:     addr.Email,
		Phone:     addr.Phone,
	}

	order := models.OrderRequest{
		PaymentMethod: req.PaymentMethod,
		Billing:       orderAddr,
		Shipping:      orderAddr,
	}
	// the backend keys customers numerically; guests place without an id
	if id, err := strconv.Atoi(customerID); err == nil {
		order.CustomerID = id
	}
	for _, item := range c.Items() {
		line := models.OrderLineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if item.Size != "" {
			line.MetaData = map[string]string{"size": item.Size}
		}
		order.LineItems = append(order.LineItems, line)
	}
	if code := strings.TrimSpace(req.CouponCode); code != "" {
		order.CouponLines = []models.CouponLine{{Code: strings.ToLower(code)}}
	}
	return order
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
