package orders

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"vastra/auth"
	"vastra/commerce"
	"vastra/middleware"
	"vastra/models"
	"vastra/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler serves order history and order detail for the logged-in shopper.
type Handler struct {
	Client *commerce.Client
}

func NewHandler(client *commerce.Client) *Handler {
	return &Handler{Client: client}
}

// shopperID resolves the caller's customer id: the session cookie for
// browser traffic, the bearer token claims for API clients.
func shopperID(r *http.Request) string {
	if user, ok := auth.ReadSessionCookie(r); ok && user.ID != "" {
		return user.ID
	}
	return middleware.UserIDFromContext(r.Context())
}

// ListOrders returns the history for the logged-in shopper.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	customerID := shopperID(r)
	if customerID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	list, err := h.Client.Orders(ctx, customerID)
	if err != nil {
		commerce.WriteError(w, err)
		return
	}
	if list == nil {
		list = []models.Order{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetOrder fetches one order, refusing orders that belong to someone else.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, ok := h.ownedOrder(ctx, w, r, ps.ByName("orderid"))
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

func (h *Handler) ownedOrder(ctx context.Context, w http.ResponseWriter, r *http.Request, orderID string) (models.Order, bool) {
	customerID := shopperID(r)
	if customerID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
		return models.Order{}, false
	}

	order, err := h.Client.Order(ctx, orderID)
	if err != nil {
		commerce.WriteError(w, err)
		return models.Order{}, false
	}
	if strconv.Itoa(order.CustomerID) != customerID {
		utils.RespondWithError(w, http.StatusForbidden, "Order belongs to another customer")
		return models.Order{}, false
	}
	return order, true
}
