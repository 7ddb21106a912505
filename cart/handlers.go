package cart

import (
	"encoding/json"
	"log"
	"net/http"

	"vastra/auth"
	"vastra/models"
	"vastra/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler serves the cart sub-API. These routes authenticate by session
// cookie only; the backend key/secret never apply here.
type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// GetCart returns the session's items and totals.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c := h.Store.Get(auth.SessionID(w, r))
	utils.RespondWithJSON(w, http.StatusOK, c.Summary())
}

// AddItem adds or replaces a line item (same key overwrites the quantity).
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var item models.LineItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Println("AddItem decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if item.ProductID == "" || item.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing or invalid fields")
		return
	}
	if item.OriginalPrice < item.Price {
		item.OriginalPrice = item.Price
	}

	c := h.Store.Get(auth.SessionID(w, r))
	c.AddOrReplace(item)
	utils.RespondWithJSON(w, http.StatusCreated, c.Summary())
}

// SetQuantity updates one line item's quantity; zero or less removes it.
func (h *Handler) SetQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	c := h.Store.Get(auth.SessionID(w, r))
	c.SetQuantity(ps.ByName("itemkey"), payload.Quantity)
	utils.RespondWithJSON(w, http.StatusOK, c.Summary())
}

// RemoveItem deletes one line item; absent keys are not an error.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	c := h.Store.Get(auth.SessionID(w, r))
	c.Remove(ps.ByName("itemkey"))
	utils.RespondWithJSON(w, http.StatusOK, c.Summary())
}

// ClearCart empties the session's cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c := h.Store.Get(auth.SessionID(w, r))
	c.Clear()
	utils.RespondWithJSON(w, http.StatusOK, c.Summary())
}
