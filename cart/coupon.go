package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"vastra/commerce"
	"vastra/utils"

	"github.com/julienschmidt/httprouter"
)

type CouponRequest struct {
	Code string  `json:"code"`
	Cart float64 `json:"cart"` // cart subtotal, for minimum spend rules
}

type CouponResponse struct {
	Valid    bool    `json:"valid"`
	Discount float64 `json:"discount"` // absolute amount, not %
	Message  string  `json:"message"`
}

// CouponHandler validates coupon codes against the commerce backend and
// resolves the absolute discount for the given subtotal.
type CouponHandler struct {
	Client *commerce.Client
}

func NewCouponHandler(client *commerce.Client) *CouponHandler {
	return &CouponHandler{Client: client}
}

func (h *CouponHandler) ValidateCoupon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req CouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request")
		return
	}

	code := strings.TrimSpace(strings.ToLower(req.Code))
	if code == "" {
		utils.RespondWithJSON(w, http.StatusOK, CouponResponse{Valid: false, Message: "No coupon provided"})
		return
	}

	coupon, found, err := h.Client.CouponByCode(ctx, code)
	if err != nil {
		commerce.WriteError(w, err)
		return
	}
	if !found {
		utils.RespondWithJSON(w, http.StatusOK, CouponResponse{Valid: false, Message: "Coupon not found"})
		return
	}
	if !coupon.ExpiresAt.IsZero() && time.Now().After(coupon.ExpiresAt) {
		utils.RespondWithJSON(w, http.StatusOK, CouponResponse{Valid: false, Message: "Coupon expired"})
		return
	}
	if coupon.MinimumSpend > 0 && req.Cart < coupon.MinimumSpend {
		utils.RespondWithJSON(w, http.StatusOK, CouponResponse{Valid: false, Message: "Cart below minimum spend"})
		return
	}

	discount := 0.0
	switch coupon.DiscountType {
	case "percent":
		if req.Cart > 0 {
			discount = (req.Cart * coupon.Amount) / 100
		}
	default: // fixed cart amount
		discount = coupon.Amount
	}
	if discount > req.Cart {
		discount = req.Cart
	}

	utils.RespondWithJSON(w, http.StatusOK, CouponResponse{
		Valid:    true,
		Discount: discount,
		Message:  "Coupon applied successfully",
	})
}
