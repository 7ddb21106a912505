package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"vastra/commerce"
	"vastra/models"
	"vastra/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler proxies the JWT login path to the commerce backend and manages
// the session cookie.
type Handler struct {
	Client *commerce.Client

	// DropCart and DropSession let session-scoped state living in other
	// packages (cart store, checkout wizard) be discarded on logout
	// without an import cycle. Wired in main.
	DropCart    func(sessionID string)
	DropSession func(sessionID string)
}

func NewHandler(client *commerce.Client) *Handler {
	return &Handler{Client: client}
}

// Login exchanges credentials for a backend JWT and issues the session
// cookie on success.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.Client.Login(ctx, input.Email, input.Password)
	if err != nil {
		if ue, ok := err.(*commerce.UpstreamError); ok && (ue.Status == http.StatusUnauthorized || ue.Status == http.StatusForbidden) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Println("login upstream error:", err)
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Login service unavailable")
		return
	}

	user := models.SessionUser{
		Token:     result.Token,
		ID:        result.ID,
		Email:     result.Email,
		Name:      result.Name,
		LoginTime: time.Now(),
	}
	SetSessionCookie(w, user)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	})
}

// Logout clears the cookie and drops all session-scoped state.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := SessionID(w, r)
	if h.DropCart != nil {
		h.DropCart(sid)
	}
	if h.DropSession != nil {
		h.DropSession(sid)
	}
	ClearSessionCookie(w)
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// Session reports the logged-in shopper, token excluded.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user, ok := ReadSessionCookie(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"id":        user.ID,
		"email":     user.Email,
		"name":      user.Name,
		"loginTime": user.LoginTime,
	})
}
