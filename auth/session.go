package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"vastra/globals"
	"vastra/models"

	"github.com/google/uuid"
)

const (
	// SessionCookieName holds the logged-in shopper blob.
	SessionCookieName = "vastra_session"
	// sidCookieName identifies the browser session that owns the cart and
	// checkout state, logged in or not.
	sidCookieName = "vastra_sid"

	sessionTTL = 7 * 24 * time.Hour
)

var cookieSecure = strings.ToLower(os.Getenv("APP_ENV")) == "prod"

// signPayload computes the HMAC over the serialized shopper blob. The order
// receipt QR uses the same shared secret.
func signPayload(payload []byte) string {
	mac := hmac.New(sha256.New, globals.JwtSecret)
	mac.Write(payload)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// SetSessionCookie writes the shopper blob as an HTTP-only, SameSite-Lax
// cookie with a 7-day expiry. The value is "payload.signature" so a client
// cannot rewrite the blob's id field.
func SetSessionCookie(w http.ResponseWriter, user models.SessionUser) {
	b, err := json.Marshal(user)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(b) + "." + signPayload(b),
		Path:     "/",
		HttpOnly: true,
		Secure:   cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionTTL),
	})
}

// ReadSessionCookie parses and verifies the shopper blob. Second return is
// false when the cookie is absent, malformed, or its signature does not
// match the payload.
func ReadSessionCookie(r *http.Request) (models.SessionUser, bool) {
	var user models.SessionUser
	c, err := r.Cookie(SessionCookieName)
	if err != nil || c.Value == "" {
		return user, false
	}
	payload, sig, ok := strings.Cut(c.Value, ".")
	if !ok {
		return user, false
	}
	b, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return user, false
	}
	if !hmac.Equal([]byte(signPayload(b)), []byte(sig)) {
		return user, false
	}
	if err := json.Unmarshal(b, &user); err != nil {
		return user, false
	}
	if user.ID == "" && user.Token == "" {
		return user, false
	}
	return user, true
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// SessionID returns the browser session id, issuing the cookie on first
// contact. The cart and checkout stores key off this value.
func SessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sidCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	sid := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sidCookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		Secure:   cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}
