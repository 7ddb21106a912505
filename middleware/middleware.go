package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"vastra/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// Claims carried by tokens the commerce backend's JWT login endpoint issues.
type Claims struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Authenticate requires a valid bearer token and stores the user id in the
// request context.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := claimsFromRequest(r)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		next(w, r.WithContext(ctx), ps)
	}
}

// OptionalAuth attaches the user id when a valid token is present and passes
// the request through either way.
func OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if claims, err := claimsFromRequest(r); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), globals.UserIDKey, claims.UserID))
		}
		next(w, r, ps)
	}
}

func claimsFromRequest(r *http.Request) (*Claims, error) {
	tokenString := r.Header.Get("Authorization")
	if !strings.HasPrefix(tokenString, "Bearer ") {
		return nil, fmt.Errorf("missing bearer token")
	}
	return ValidateJWT(strings.TrimPrefix(tokenString, "Bearer "))
}

// ValidateJWT parses and verifies a raw token string.
func ValidateJWT(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("invalid token")
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	return claims, nil
}

// UserIDFromContext returns the authenticated user id, empty when anonymous.
func UserIDFromContext(ctx context.Context) string {
	if v := ctx.Value(globals.UserIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
