package middleware

import (
	"context"
	"fmt"
	"net/http"

	"sartor/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	Username string   `json:"username"`
	UserID   string   `json:"userId"`
	Email    string   `json:"email"`
	Role     []string `json:"role"`
	jwt.RegisteredClaims
}

func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if websocket.IsWebSocketUpgrade(r) {
			// Token is validated during the upgrade handshake instead.
			next(w, r, ps)
			return
		}

		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			http.Error(w, "Missing token", http.StatusUnauthorized)
			return
		}

		if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
			http.Error(w, "Invalid token format", http.StatusUnauthorized)
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
			return globals.JwtSecret, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, globals.EmailKey, claims.Email)
		next(w, r.WithContext(ctx), ps)
	}
}

// Authorizer decides whether an authenticated principal is an admin.
// The storefront derives this from an email allow-list; a future role
// system can swap in a different implementation without touching
// call sites.
type Authorizer interface {
	IsAdmin(email string) bool
}

var AdminAuthorizer Authorizer

// AdminOnly lets only allow-listed principals through. It expects to
// run inside Authenticate so the email is already on the context.
func AdminOnly(next httprouter.Handle) httprouter.Handle {
	return Authenticate(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		email, _ := r.Context().Value(globals.EmailKey).(string)
		if AdminAuthorizer == nil || !AdminAuthorizer.IsAdmin(email) {
			http.Error(w, "Access denied", http.StatusForbidden)
			return
		}
		next(w, r, ps)
	})
}

func ValidateJWT(tokenString string) (*Claims, error) {
	if tokenString == "" || len(tokenString) < 8 {
		return nil, fmt.Errorf("invalid token")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	return claims, nil
}
