package handler

import (
	"context"
	"crypto/rsa"
	"net/http"
	"strings"

	"monumento-api/common"
	"monumento-api/model"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const UserNameKey contextKey = "userName"

// AuthMiddleware is the per-request authentication gate for protected
// routes. It verifies the bearer token against the RS256 public key and
// attaches the decoded identity to the request context. It holds no
// mutable state; the public key is the only thing shared between requests.
//
// Missing credentials are rejected with 401; a presented but invalid or
// expired token with 403. The specific verification failure is never
// exposed to the client.
func AuthMiddleware(publicKey *rsa.PublicKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				common.NewAppError(http.StatusUnauthorized, "Authentication token missing", nil).Send(w)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				common.NewAppError(http.StatusUnauthorized, "Authentication token missing", nil).Send(w)
				return
			}

			tokenString := headerParts[1]
			claims := &model.AppClaims{}

			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				return publicKey, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))

			if err != nil || !token.Valid {
				common.NewAppError(http.StatusForbidden, "Invalid authentication token", err).Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserNameKey, claims.UserName)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
