package handler

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"monumento-api/common"
	"monumento-api/logger"
	"monumento-api/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func generateTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.NoError(t, err)
	return privateKey
}

func signTestToken(t *testing.T, privateKey *rsa.PrivateKey, username string, ttl time.Duration) string {
	t.Helper()
	claims := model.AppClaims{
		UserName: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(privateKey)
	assert.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	privateKey := generateTestKey(t)

	var seenUsername string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUsername, _ = r.Context().Value(UserNameKey).(string)
		w.WriteHeader(http.StatusOK)
	})
	protected := AuthMiddleware(&privateKey.PublicKey)(next)

	t.Run("valid token reaches the handler with the identity attached", func(t *testing.T) {
		seenUsername = ""
		req := httptest.NewRequest(http.MethodGet, "/api/monuments", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, privateKey, "alice", time.Minute))
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "alice", seenUsername)
	})

	t.Run("missing header is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/monuments", nil)
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		var body common.Response
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Authentication token missing", body.Message)
	})

	t.Run("malformed header is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/monuments", nil)
		req.Header.Set("Authorization", "Token abc.def.ghi")
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token is 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/monuments", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)

		var body common.Response
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Invalid authentication token", body.Message)
	})

	t.Run("token signed with another key is 403", func(t *testing.T) {
		otherKey := generateTestKey(t)
		req := httptest.NewRequest(http.MethodGet, "/api/monuments", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, otherKey, "alice", time.Minute))
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("expired token is 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/monuments", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, privateKey, "alice", -time.Minute))
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
