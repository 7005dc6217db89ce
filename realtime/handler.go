package realtime

import (
	"crypto/rsa"
	"fmt"
	"net/http"

	"monumento-api/common"
	"monumento-api/logger"
	"monumento-api/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
)

// Handler authenticates WebSocket handshakes and hands accepted
// connections to the hub. It holds only the verification key, never the
// signing key.
type Handler struct {
	hub       *Hub
	publicKey *rsa.PublicKey
	upgrader  websocket.Upgrader
}

// NewHandler parses the raw PEM bytes of the RS256 public key. The key
// material arrives as a byte buffer so the handler can live apart from the
// auth service.
func NewHandler(hub *Hub, publicKeyPEM []byte) (*Handler, error) {
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse realtime public key: %w", err)
	}

	return &Handler{
		hub:       hub,
		publicKey: publicKey,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}, nil
}

// ServeWS handles the connection attempt. The token travels in the
// connection's query payload, not in an Authorization header.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		common.WriteJSON(w, http.StatusUnauthorized, "Token missing", nil)
		return
	}

	claims := &model.AppClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return h.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil || !token.Valid {
		common.WriteJSON(w, http.StatusForbidden, "Invalid token", nil)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	client := &Client{
		hub:      h.hub,
		conn:     conn,
		send:     make(chan []byte, 256),
		username: claims.UserName,
	}
	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}
