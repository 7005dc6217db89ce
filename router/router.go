package router

import (
	"crypto/rsa"
	"fmt"
	"net/http"

	"monumento-api/common"
	"monumento-api/handler"
	"monumento-api/realtime"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter wires every route. Public routes (login, register, refresh,
// docs, health) are mounted bare; everything else sits behind the
// authentication gate.
func NewRouter(
	authHandler *handler.AuthHandler,
	monumentHandler *handler.MonumentHandler,
	favoriteHandler *handler.FavoriteHandler,
	userHandler *handler.UserHandler,
	wsHandler *realtime.Handler,
	publicKey *rsa.PublicKey,
) http.Handler {
	mux := http.NewServeMux()
	protect := handler.AuthMiddleware(publicKey)

	// Public routes.
	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("POST /api/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("POST /api/register", handler.ErrorHandlingMiddleware(authHandler.Register))
	mux.Handle("POST /api/refresh-token", handler.ErrorHandlingMiddleware(authHandler.RefreshToken))
	mux.Handle("GET /api-docs/", httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json")))

	// Monuments.
	mux.Handle("GET /api/monuments", protect(handler.ErrorHandlingMiddleware(monumentHandler.ListMonuments)))
	mux.Handle("GET /api/monuments/search", protect(handler.ErrorHandlingMiddleware(monumentHandler.SearchMonuments)))
	mux.Handle("GET /api/monuments/{id}", protect(handler.ErrorHandlingMiddleware(monumentHandler.GetMonument)))
	mux.Handle("POST /api/monuments", protect(handler.ErrorHandlingMiddleware(monumentHandler.CreateMonument)))
	mux.Handle("PUT /api/monuments/{id}", protect(handler.ErrorHandlingMiddleware(monumentHandler.UpdateMonument)))
	mux.Handle("DELETE /api/monuments/{id}", protect(handler.ErrorHandlingMiddleware(monumentHandler.DeleteMonument)))

	// Favorites.
	mux.Handle("GET /api/favorites", protect(handler.ErrorHandlingMiddleware(favoriteHandler.GetFavorites)))
	mux.Handle("POST /api/favorites/{monumentId}", protect(handler.ErrorHandlingMiddleware(favoriteHandler.AddFavorite)))
	mux.Handle("DELETE /api/favorites/{monumentId}", protect(handler.ErrorHandlingMiddleware(favoriteHandler.RemoveFavorite)))

	// Users.
	mux.Handle("GET /api/users/profile", protect(handler.ErrorHandlingMiddleware(userHandler.GetProfile)))

	// Realtime handshake; the token travels in the query payload.
	mux.HandleFunc("GET /ws", wsHandler.ServeWS)

	// Everything else gets the envelope 404.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			common.WriteJSON(w, http.StatusOK, "Welcome to the Monumento API! Use the routes to interact with monuments.", nil)
			return
		}
		message := fmt.Sprintf("Requested resource: %q does not exist. Try with another URL.", r.Method+" "+r.URL.Path)
		common.WriteJSON(w, http.StatusNotFound, message, nil)
	})

	return mux
}
