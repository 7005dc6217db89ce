package handler

import (
	"net"
	"net/http"

	"monumento-api/common"
	"monumento-api/model"
	"monumento-api/service"
)

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	service *service.AuthService
	limiter *service.LoginLimiter
}

func NewAuthHandler(s *service.AuthService, limiter *service.LoginLimiter) *AuthHandler {
	return &AuthHandler{service: s, limiter: limiter}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Login godoc
// @Summary      Authenticate a user
// @Description  Verifies the credentials and returns an access/refresh token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Username and password"
// @Success      200  {object}  common.Response "Authentication successful"
// @Failure      400  {object}  common.Response "Missing or malformed fields"
// @Failure      401  {object}  common.Response "Unknown user or wrong password"
// @Failure      429  {object}  common.Response "Too many login attempts"
// @Failure      500  {object}  common.Response
// @Router       /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	if h.limiter != nil && !h.limiter.Allow(r.Context(), clientIP(r)) {
		return common.NewAppError(http.StatusTooManyRequests, "Too many login attempts. Please try again later.", nil)
	}

	var req model.LoginRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	result, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		switch err {
		case service.ErrUserNotFound, service.ErrInvalidCredentials:
			return common.NewAppError(http.StatusUnauthorized, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Authentication error", err)
		}
	}

	common.WriteJSON(w, http.StatusOK, "Authentication successful", result)
	return nil
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user account with a hashed password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body model.RegisterRequest true "Username and password"
// @Success      201  {object}  common.Response "User created successfully"
// @Failure      400  {object}  common.Response "Missing or malformed fields"
// @Failure      409  {object}  common.Response "Username already taken"
// @Failure      500  {object}  common.Response
// @Router       /api/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	user, err := h.service.Register(req.Username, req.Password)
	if err != nil {
		switch err {
		case service.ErrUserAlreadyExists:
			return common.NewAppError(http.StatusConflict, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Registration error", err)
		}
	}

	common.WriteJSON(w, http.StatusCreated, "User created successfully", map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
	})
	return nil
}

// RefreshToken godoc
// @Summary      Refresh the access token
// @Description  Exchanges a valid refresh token for a new access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body model.RefreshTokenRequest true "Refresh token"
// @Success      200  {object}  common.Response "Access token refreshed successfully"
// @Failure      400  {object}  common.Response "Refresh token missing"
// @Failure      401  {object}  common.Response "Invalid or expired refresh token"
// @Failure      500  {object}  common.Response
// @Router       /api/refresh-token [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RefreshTokenRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	accessToken, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		switch err {
		case service.ErrInvalidRefreshToken, service.ErrRefreshTokenExpired:
			return common.NewAppError(http.StatusUnauthorized, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Error refreshing token", err)
		}
	}

	common.WriteJSON(w, http.StatusOK, "Access token refreshed successfully", map[string]string{
		"accessToken": accessToken,
	})
	return nil
}
