package handler

import (
	"net/http"

	"monumento-api/common"
	"monumento-api/service"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// GetProfile godoc
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.Response
// @Failure      404  {object}  common.Response "User not found"
// @Failure      500  {object}  common.Response
// @Router       /api/users/profile [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	user, err := h.service.GetProfile(username)
	if err != nil {
		if err == service.ErrUserNotFound {
			return common.NewAppError(http.StatusNotFound, "User not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Error retrieving user profile", err)
	}

	common.WriteJSON(w, http.StatusOK, "User profile retrieved successfully", user)
	return nil
}
