package handler

import (
	"net/http"
	"strconv"

	"monumento-api/common"
	"monumento-api/service"
)

// FavoriteHandler holds dependencies for favorites-related handlers.
type FavoriteHandler struct {
	service *service.FavoriteService
}

func NewFavoriteHandler(s *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: s}
}

func usernameFromContext(r *http.Request) (string, *common.AppError) {
	username, ok := r.Context().Value(UserNameKey).(string)
	if !ok || username == "" {
		return "", common.NewAppError(http.StatusUnauthorized, "Invalid user identity in token", nil)
	}
	return username, nil
}

func mapFavoriteError(err error) *common.AppError {
	switch err {
	case service.ErrUserNotFound:
		return common.NewAppError(http.StatusUnauthorized, "User not found", nil)
	case service.ErrMonumentNotFound:
		return common.NewAppError(http.StatusNotFound, "Monument not found", nil)
	case service.ErrFavoriteAlreadyExists:
		return common.NewAppError(http.StatusConflict, err.Error(), nil)
	case service.ErrFavoriteNotFound:
		return common.NewAppError(http.StatusNotFound, err.Error(), nil)
	default:
		return common.NewAppError(http.StatusInternalServerError, "Error processing favorites", err)
	}
}

// AddFavorite godoc
// @Summary      Add a monument to favorites
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        monumentId path int true "Monument ID"
// @Success      201  {object}  common.Response "Monument has been added to your favorites."
// @Failure      404  {object}  common.Response "Monument not found"
// @Failure      409  {object}  common.Response "Already in favorites"
// @Failure      500  {object}  common.Response
// @Router       /api/favorites/{monumentId} [post]
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	monumentID, err := strconv.Atoi(r.PathValue("monumentId"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid monument ID in URL path", err)
	}

	result, svcErr := h.service.AddFavorite(username, monumentID)
	if svcErr != nil {
		return mapFavoriteError(svcErr)
	}

	common.WriteJSON(w, http.StatusCreated, "Monument has been added to your favorites.", result)
	return nil
}

// RemoveFavorite godoc
// @Summary      Remove a monument from favorites
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        monumentId path int true "Monument ID"
// @Success      200  {object}  common.Response "Monument has been removed from your favorites."
// @Failure      404  {object}  common.Response "Not in favorites"
// @Failure      500  {object}  common.Response
// @Router       /api/favorites/{monumentId} [delete]
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	monumentID, err := strconv.Atoi(r.PathValue("monumentId"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid monument ID in URL path", err)
	}

	monument, svcErr := h.service.RemoveFavorite(username, monumentID)
	if svcErr != nil {
		return mapFavoriteError(svcErr)
	}

	common.WriteJSON(w, http.StatusOK, "Monument has been removed from your favorites.", monument)
	return nil
}

// GetFavorites godoc
// @Summary      List the user's favorite monuments
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.Response
// @Failure      500  {object}  common.Response
// @Router       /api/favorites [get]
func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) *common.AppError {
	username, appErr := usernameFromContext(r)
	if appErr != nil {
		return appErr
	}

	result, err := h.service.GetUserFavorites(username)
	if err != nil {
		return mapFavoriteError(err)
	}

	if len(result.Favorites) == 0 {
		common.WriteJSON(w, http.StatusOK, "You don't have any favorite monuments yet", result)
		return nil
	}

	common.WriteJSON(w, http.StatusOK, "Favorite monuments list successfully retrieved", result)
	return nil
}
