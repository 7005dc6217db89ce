package handler

import (
	"net/http"
	"strconv"

	"monumento-api/common"
	"monumento-api/model"
	"monumento-api/service"
)

// MonumentHandler holds dependencies for monument-related handlers.
type MonumentHandler struct {
	service *service.MonumentService
}

func NewMonumentHandler(s *service.MonumentService) *MonumentHandler {
	return &MonumentHandler{service: s}
}

func monumentIDFromPath(r *http.Request) (int, *common.AppError) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, common.NewAppError(http.StatusBadRequest, "Invalid monument ID in URL path", err)
	}
	return id, nil
}

func mapMonumentError(err error) *common.AppError {
	switch err {
	case service.ErrMonumentNotFound:
		return common.NewAppError(http.StatusNotFound, "Monument not found", nil)
	case service.ErrTitleForbiddenWord, service.ErrCityEqualsCountry, service.ErrBuildYearInFuture:
		return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
	default:
		return common.NewAppError(http.StatusInternalServerError, "Error processing monument", err)
	}
}

// ListMonuments godoc
// @Summary      List all monuments
// @Tags         monuments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.Response
// @Failure      500  {object}  common.Response
// @Router       /api/monuments [get]
func (h *MonumentHandler) ListMonuments(w http.ResponseWriter, r *http.Request) *common.AppError {
	monuments, err := h.service.ListMonuments()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve monuments", err)
	}

	common.WriteJSON(w, http.StatusOK, "Monuments retrieved successfully", monuments)
	return nil
}

// SearchMonuments godoc
// @Summary      Search monuments
// @Description  Filters monuments by substring match on title, country and city.
// @Tags         monuments
// @Produce      json
// @Security     BearerAuth
// @Param        title   query string false "Title fragment"
// @Param        country query string false "Country fragment"
// @Param        city    query string false "City fragment"
// @Success      200  {object}  common.Response
// @Failure      500  {object}  common.Response
// @Router       /api/monuments/search [get]
func (h *MonumentHandler) SearchMonuments(w http.ResponseWriter, r *http.Request) *common.AppError {
	query := r.URL.Query()
	monuments, err := h.service.SearchMonuments(query.Get("title"), query.Get("country"), query.Get("city"))
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Error searching monuments", err)
	}

	common.WriteJSON(w, http.StatusOK, "Search results", monuments)
	return nil
}

// GetMonument godoc
// @Summary      Get one monument
// @Tags         monuments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Monument ID"
// @Success      200  {object}  common.Response
// @Failure      404  {object}  common.Response "Monument not found"
// @Failure      500  {object}  common.Response
// @Router       /api/monuments/{id} [get]
func (h *MonumentHandler) GetMonument(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := monumentIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	monument, err := h.service.GetMonument(id)
	if err != nil {
		return mapMonumentError(err)
	}

	common.WriteJSON(w, http.StatusOK, "Monument retrieved successfully", monument)
	return nil
}

// CreateMonument godoc
// @Summary      Create a monument
// @Description  Creates a monument and broadcasts the creation to all connected realtime clients.
// @Tags         monuments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        monument body model.CreateMonumentRequest true "Monument to create"
// @Success      201  {object}  common.Response "Monument created successfully"
// @Failure      400  {object}  common.Response "Validation failure"
// @Failure      500  {object}  common.Response
// @Router       /api/monuments [post]
func (h *MonumentHandler) CreateMonument(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateMonumentRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	monument, err := h.service.CreateMonument(req.Monument)
	if err != nil {
		return mapMonumentError(err)
	}

	common.WriteJSON(w, http.StatusCreated, "Monument created successfully", monument)
	return nil
}

// UpdateMonument godoc
// @Summary      Update a monument
// @Tags         monuments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Monument ID"
// @Param        monument body model.UpdateMonumentRequest true "Fields to update"
// @Success      200  {object}  common.Response "Monument updated successfully"
// @Failure      400  {object}  common.Response "Validation failure"
// @Failure      404  {object}  common.Response "Monument not found"
// @Failure      500  {object}  common.Response
// @Router       /api/monuments/{id} [put]
func (h *MonumentHandler) UpdateMonument(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := monumentIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	var req model.UpdateMonumentRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	monument, err := h.service.UpdateMonument(id, req.Monument)
	if err != nil {
		return mapMonumentError(err)
	}

	common.WriteJSON(w, http.StatusOK, "Monument updated successfully", monument)
	return nil
}

// DeleteMonument godoc
// @Summary      Delete a monument
// @Tags         monuments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Monument ID"
// @Success      200  {object}  common.Response "Monument deleted successfully"
// @Failure      404  {object}  common.Response "Monument not found"
// @Failure      500  {object}  common.Response
// @Router       /api/monuments/{id} [delete]
func (h *MonumentHandler) DeleteMonument(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := monumentIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	if err := h.service.DeleteMonument(id); err != nil {
		return mapMonumentError(err)
	}

	common.WriteJSON(w, http.StatusOK, "Monument deleted successfully", nil)
	return nil
}
