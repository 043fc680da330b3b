package inbound

import (
	"github.com/anshy0304/veggiefinder/internal/favorite/usecase"
	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for saved meals.
type HTTPEndpoint struct {
	uc uc
}

// List returns the caller's saved meals.
// @Summary List favorites
// @Tags Favorite
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=ListResponse} "Favorite list"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/favorites [get]
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	resp, err := h.uc.List(r.Context())
	if err != nil {
		return nil, err
	}

	return toListResponse(resp.Favorites), nil
}

// Add saves a meal to the caller's favorites.
// @Summary Add favorite
// @Tags Favorite
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AddRequest true "Favorite payload"
// @Success 201 {object} router.successResponse{data=AddResponse} "Favorite added"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 409 {object} router.errorResponse "Meal already in favorites"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/favorites [post]
func (h *HTTPEndpoint) Add(r *router.Request) (any, error) {
	var req AddRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Add(r.Context(), usecase.AddInput{
		MealID:    req.MealID,
		MealName:  req.MealName,
		MealImage: req.MealImage,
	})
	if err != nil {
		return nil, err
	}

	return AddResponse{ID: resp.ID}, nil
}

// Remove deletes a favorite owned by the caller.
// @Summary Remove favorite
// @Tags Favorite
// @Security BearerAuth
// @Produce json
// @Param id path string true "Favorite ID"
// @Success 200 {object} router.successResponse{data=RemoveResponse} "Favorite removed"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Favorite not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/favorites/{id} [delete]
func (h *HTTPEndpoint) Remove(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, goerror.NewInvalidFormat()
	}

	if err := h.uc.Remove(r.Context(), usecase.RemoveInput{ID: id}); err != nil {
		return nil, err
	}

	return RemoveResponse{}, nil
}
