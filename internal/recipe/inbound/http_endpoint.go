package inbound

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/pkg/router"
	"github.com/anshy0304/veggiefinder/internal/recipe/usecase"
)

// HTTPEndpoint exposes HTTP handlers for user recipes and meal browsing.
type HTTPEndpoint struct {
	uc uc
}

// List returns the caller's recipes.
// @Summary List recipes
// @Tags Recipe
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=ListResponse} "Recipe list"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/recipes [get]
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	resp, err := h.uc.List(r.Context())
	if err != nil {
		return nil, err
	}

	data := make([]RecipeData, 0, len(resp.Recipes))
	for _, rec := range resp.Recipes {
		data = append(data, toRecipeData(rec))
	}

	return ListResponse{Recipes: data}, nil
}

// Create adds a recipe owned by the caller.
// @Summary Create recipe
// @Tags Recipe
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Recipe payload"
// @Success 201 {object} router.successResponse{data=CreateResponse} "Recipe created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/recipes [post]
func (h *HTTPEndpoint) Create(r *router.Request) (any, error) {
	var req CreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Create(r.Context(), usecase.CreateInput{
		Name:         req.Name,
		Cuisine:      req.Cuisine,
		Instructions: req.Instructions,
		Ingredients:  req.Ingredients,
	})
	if err != nil {
		return nil, err
	}

	return CreateResponse{ID: resp.ID}, nil
}

// Update replaces the caller's recipe.
// @Summary Update recipe
// @Tags Recipe
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param request body UpdateRequest true "Recipe payload"
// @Success 200 {object} router.successResponse{data=UpdateResponse} "Recipe updated"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Recipe not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/recipes/{id} [put]
func (h *HTTPEndpoint) Update(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, goerror.NewInvalidFormat()
	}

	var req UpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Update(r.Context(), usecase.UpdateInput{
		ID:           id,
		Name:         req.Name,
		Cuisine:      req.Cuisine,
		Instructions: req.Instructions,
		Ingredients:  req.Ingredients,
	}); err != nil {
		return nil, err
	}

	return UpdateResponse{}, nil
}

// Delete removes the caller's recipe.
// @Summary Delete recipe
// @Tags Recipe
// @Security BearerAuth
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} router.successResponse{data=DeleteResponse} "Recipe deleted"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Recipe not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/recipes/{id} [delete]
func (h *HTTPEndpoint) Delete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, goerror.NewInvalidFormat()
	}

	if err := h.uc.Delete(r.Context(), usecase.DeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return DeleteResponse{}, nil
}

// UploadImage stores a recipe image and records its public URL.
// @Summary Upload recipe image
// @Tags Recipe
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Recipe ID"
// @Param image formData file true "Recipe image"
// @Success 200 {object} router.successResponse{data=UploadImageResponse} "Image uploaded"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "Recipe not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/recipes/{id}/image [post]
func (h *HTTPEndpoint) UploadImage(r *router.Request) (any, error) {
	ctx := r.Context()

	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, goerror.NewInvalidFormat()
	}

	file, err := r.StreamSingleFile("image")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close file", "error", err)
		}
	}()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, goerror.NewInvalidFormat()
	}

	resp, err := h.uc.UploadImage(ctx, usecase.UploadImageInput{
		RecipeID:    id,
		File:        io.MultiReader(bytes.NewReader(head[:n]), file),
		ContentType: http.DetectContentType(head[:n]),
	})
	if err != nil {
		return nil, err
	}

	return UploadImageResponse{ImageURL: resp.ImageURL}, nil
}

// SearchMeals searches vegetarian meals across TheMealDB and local recipes.
// @Summary Search meals
// @Tags Meal
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} router.successResponse{data=MealsResponse} "Meal list"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/meals/search [get]
func (h *HTTPEndpoint) SearchMeals(r *router.Request) (any, error) {
	resp, err := h.uc.SearchMeals(r.Context(), usecase.SearchMealsInput{
		Query: r.GetQuery("q"),
	})
	if err != nil {
		return nil, err
	}

	return toMealsResponse(resp.Meals), nil
}

// MealsByCategory lists meals in a TheMealDB category merged with local recipes.
// @Summary List meals by category
// @Tags Meal
// @Produce json
// @Param name path string true "Category name"
// @Success 200 {object} router.successResponse{data=MealsResponse} "Meal list"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/meals/category/{name} [get]
func (h *HTTPEndpoint) MealsByCategory(r *router.Request) (any, error) {
	resp, err := h.uc.MealsByCategory(r.Context(), usecase.MealsByCategoryInput{
		Category: r.GetParam("name"),
	})
	if err != nil {
		return nil, err
	}

	return toMealsResponse(resp.Meals), nil
}
