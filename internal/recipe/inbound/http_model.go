package inbound

import (
	"net/http"
	"time"

	"github.com/anshy0304/veggiefinder/internal/recipe/entity"
)

type RecipeData struct {
	ID           int64     `json:"id,string"`
	Name         string    `json:"name"`
	Cuisine      string    `json:"cuisine"`
	Instructions string    `json:"instructions"`
	Ingredients  []string  `json:"ingredients"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toRecipeData(rec entity.Recipe) RecipeData {
	return RecipeData{
		ID:           rec.ID,
		Name:         rec.Name,
		Cuisine:      rec.Cuisine,
		Instructions: rec.Instructions,
		Ingredients:  rec.Ingredients,
		ImageURL:     rec.ImageURL,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

type ListResponse struct {
	Recipes []RecipeData `json:"recipes"`
}

func (ListResponse) Message() string {
	return "Recipes retrieved successfully."
}

type CreateRequest struct {
	Name         string   `json:"name"`
	Cuisine      string   `json:"cuisine"`
	Instructions string   `json:"instructions"`
	Ingredients  []string `json:"ingredients"`
}

type CreateResponse struct {
	ID int64 `json:"id,string"`
}

func (CreateResponse) Message() string {
	return "Recipe created successfully."
}

func (CreateResponse) StatusCode() int {
	return http.StatusCreated
}

type UpdateRequest struct {
	Name         string   `json:"name"`
	Cuisine      string   `json:"cuisine"`
	Instructions string   `json:"instructions"`
	Ingredients  []string `json:"ingredients"`
}

type UpdateResponse struct{}

func (UpdateResponse) Message() string {
	return "Recipe updated successfully."
}

type DeleteResponse struct{}

func (DeleteResponse) Message() string {
	return "Recipe deleted successfully."
}

type UploadImageResponse struct {
	ImageURL string `json:"image_url"`
}

func (UploadImageResponse) Message() string {
	return "Recipe image uploaded successfully."
}

type MealData struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Thumbnail    string `json:"thumbnail"`
	Category     string `json:"category"`
	Instructions string `json:"instructions,omitempty"`
}

type MealsResponse struct {
	Meals []MealData `json:"meals"`
}

func (MealsResponse) Message() string {
	return "Meals retrieved successfully."
}

func toMealsResponse(meals []entity.Meal) MealsResponse {
	data := make([]MealData, 0, len(meals))
	for _, m := range meals {
		data = append(data, MealData{
			ID:           m.ID,
			Name:         m.Name,
			Thumbnail:    m.Thumbnail,
			Category:     m.Category,
			Instructions: m.Instructions,
		})
	}

	return MealsResponse{Meals: data}
}
