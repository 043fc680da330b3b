package inbound

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/pkg/router"
	"github.com/anshy0304/veggiefinder/internal/recipe/usecase"
)

type uc interface {
	List(ctx context.Context) (*usecase.ListOutput, error)
	Create(ctx context.Context, in usecase.CreateInput) (*usecase.CreateOutput, error)
	Update(ctx context.Context, in usecase.UpdateInput) error
	Delete(ctx context.Context, in usecase.DeleteInput) error
	UploadImage(ctx context.Context, in usecase.UploadImageInput) (*usecase.UploadImageOutput, error)
	SearchMeals(ctx context.Context, in usecase.SearchMealsInput) (*usecase.SearchMealsOutput, error)
	MealsByCategory(ctx context.Context, in usecase.MealsByCategoryInput) (*usecase.MealsByCategoryOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/recipes", end.List)
	r.POST("/api/v1/recipes", end.Create)
	r.PUT("/api/v1/recipes/:id", end.Update)
	r.DELETE("/api/v1/recipes/:id", end.Delete)
	r.POST("/api/v1/recipes/:id/image", end.UploadImage)

	r.GET("/api/v1/meals/search", end.SearchMeals)
	r.GET("/api/v1/meals/category/:name", end.MealsByCategory)
}
