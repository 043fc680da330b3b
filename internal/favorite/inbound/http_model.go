package inbound

import (
	"net/http"
	"time"

	"github.com/anshy0304/veggiefinder/internal/favorite/entity"
)

type FavoriteData struct {
	ID        int64     `json:"id,string"`
	MealID    string    `json:"meal_id"`
	MealName  string    `json:"meal_name"`
	MealImage string    `json:"meal_image"`
	CreatedAt time.Time `json:"created_at"`
}

type ListResponse struct {
	Favorites []FavoriteData `json:"favorites"`
}

func (ListResponse) Message() string {
	return "Favorites retrieved successfully."
}

func toListResponse(favorites []entity.Favorite) ListResponse {
	data := make([]FavoriteData, 0, len(favorites))
	for _, fav := range favorites {
		data = append(data, FavoriteData{
			ID:        fav.ID,
			MealID:    fav.MealID,
			MealName:  fav.MealName,
			MealImage: fav.MealImage,
			CreatedAt: fav.CreatedAt,
		})
	}

	return ListResponse{Favorites: data}
}

type AddRequest struct {
	MealID    string `json:"meal_id"`
	MealName  string `json:"meal_name"`
	MealImage string `json:"meal_image"`
}

type AddResponse struct {
	ID int64 `json:"id,string"`
}

func (AddResponse) Message() string {
	return "Meal added to favorites."
}

func (AddResponse) StatusCode() int {
	return http.StatusCreated
}

type RemoveResponse struct{}

func (RemoveResponse) Message() string {
	return "Meal removed from favorites."
}
