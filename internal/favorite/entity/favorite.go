package entity

import "time"

type Favorite struct {
	ID        int64
	AccountID int64
	MealID    string
	MealName  string
	MealImage string
	CreatedAt time.Time
}

type NewFavorite struct {
	ID        int64
	AccountID int64
	MealID    string
	MealName  string
	MealImage string
}
