package models

import "time"

// MealRequest records a subscriber asking for a meal to be served.
type MealRequest struct {
	ID          int64     `db:"id" json:"id"`
	MealID      int64     `db:"meal_id" json:"meal_id"`
	MealTitle   string    `db:"meal_title" json:"meal_title"`
	Email       string    `db:"email" json:"email"`
	Name        string    `db:"name" json:"name"`
	Status      string    `db:"status" json:"status"`
	RequestedAt time.Time `db:"requested_at" json:"requested_at"`
}
