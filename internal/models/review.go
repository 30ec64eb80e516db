package models

import "time"

type Review struct {
	ID        int64     `db:"id" json:"id"`
	MealID    int64     `db:"meal_id" json:"meal_id"`
	MealTitle string    `db:"meal_title" json:"meal_title"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	Rating    float64   `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
