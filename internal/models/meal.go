package models

import "time"

type Meal struct {
	ID           int64     `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Category     string    `db:"category" json:"category"`
	Image        string    `db:"image" json:"image"`
	Description  string    `db:"description" json:"description"`
	Price        float64   `db:"price" json:"price"`
	Rating       float64   `db:"rating" json:"rating"`
	Likes        int64     `db:"likes" json:"likes"`
	ReviewsCount int64     `db:"reviews_count" json:"reviews_count"`
	Distributor  string    `db:"distributor" json:"distributor"`
	PostedAt     time.Time `db:"posted_at" json:"posted_at"`
}

// UpcomingMeal is a meal announced before publication. It keeps its own
// collection so listing published meals never scans announcements.
type UpcomingMeal struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Category    string    `db:"category" json:"category"`
	Image       string    `db:"image" json:"image"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	Likes       int64     `db:"likes" json:"likes"`
	PostedAt    time.Time `db:"posted_at" json:"posted_at"`
}
