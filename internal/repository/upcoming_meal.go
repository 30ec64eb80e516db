package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"mealhub/internal/models"
)

type UpcomingMealRepository interface {
	List(ctx context.Context) ([]models.UpcomingMeal, error)
	Create(ctx context.Context, meal *models.UpcomingMeal) (int64, error)
}

type upcomingMealRepository struct {
	db *sqlx.DB
}

func NewUpcomingMealRepository(db *sqlx.DB) UpcomingMealRepository {
	return &upcomingMealRepository{db: db}
}

func (r *upcomingMealRepository) List(ctx context.Context) ([]models.UpcomingMeal, error) {
	meals := []models.UpcomingMeal{}
	query := `SELECT id, title, category, image, description, price, likes, posted_at
		FROM upcoming_meals ORDER BY likes DESC, id`
	if err := r.db.SelectContext(ctx, &meals, query); err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *upcomingMealRepository) Create(ctx context.Context, meal *models.UpcomingMeal) (int64, error) {
	var id int64
	query := `INSERT INTO upcoming_meals (title, category, image, description, price, likes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRowxContext(ctx, query,
		meal.Title, meal.Category, meal.Image, meal.Description, meal.Price, meal.Likes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
