package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"mealhub/internal/models"
)

type MealRequestRepository interface {
	List(ctx context.Context) ([]models.MealRequest, error)
	ListByEmail(ctx context.Context, email string) ([]models.MealRequest, error)
	Create(ctx context.Context, req *models.MealRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type mealRequestRepository struct {
	db *sqlx.DB
}

func NewMealRequestRepository(db *sqlx.DB) MealRequestRepository {
	return &mealRequestRepository{db: db}
}

func (r *mealRequestRepository) List(ctx context.Context) ([]models.MealRequest, error) {
	requests := []models.MealRequest{}
	query := `SELECT id, meal_id, meal_title, email, name, status, requested_at
		FROM meal_requests ORDER BY requested_at DESC, id`
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *mealRequestRepository) ListByEmail(ctx context.Context, email string) ([]models.MealRequest, error) {
	requests := []models.MealRequest{}
	query := `SELECT id, meal_id, meal_title, email, name, status, requested_at
		FROM meal_requests WHERE email = $1 ORDER BY requested_at DESC, id`
	if err := r.db.SelectContext(ctx, &requests, query, email); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *mealRequestRepository) Create(ctx context.Context, req *models.MealRequest) (int64, error) {
	status := req.Status
	if status == "" {
		status = "pending"
	}
	var id int64
	query := `INSERT INTO meal_requests (meal_id, meal_title, email, name, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.db.QueryRowxContext(ctx, query, req.MealID, req.MealTitle, req.Email, req.Name, status).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *mealRequestRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM meal_requests WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
