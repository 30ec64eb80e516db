package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"mealhub/internal/models"
)

type MealRepository interface {
	List(ctx context.Context) ([]models.Meal, error)
	GetByID(ctx context.Context, id int64) (*models.Meal, error)
	Create(ctx context.Context, meal *models.Meal) (int64, error)
	Update(ctx context.Context, id int64, patch MealPatch) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// MealPatch is a field-level update; nil fields are left untouched.
type MealPatch struct {
	Title       *string  `json:"title"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

type mealRepository struct {
	db *sqlx.DB
}

func NewMealRepository(db *sqlx.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) List(ctx context.Context) ([]models.Meal, error) {
	meals := []models.Meal{}
	query := `SELECT id, title, category, image, description, price, rating, likes, reviews_count, distributor, posted_at
		FROM meals ORDER BY id`
	if err := r.db.SelectContext(ctx, &meals, query); err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) GetByID(ctx context.Context, id int64) (*models.Meal, error) {
	var meal models.Meal
	query := `SELECT id, title, category, image, description, price, rating, likes, reviews_count, distributor, posted_at
		FROM meals WHERE id = $1`
	if err := r.db.GetContext(ctx, &meal, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) Create(ctx context.Context, meal *models.Meal) (int64, error) {
	var id int64
	query := `INSERT INTO meals (title, category, image, description, price, rating, likes, reviews_count, distributor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.db.QueryRowxContext(ctx, query,
		meal.Title, meal.Category, meal.Image, meal.Description,
		meal.Price, meal.Rating, meal.Likes, meal.ReviewsCount, meal.Distributor,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update patches only the provided fields in a single statement; nil patch
// fields coalesce to the stored value.
func (r *mealRepository) Update(ctx context.Context, id int64, patch MealPatch) (int64, error) {
	query := `UPDATE meals SET
		title = COALESCE($2, title),
		category = COALESCE($3, category),
		image = COALESCE($4, image),
		description = COALESCE($5, description),
		price = COALESCE($6, price)
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, patch.Title, patch.Category, patch.Image, patch.Description, patch.Price)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *mealRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM meals WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
