package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"mealhub/internal/models"
)

type ReviewRepository interface {
	List(ctx context.Context) ([]models.Review, error)
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	Create(ctx context.Context, review *models.Review) (int64, error)
	Update(ctx context.Context, id int64, patch ReviewPatch) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type ReviewPatch struct {
	Rating  *float64 `json:"rating"`
	Comment *string  `json:"comment"`
}

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) List(ctx context.Context) ([]models.Review, error) {
	reviews := []models.Review{}
	query := `SELECT id, meal_id, meal_title, email, name, rating, comment, created_at
		FROM reviews ORDER BY created_at DESC, id`
	if err := r.db.SelectContext(ctx, &reviews, query); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	var review models.Review
	query := `SELECT id, meal_id, meal_title, email, name, rating, comment, created_at
		FROM reviews WHERE id = $1`
	if err := r.db.GetContext(ctx, &review, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) (int64, error) {
	var id int64
	query := `INSERT INTO reviews (meal_id, meal_title, email, name, rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRowxContext(ctx, query,
		review.MealID, review.MealTitle, review.Email, review.Name, review.Rating, review.Comment,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *reviewRepository) Update(ctx context.Context, id int64, patch ReviewPatch) (int64, error) {
	query := `UPDATE reviews SET
		rating = COALESCE($2, rating),
		comment = COALESCE($3, comment)
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, patch.Rating, patch.Comment)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
