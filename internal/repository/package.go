package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"mealhub/internal/models"
)

type PackageRepository interface {
	List(ctx context.Context) ([]models.Package, error)
	GetByName(ctx context.Context, name string) (*models.Package, error)
}

type packageRepository struct {
	db *sqlx.DB
}

func NewPackageRepository(db *sqlx.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) List(ctx context.Context) ([]models.Package, error) {
	packages := []models.Package{}
	query := `SELECT id, name, price, badge, perks FROM packages ORDER BY price`
	if err := r.db.SelectContext(ctx, &packages, query); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *packageRepository) GetByName(ctx context.Context, name string) (*models.Package, error) {
	var pkg models.Package
	query := `SELECT id, name, price, badge, perks FROM packages WHERE name = $1`
	if err := r.db.GetContext(ctx, &pkg, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &pkg, nil
}
