package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"mealhub/internal/models"
)

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SearchByName(ctx context.Context, pattern string) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) (int64, error)
	UpdateProfile(ctx context.Context, id int64, badge, pkg string) (int64, error)
	PromoteToAdmin(ctx context.Context, id int64) (int64, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	query := `SELECT id, email, name, role, badge, package, created_at FROM users ORDER BY id`
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := `SELECT id, email, name, role, badge, package, created_at FROM users WHERE email = $1`
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) SearchByName(ctx context.Context, pattern string) ([]models.User, error) {
	users := []models.User{}
	query := `SELECT id, email, name, role, badge, package, created_at FROM users WHERE name ~* $1 ORDER BY id`
	if err := r.db.SelectContext(ctx, &users, query, pattern); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	query := `SELECT id, email, name, role, badge, package, created_at FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts the user unless the email is already taken. The conflict
// clause keeps the existence check and the insert one atomic statement, so
// two concurrent registrations of the same email cannot both succeed.
func (r *userRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	role := user.Role
	if role == "" {
		role = string(models.RoleUser)
	}
	var id int64
	query := `INSERT INTO users (email, name, role, badge, package)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
		RETURNING id`
	err := r.db.QueryRowxContext(ctx, query, user.Email, user.Name, role, user.Badge, user.Package).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrUserExists
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id int64, badge, pkg string) (int64, error) {
	query := `UPDATE users SET badge = $2, package = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, badge, pkg)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *userRepository) PromoteToAdmin(ctx context.Context, id int64) (int64, error) {
	query := `UPDATE users SET role = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, string(models.RoleAdmin))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
