package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mealhub/internal/middleware"
	"mealhub/internal/models"
	"mealhub/internal/repository"
)

type UserHandler interface {
	ListUsers(c *gin.Context)
	GetUserByID(c *gin.Context)
	CheckAdmin(c *gin.Context)
	CreateUser(c *gin.Context)
	UpdateProfile(c *gin.Context)
	PromoteToAdmin(c *gin.Context)
}

type userHandler struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func NewUserHandler(users repository.UserRepository, logger *zap.Logger) UserHandler {
	return &userHandler{users: users, logger: logger}
}

// ListUsers handles GET /users. Query parameters:
// - email: exact lookup, responds with the single matching record
// - search: case-insensitive regex match on name
func (h *userHandler) ListUsers(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		user, err := h.users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			writeRepoError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, user)
		return
	}

	if pattern := c.Query("search"); pattern != "" {
		users, err := h.users.SearchByName(c.Request.Context(), pattern)
		if err != nil {
			writeRepoError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, users)
		return
	}

	users, err := h.users.List(c.Request.Context())
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *userHandler) GetUserByID(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CheckAdmin handles GET /users/admin/:email. The caller may only ask
// about their own email: the path segment is display input, the verified
// claim is the authority.
func (h *userHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	claimEmail, ok := middleware.ClaimsEmail(c)
	if !ok || claimEmail != email {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		writeRepoError(c, h.logger, err)
		return
	}

	admin := user != nil && models.ParseRole(user.Role).IsAdmin()
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// CreateUser handles POST /users: insert unless the email already has a
// record, in which case the original's literal reply shape is kept.
func (h *userHandler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}
	if user.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email is required"})
		return
	}

	id, err := h.users.Create(c.Request.Context(), &user)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			c.JSON(http.StatusOK, gin.H{"message": "user already exist", "insertedId": nil})
			return
		}
		writeRepoError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

type profileUpdateRequest struct {
	Badge   string `json:"badge" binding:"required"`
	Package string `json:"package" binding:"required"`
}

// UpdateProfile handles PATCH /users/:id, stamping the badge and package
// of a purchased subscription onto the record.
func (h *userHandler) UpdateProfile(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	n, err := h.users.UpdateProfile(c.Request.Context(), id, req.Badge, req.Package)
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": n})
}

// PromoteToAdmin handles PATCH /users/admin/:id.
func (h *userHandler) PromoteToAdmin(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}

	n, err := h.users.PromoteToAdmin(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": n})
}
