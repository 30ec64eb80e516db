package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mealhub/internal/models"
	"mealhub/internal/repository"
)

type UpcomingMealHandler interface {
	ListUpcomingMeals(c *gin.Context)
	CreateUpcomingMeal(c *gin.Context)
}

type upcomingMealHandler struct {
	upcoming repository.UpcomingMealRepository
	logger   *zap.Logger
}

func NewUpcomingMealHandler(upcoming repository.UpcomingMealRepository, logger *zap.Logger) UpcomingMealHandler {
	return &upcomingMealHandler{upcoming: upcoming, logger: logger}
}

func (h *upcomingMealHandler) ListUpcomingMeals(c *gin.Context) {
	meals, err := h.upcoming.List(c.Request.Context())
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *upcomingMealHandler) CreateUpcomingMeal(c *gin.Context) {
	var meal models.UpcomingMeal
	if err := c.ShouldBindJSON(&meal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	id, err := h.upcoming.Create(c.Request.Context(), &meal)
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}
