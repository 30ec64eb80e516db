package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mealhub/internal/models"
	"mealhub/internal/repository"
)

type MealHandler interface {
	ListMeals(c *gin.Context)
	GetMealByID(c *gin.Context)
	CreateMeal(c *gin.Context)
	UpdateMeal(c *gin.Context)
	DeleteMeal(c *gin.Context)
}

type mealHandler struct {
	meals  repository.MealRepository
	logger *zap.Logger
}

func NewMealHandler(meals repository.MealRepository, logger *zap.Logger) MealHandler {
	return &mealHandler{meals: meals, logger: logger}
}

func (h *mealHandler) ListMeals(c *gin.Context) {
	meals, err := h.meals.List(c.Request.Context())
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *mealHandler) GetMealByID(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}

	meal, err := h.meals.GetByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *mealHandler) CreateMeal(c *gin.Context) {
	var meal models.Meal
	if err := c.ShouldBindJSON(&meal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	id, err := h.meals.Create(c.Request.Context(), &meal)
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

func (h *mealHandler) UpdateMeal(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}

	var patch repository.MealPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	n, err := h.meals.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": n})
}

// DeleteMeal is admin-gated at the router; by the time it runs the caller
// has already passed verification and the role check.
func (h *mealHandler) DeleteMeal(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}

	n, err := h.meals.Delete(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": n})
}
