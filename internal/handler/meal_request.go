package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mealhub/internal/models"
	"mealhub/internal/repository"
)

type MealRequestHandler interface {
	ListMealRequests(c *gin.Context)
	CreateMealRequest(c *gin.Context)
	DeleteMealRequest(c *gin.Context)
}

type mealRequestHandler struct {
	requests repository.MealRequestRepository
	logger   *zap.Logger
}

func NewMealRequestHandler(requests repository.MealRequestRepository, logger *zap.Logger) MealRequestHandler {
	return &mealRequestHandler{requests: requests, logger: logger}
}

// ListMealRequests handles GET /requestedMeal; ?email= narrows the list
// to one subscriber's requests.
func (h *mealRequestHandler) ListMealRequests(c *gin.Context) {
	var (
		requests []models.MealRequest
		err      error
	)
	if email := c.Query("email"); email != "" {
		requests, err = h.requests.ListByEmail(c.Request.Context(), email)
	} else {
		requests, err = h.requests.List(c.Request.Context())
	}
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *mealRequestHandler) CreateMealRequest(c *gin.Context) {
	var req models.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	id, err := h.requests.Create(c.Request.Context(), &req)
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

func (h *mealRequestHandler) DeleteMealRequest(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}

	n, err := h.requests.Delete(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": n})
}
