package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mealhub/internal/models"
	"mealhub/internal/repository"
)

type ReviewHandler interface {
	ListReviews(c *gin.Context)
	GetReviewByID(c *gin.Context)
	CreateReview(c *gin.Context)
	UpdateReview(c *gin.Context)
	DeleteReview(c *gin.Context)
}

type reviewHandler struct {
	reviews repository.ReviewRepository
	logger  *zap.Logger
}

func NewReviewHandler(reviews repository.ReviewRepository, logger *zap.Logger) ReviewHandler {
	return &reviewHandler{reviews: reviews, logger: logger}
}

func (h *reviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviews.List(c.Request.Context())
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *reviewHandler) GetReviewByID(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}

	review, err := h.reviews.GetByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *reviewHandler) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	id, err := h.reviews.Create(c.Request.Context(), &review)
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

func (h *reviewHandler) UpdateReview(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}

	var patch repository.ReviewPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	n, err := h.reviews.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": n})
}

func (h *reviewHandler) DeleteReview(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}

	n, err := h.reviews.Delete(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": n})
}
