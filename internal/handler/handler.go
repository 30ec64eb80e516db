package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mealhub/internal/repository"
)

// writeRepoError maps repository failures onto the response taxonomy:
// malformed ids are the client's fault, missing documents are 404, and
// everything else is logged and hidden behind a generic 500 instead of
// propagating unhandled.
func writeRepoError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrBadID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed identifier"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	default:
		logger.Error("Store operation failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
