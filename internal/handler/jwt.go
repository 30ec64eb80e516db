package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mealhub/internal/token"
)

type JWTHandler interface {
	IssueToken(c *gin.Context)
}

type jwtHandler struct {
	tokens *token.Service
	logger *zap.Logger
}

func NewJWTHandler(tokens *token.Service, logger *zap.Logger) JWTHandler {
	return &jwtHandler{tokens: tokens, logger: logger}
}

// IssueToken handles POST /jwt. The request body is the identity payload
// and is embedded in the token as-is; it must at least carry an email or
// the token will never pass the admin gate.
func (h *jwtHandler) IssueToken(c *gin.Context) {
	payload := map[string]any{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	tok, err := h.tokens.Issue(payload)
	if err != nil {
		h.logger.Error("Failed to sign token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tok})
}
