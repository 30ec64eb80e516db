package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mealhub/internal/repository"
)

type PackageHandler interface {
	ListPackages(c *gin.Context)
	GetPackageByName(c *gin.Context)
}

type packageHandler struct {
	packages repository.PackageRepository
	logger   *zap.Logger
}

func NewPackageHandler(packages repository.PackageRepository, logger *zap.Logger) PackageHandler {
	return &packageHandler{packages: packages, logger: logger}
}

func (h *packageHandler) ListPackages(c *gin.Context) {
	packages, err := h.packages.List(c.Request.Context())
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

func (h *packageHandler) GetPackageByName(c *gin.Context) {
	pkg, err := h.packages.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeRepoError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}
