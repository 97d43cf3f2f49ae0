package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"folio-be/internal/apperr"
	"folio-be/internal/middleware"
	"folio-be/internal/models"
	"folio-be/internal/service"
)

type PortfolioController struct {
	portfolioService service.PortfolioService
}

func NewPortfolioController(portfolioService service.PortfolioService) *PortfolioController {
	return &PortfolioController{
		portfolioService: portfolioService,
	}
}

// List handles GET /portfolio
func (pc *PortfolioController) List(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	assets, err := pc.portfolioService.List(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list assets"})
		return
	}

	c.JSON(http.StatusOK, assets)
}

// Create handles POST /portfolio
func (pc *PortfolioController) Create(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	var req models.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	asset, err := pc.portfolioService.Create(c.Request.Context(), ownerID, &req)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create asset"})
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// Get handles GET /portfolio/:id
func (pc *PortfolioController) Get(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	asset, err := pc.portfolioService.Get(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		pc.respondAccessError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// Update handles PUT /portfolio/:id
func (pc *PortfolioController) Update(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	var req models.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	asset, err := pc.portfolioService.Update(c.Request.Context(), ownerID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pc.respondAccessError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// Delete handles DELETE /portfolio/:id
func (pc *PortfolioController) Delete(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	assetID := c.Param("id")
	if err := pc.portfolioService.Delete(c.Request.Context(), ownerID, assetID); err != nil {
		pc.respondAccessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": assetID})
}

func (pc *PortfolioController) respondAccessError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrAssetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": apperr.ErrAssetNotFound.Error()})
	case errors.Is(err, apperr.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrNotOwner.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "request failed"})
	}
}
