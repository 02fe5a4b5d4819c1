package handlers

import (
	"net/http"

	"furnico-backend/dtos"
	"furnico-backend/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	landingCategoryLimit = 6
	landingProductLimit  = 8
)

type LandingHandler struct {
	DB *gorm.DB
}

func (h *LandingHandler) GetLanding(c *gin.Context) {
	categories, err := categorySummaries(h.DB, landingCategoryLimit)
	if err != nil {
		zap.L().Error("failed to fetch landing categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load landing page"})
		return
	}

	var products []models.Product
	if err := h.DB.Where("is_active = ? AND is_featured = ?", true, true).
		Order("name").
		Limit(landingProductLimit).
		Find(&products).Error; err != nil {
		zap.L().Error("failed to fetch featured products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load landing page"})
		return
	}

	cards := make([]dtos.ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, dtos.NewProductCard(p))
	}

	c.JSON(http.StatusOK, gin.H{
		"featured_categories": categories,
		"featured_products":   cards,
	})
}
