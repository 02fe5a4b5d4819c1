package handlers

import (
	"errors"
	"net/http"

	"furnico-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	DB *gorm.DB
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := categorySummaries(h.DB, 0)
	if err != nil {
		zap.L().Error("failed to fetch categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := findActiveCategory(h.DB, c.Param("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if err != nil {
		zap.L().Error("failed to fetch category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
		return
	}

	products, err := activeProductsPage(h.DB, utils.ParsePage(c), func(q *gorm.DB) *gorm.DB {
		return q.Where("products.category_id = ?", category.ID)
	})
	if err != nil {
		zap.L().Error("failed to fetch products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"products": products,
	})
}
