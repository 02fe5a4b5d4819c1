package handlers

import (
	"errors"
	"net/http"

	"furnico-backend/models"
	"furnico-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const relatedProductsLimit = 4

type ProductHandler struct {
	DB *gorm.DB
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	categoryID := c.Query("category_id")
	search := c.Query("search")

	if categoryID != "" {
		if _, err := uuid.Parse(categoryID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}
	}

	products, err := activeProductsPage(h.DB, utils.ParsePage(c), func(q *gorm.DB) *gorm.DB {
		if categoryID != "" {
			q = q.Where("products.category_id = ?", categoryID)
		}
		if search != "" {
			q = q.Where("LOWER(products.name) LIKE LOWER(?)", "%"+search+"%")
		}
		return q
	})
	if err != nil {
		zap.L().Error("failed to fetch products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	categories, err := categorySummaries(h.DB, 0)
	if err != nil {
		zap.L().Error("failed to fetch categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"categories": categories,
		"filters": gin.H{
			"category_id": categoryID,
			"search":      search,
		},
	})
}

// GetProduct looks a product up by slug or id and returns it with up to four
// other active products from the same category.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	var product models.Product
	err := whereSlugOrID(h.DB.Preload("Category"), c.Param("slug")).
		Where("is_active = ?", true).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		zap.L().Error("failed to fetch product", zap.String("slug", c.Param("slug")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	related := []models.Product{}
	if err := h.DB.Where("category_id = ? AND id <> ? AND is_active = ?", product.CategoryID, product.ID, true).
		Order("name").
		Limit(relatedProductsLimit).
		Find(&related).Error; err != nil {
		zap.L().Error("failed to fetch related products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":          product,
		"related_products": related,
	})
}

// GetProductsByCategory is the product listing scoped to one category.
func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
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

	categories, err := categorySummaries(h.DB, 0)
	if err != nil {
		zap.L().Error("failed to fetch categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":         products,
		"categories":       categories,
		"current_category": category,
		"filters":          gin.H{"category_id": category.ID},
	})
}
