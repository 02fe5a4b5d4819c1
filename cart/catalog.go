package cart

import (
	"context"
	"errors"
	"fmt"

	"furnico-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalog resolves products from the products table. Soft-deleted
// products do not resolve.
type GormCatalog struct {
	DB *gorm.DB
}

func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{DB: db}
}

func (c *GormCatalog) ResolveProduct(ctx context.Context, productID uuid.UUID) (models.Product, error) {
	var product models.Product
	err := c.DB.WithContext(ctx).Where("id = ?", productID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return product, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}
	return product, err
}
