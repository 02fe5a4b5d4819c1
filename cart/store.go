package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"furnico-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the Store backed by the cart_items table.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{DB: tx})
	})
}

func (s *GormStore) withSnapshot(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Preload("Product", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Product.Category", func(db *gorm.DB) *gorm.DB { return db.Unscoped() })
}

func (s *GormStore) UpsertLine(ctx context.Context, line *models.CartItem) error {
	err := s.DB.WithContext(ctx).
		Omit("Product").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
				"updated_at": time.Now(),
			}),
		}).
		Create(line).Error
	if err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}

	// On conflict the generated id was discarded, so read back by the unique key.
	var stored models.CartItem
	if err := s.withSnapshot(ctx).
		Where("user_id = ? AND product_id = ?", line.UserID, line.ProductID).
		First(&stored).Error; err != nil {
		return fmt.Errorf("reload cart item: %w", err)
	}
	*line = stored
	return nil
}

func (s *GormStore) LockLine(ctx context.Context, lineID uuid.UUID) (models.CartItem, error) {
	var line models.CartItem
	err := s.withSnapshot(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", lineID).
		First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return line, fmt.Errorf("cart item %s: %w", lineID, ErrNotFound)
	}
	return line, err
}

func (s *GormStore) SaveQuantity(ctx context.Context, lineID uuid.UUID, quantity int) error {
	res := s.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", lineID).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %s: %w", lineID, ErrNotFound)
	}
	return nil
}

func (s *GormStore) DeleteLine(ctx context.Context, lineID uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ?", lineID).Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %s: %w", lineID, ErrNotFound)
	}
	return nil
}

func (s *GormStore) DeleteOwnerLines(ctx context.Context, owner uuid.UUID) error {
	return s.DB.WithContext(ctx).Where("user_id = ?", owner).Delete(&models.CartItem{}).Error
}

func (s *GormStore) ListOwnerLines(ctx context.Context, owner uuid.UUID) ([]models.CartItem, error) {
	var lines []models.CartItem
	err := s.withSnapshot(ctx).
		Where("user_id = ?", owner).
		Order("created_at ASC").
		Order("id ASC").
		Find(&lines).Error
	return lines, err
}
