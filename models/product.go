package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID               uuid.UUID           `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name             string              `gorm:"not null;index" json:"name"`
	Slug             string              `gorm:"uniqueIndex;not null" json:"slug"`
	Description      string              `json:"description"`
	ShortDescription string              `json:"short_description"`
	Price            decimal.Decimal     `gorm:"type:numeric(12,2);not null" json:"price"`
	SalePrice        decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"sale_price"`
	SKU              string              `gorm:"uniqueIndex;not null" json:"sku"`
	StockQuantity    int                 `gorm:"default:0" json:"stock_quantity"`
	Images           []string            `gorm:"type:jsonb;serializer:json" json:"images"`
	Material         string              `json:"material"`
	Color            string              `json:"color"`
	Dimensions       string              `json:"dimensions"`
	Weight           decimal.NullDecimal `gorm:"type:numeric(8,2)" json:"weight"`
	CategoryID       uuid.UUID           `gorm:"type:uuid;not null;index" json:"category_id"`
	Category         Category            `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	IsFeatured       bool                `gorm:"default:false;index" json:"is_featured"`
	IsActive         bool                `gorm:"default:true;index" json:"is_active"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	DeletedAt        gorm.DeletedAt      `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// IsOnSale reports whether a sale price is set and undercuts the list price.
func (p Product) IsOnSale() bool {
	return p.SalePrice.Valid && p.SalePrice.Decimal.LessThan(p.Price)
}

// EffectivePrice is the price a customer pays right now: the sale price when
// it is lower than the list price, otherwise the list price.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.IsOnSale() {
		return p.SalePrice.Decimal
	}
	return p.Price
}

// PrimaryImage returns the first image URL, or "" when the product has none.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
