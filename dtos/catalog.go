package dtos

import (
	"furnico-backend/models"
	"furnico-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Page wraps one page of a listing.
type Page[T any] struct {
	Data     []T   `json:"data"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	LastPage int   `json:"last_page"`
}

func NewPage[T any](data []T, total int64, page int) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data:     data,
		Total:    total,
		Page:     page,
		PerPage:  utils.PerPage,
		LastPage: utils.LastPage(total),
	}
}

type CategorySummary struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Slug                string    `json:"slug"`
	Description         string    `json:"description"`
	Image               string    `json:"image,omitempty"`
	ActiveProductsCount int64     `json:"active_products_count"`
}

// ProductCard is the product shape used on the landing page.
type ProductCard struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	Slug           string              `json:"slug"`
	Price          decimal.Decimal     `json:"price"`
	SalePrice      decimal.NullDecimal `json:"sale_price"`
	Images         []string            `json:"images"`
	IsOnSale       bool                `json:"is_on_sale"`
	EffectivePrice decimal.Decimal     `json:"effective_price"`
}

func NewProductCard(p models.Product) ProductCard {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductCard{
		ID:             p.ID,
		Name:           p.Name,
		Slug:           p.Slug,
		Price:          p.Price,
		SalePrice:      p.SalePrice,
		Images:         images,
		IsOnSale:       p.IsOnSale(),
		EffectivePrice: p.EffectivePrice(),
	}
}
