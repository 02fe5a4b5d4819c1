package dtos

import (
	"furnico-backend/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddCartItemRequest is the body of POST /api/cart. Binding guarantees a
// well-formed UUID and a positive quantity before the engine sees it.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

func (r AddCartItemRequest) ProductUUID() uuid.UUID {
	return uuid.MustParse(r.ProductID)
}

// UpdateCartItemRequest is the body of PUT /api/cart/:id.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type CartResponse struct {
	Lines     []cart.Line     `json:"lines"`
	CartTotal decimal.Decimal `json:"cart_total"`
	ItemCount int             `json:"item_count"`
}

func NewCartResponse(c cart.Cart) CartResponse {
	lines := c.Lines
	if lines == nil {
		lines = []cart.Line{}
	}
	return CartResponse{
		Lines:     lines,
		CartTotal: c.Total,
		ItemCount: c.ItemCount(),
	}
}

// CartMutationResponse is returned by every mutating cart endpoint. Line is
// set when the mutation produced one.
type CartMutationResponse struct {
	Message string       `json:"message"`
	Line    *cart.Line   `json:"line,omitempty"`
	Cart    CartResponse `json:"cart"`
}
