// Package cart owns the per-user shopping cart: merging repeated adds into one
// line, locking in the unit price on first add, ownership checks on mutation
// and exact decimal totals.
package cart

import (
	"context"
	"fmt"

	"furnico-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CategorySnapshot struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// ProductSnapshot is display data read from the catalog alongside a line. It
// never feeds back into pricing.
type ProductSnapshot struct {
	Name     string           `json:"name"`
	Slug     string           `json:"slug"`
	Image    string           `json:"image"`
	InStock  bool             `json:"in_stock"`
	Category CategorySnapshot `json:"category"`
}

type Line struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
	Product   ProductSnapshot `json:"product"`
}

// Cart is the read model for one owner.
type Cart struct {
	Owner uuid.UUID       `json:"-"`
	Lines []Line          `json:"lines"`
	Total decimal.Decimal `json:"cart_total"`
}

// ItemCount is the number of units across all lines.
func (c Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func newLine(item models.CartItem) Line {
	p := item.Product
	return Line{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		LineTotal: item.LineTotal(),
		Product: ProductSnapshot{
			Name:    p.Name,
			Slug:    p.Slug,
			Image:   p.PrimaryImage(),
			InStock: p.StockQuantity >= item.Quantity,
			Category: CategorySnapshot{
				ID:   p.Category.ID,
				Name: p.Category.Name,
				Slug: p.Category.Slug,
			},
		},
	}
}

// Engine applies cart operations for an explicitly supplied owner. It keeps no
// state between calls; every mutation runs in one store transaction.
type Engine struct {
	store   Store
	catalog Catalog
	log     *zap.Logger
}

func NewEngine(store Store, catalog Catalog, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{store: store, catalog: catalog, log: log}
}

func validQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d: %w", quantity, ErrInvalidArgument)
	}
	return nil
}

func assertOwnership(line models.CartItem, owner uuid.UUID) error {
	if line.UserID != owner {
		return fmt.Errorf("cart item %s: %w", line.ID, ErrForbidden)
	}
	return nil
}

// AddItem puts quantity units of a product in owner's cart. A product already
// in the cart has its quantity increased and keeps the unit price captured on
// the first add; otherwise a line is created at the current effective price.
// Stock is not checked.
func (e *Engine) AddItem(ctx context.Context, owner, productID uuid.UUID, quantity int) (Line, error) {
	if err := validQuantity(quantity); err != nil {
		return Line{}, err
	}

	product, err := e.catalog.ResolveProduct(ctx, productID)
	if err != nil {
		return Line{}, err
	}

	item := models.CartItem{
		UserID:    owner,
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: product.EffectivePrice(),
	}
	if err := e.store.Transaction(ctx, func(s Store) error {
		return s.UpsertLine(ctx, &item)
	}); err != nil {
		return Line{}, err
	}

	e.log.Debug("cart item added",
		zap.String("owner", owner.String()),
		zap.String("product_id", productID.String()),
		zap.Int("added", quantity),
		zap.Int("quantity", item.Quantity),
	)
	return newLine(item), nil
}

// UpdateQuantity sets a line's quantity to exactly quantity.
func (e *Engine) UpdateQuantity(ctx context.Context, owner, lineID uuid.UUID, quantity int) (Line, error) {
	if err := validQuantity(quantity); err != nil {
		return Line{}, err
	}

	var updated models.CartItem
	err := e.store.Transaction(ctx, func(s Store) error {
		line, err := s.LockLine(ctx, lineID)
		if err != nil {
			return err
		}
		if err := assertOwnership(line, owner); err != nil {
			return err
		}
		if err := s.SaveQuantity(ctx, line.ID, quantity); err != nil {
			return err
		}
		line.Quantity = quantity
		updated = line
		return nil
	})
	if err != nil {
		return Line{}, err
	}

	e.log.Debug("cart item updated",
		zap.String("owner", owner.String()),
		zap.String("line_id", lineID.String()),
		zap.Int("quantity", quantity),
	)
	return newLine(updated), nil
}

// RemoveItem deletes one of owner's lines. Removing a line that no longer
// exists fails with ErrNotFound.
func (e *Engine) RemoveItem(ctx context.Context, owner, lineID uuid.UUID) error {
	err := e.store.Transaction(ctx, func(s Store) error {
		line, err := s.LockLine(ctx, lineID)
		if err != nil {
			return err
		}
		if err := assertOwnership(line, owner); err != nil {
			return err
		}
		return s.DeleteLine(ctx, line.ID)
	})
	if err != nil {
		return err
	}

	e.log.Debug("cart item removed", zap.String("owner", owner.String()), zap.String("line_id", lineID.String()))
	return nil
}

// ClearCart deletes all of owner's lines. An empty cart is not an error.
func (e *Engine) ClearCart(ctx context.Context, owner uuid.UUID) error {
	if err := e.store.Transaction(ctx, func(s Store) error {
		return s.DeleteOwnerLines(ctx, owner)
	}); err != nil {
		return err
	}

	e.log.Debug("cart cleared", zap.String("owner", owner.String()))
	return nil
}

// GetCart returns owner's lines with product snapshots and the exact total.
func (e *Engine) GetCart(ctx context.Context, owner uuid.UUID) (Cart, error) {
	items, err := e.store.ListOwnerLines(ctx, owner)
	if err != nil {
		return Cart{}, err
	}

	c := Cart{Owner: owner, Lines: make([]Line, 0, len(items)), Total: decimal.Zero}
	for _, item := range items {
		line := newLine(item)
		c.Lines = append(c.Lines, line)
		c.Total = c.Total.Add(line.LineTotal)
	}
	return c, nil
}
