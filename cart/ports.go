package cart

import (
	"context"

	"furnico-backend/models"

	"github.com/google/uuid"
)

// Catalog resolves product references. ResolveProduct returns an error
// wrapping ErrNotFound when the product does not exist.
type Catalog interface {
	ResolveProduct(ctx context.Context, productID uuid.UUID) (models.Product, error)
}

// Store persists cart lines. Reads preload the product and its category so a
// line can be rendered without a second catalog round trip.
type Store interface {
	// Transaction runs fn against a Store bound to a single transaction.
	Transaction(ctx context.Context, fn func(Store) error) error

	// UpsertLine inserts line or, when the owner already holds the product,
	// adds line.Quantity to the stored quantity in the same statement. The
	// stored unit price is never overwritten. line is replaced by the row as
	// persisted.
	UpsertLine(ctx context.Context, line *models.CartItem) error

	// LockLine loads a line by id for modification.
	LockLine(ctx context.Context, lineID uuid.UUID) (models.CartItem, error)
	SaveQuantity(ctx context.Context, lineID uuid.UUID, quantity int) error
	DeleteLine(ctx context.Context, lineID uuid.UUID) error
	DeleteOwnerLines(ctx context.Context, owner uuid.UUID) error
	ListOwnerLines(ctx context.Context, owner uuid.UUID) ([]models.CartItem, error)
}
