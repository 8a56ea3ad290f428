// internal/domain/order/repository_port.go
package order

import "context"

// Repository is a persistence port for Order.
//
// Storage (Firestore):
// - collection: orders
// - docId: auto id
// - fields: productId, userId, total, status, createdAt, updatedAt
//
// List reads are ordered by createdAt descending (newest first).
type Repository interface {
	// GetByID returns ErrNotFound when the document is absent.
	GetByID(ctx context.Context, id string) (*Order, error)

	// ListAll returns every order, createdAt descending.
	ListAll(ctx context.Context) ([]Order, error)

	// ListRecent returns at most limit orders, createdAt descending.
	ListRecent(ctx context.Context, limit int) ([]Order, error)

	// Create inserts a new document. Empty ID means "assign one".
	Create(ctx context.Context, o *Order) (*Order, error)

	// Save overwrites the full document by o.ID.
	Save(ctx context.Context, o *Order) error

	// Delete is unconditional: no existence check, no cascade.
	Delete(ctx context.Context, id string) error
}
