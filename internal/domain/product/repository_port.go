// internal/domain/product/repository_port.go
package product

import "context"

// Repository is a persistence port for Product.
//
// Storage (Firestore):
// - collection: products
// - docId: auto id
// - fields: name, category, price, stock, description, details, createdAt, updatedAt
//
// Reads are snapshots with no ordering guarantee beyond the category filter.
type Repository interface {
	// GetByID returns ErrNotFound when the document is absent.
	GetByID(ctx context.Context, id string) (*Product, error)

	ListAll(ctx context.Context) ([]Product, error)

	// ListByCategory uses a field-equality filter on "category".
	ListByCategory(ctx context.Context, category Category) ([]Product, error)

	// Create inserts a new document. Empty ID means "assign one".
	Create(ctx context.Context, p *Product) (*Product, error)

	// Save overwrites the full document by p.ID.
	Save(ctx context.Context, p *Product) error

	// Delete is unconditional: no existence check, no cascade.
	Delete(ctx context.Context, id string) error
}
