// internal/domain/cart/repository_port.go
package cart

import "context"

// Repository is a persistence port for cart lines.
//
// Storage (Firestore):
// - collection: carts
// - docId: auto id (one document per add-to-cart)
// - fields: userId, productId, quantity, createdAt
//
// The collection is append-only: no update or delete is exposed.
type Repository interface {
	// Append inserts a new line and returns it with the assigned id.
	Append(ctx context.Context, l *Line) (*Line, error)

	// ListByUserID returns the user's lines, createdAt descending.
	ListByUserID(ctx context.Context, userID string) ([]Line, error)
}
