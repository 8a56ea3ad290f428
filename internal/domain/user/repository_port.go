// internal/domain/user/repository_port.go
package user

import "context"

// Repository is a persistence port for User.
//
// Storage (Firestore):
// - collection: users
// - docId: Firebase Auth uid ✅ (docId is the source of truth)
// - fields: name, email, role, createdAt, updatedAt
//
// Delete carries no self-delete guard here: by policy that check belongs to
// the console surface, not the access layer.
type Repository interface {
	// GetByID returns ErrNotFound when the document is absent.
	GetByID(ctx context.Context, id string) (*User, error)

	ListAll(ctx context.Context) ([]User, error)

	// Create writes the registration document keyed by u.ID (= uid).
	Create(ctx context.Context, u *User) error

	// Save overwrites the full document by u.ID.
	Save(ctx context.Context, u *User) error

	// Delete is unconditional: no existence check, no cascade.
	Delete(ctx context.Context, id string) error
}
