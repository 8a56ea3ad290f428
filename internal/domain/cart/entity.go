// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"strings"
	"time"
)

// Errors (single source)
var (
	ErrInvalidUserRef    = errors.New("cart: invalid user reference")
	ErrInvalidProductRef = errors.New("cart: invalid product reference")
	ErrInvalidQuantity   = errors.New("cart: invalid quantity")
)

// Line represents "one cart document". Each add-to-cart click appends a new
// document; lines for the same product are never merged, and a line is never
// updated or deleted after creation.
type Line struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"userId" firestore:"userId"`
	ProductID string    `json:"productId" firestore:"productId"`
	Quantity  int64     `json:"quantity" firestore:"quantity"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// NewLine builds a validated cart line. id may be empty (Firestore assigns one).
func NewLine(id, userID, productID string, quantity int64, now time.Time) (*Line, error) {
	l := &Line{
		ID:        strings.TrimSpace(id),
		UserID:    strings.TrimSpace(userID),
		ProductID: strings.TrimSpace(productID),
		Quantity:  quantity,
		CreatedAt: now,
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Line) Validate() error {
	if l.UserID == "" {
		return ErrInvalidUserRef
	}
	if l.ProductID == "" {
		return ErrInvalidProductRef
	}
	if l.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}
