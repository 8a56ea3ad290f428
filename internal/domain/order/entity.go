// internal/domain/order/entity.go
package order

import (
	"errors"
	"strings"
	"time"
)

// Errors (single source)
var (
	ErrInvalidProductRef = errors.New("order: invalid product reference")
	ErrInvalidUserRef    = errors.New("order: invalid user reference")
	ErrInvalidTotal      = errors.New("order: invalid total")
	ErrInvalidStatus     = errors.New("order: invalid status")
	ErrNotFound          = errors.New("order: not found")
)

// Status is the order lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ParseStatus normalizes a raw status string.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(strings.ToLower(s)))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Order represents "an order document". It references one product and one
// user by id; neither reference is enforced by the store, so a referenced
// document may have been deleted (consumers render a placeholder).
type Order struct {
	ID        string    `json:"id" firestore:"id"`
	ProductID string    `json:"productId" firestore:"productId"`
	UserID    string    `json:"userId" firestore:"userId"`
	Total     int64     `json:"total" firestore:"total"`
	Status    Status    `json:"status" firestore:"status"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// New builds a validated pending order.
func New(id, productID, userID string, total int64, now time.Time) (*Order, error) {
	o := &Order{
		ID:        strings.TrimSpace(id),
		ProductID: strings.TrimSpace(productID),
		UserID:    strings.TrimSpace(userID),
		Total:     total,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// SetStatus transitions the order and bumps UpdatedAt.
// Any of the three states may follow any other; only unknown values are
// rejected, leaving the order untouched.
func (o *Order) SetStatus(s Status, now time.Time) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	o.Status = s
	o.UpdatedAt = now
	return nil
}

func (o *Order) Validate() error {
	if o.ProductID == "" {
		return ErrInvalidProductRef
	}
	if o.UserID == "" {
		return ErrInvalidUserRef
	}
	if o.Total < 0 {
		return ErrInvalidTotal
	}
	if !o.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}
