// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	cartdom "github.com/Fizxxc/digital-store/internal/domain/cart"
	productdom "github.com/Fizxxc/digital-store/internal/domain/product"
)

var (
	ErrCartAuthRequired      = errors.New("cart_usecase: sign-in required")
	ErrCartInsufficientStock = errors.New("cart_usecase: insufficient stock")
)

// ResolvedLine is a cart line joined with its product for display.
type ResolvedLine struct {
	cartdom.Line
	ProductName string `json:"productName"`
	Subtotal    int64  `json:"subtotal"`
}

// CartUsecase coordinates cart reads and the add-to-cart flow.
type CartUsecase struct {
	lines    cartdom.Repository
	products productdom.Repository
	clock    Clock
}

func NewCartUsecase(lines cartdom.Repository, products productdom.Repository) *CartUsecase {
	return &CartUsecase{lines: lines, products: products, clock: systemClock{}}
}

// NewCartUsecaseWithClock is useful for tests.
func NewCartUsecaseWithClock(lines cartdom.Repository, products productdom.Repository, clock Clock) *CartUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CartUsecase{lines: lines, products: products, clock: clock}
}

// AddLine appends a cart line for qty units of a product.
//
// Rules, checked in order with no write on failure:
//   - userID must be a signed-in identity (ErrCartAuthRequired)
//   - quantity must be positive (cart.ErrInvalidQuantity)
//   - the product must exist (product.ErrNotFound)
//   - finite stock (≠ -1) must cover qty (ErrCartInsufficientStock)
//
// Lines are never merged; each call appends a fresh document. Stock is not
// decremented here; availability is re-checked at fulfillment time.
func (uc *CartUsecase) AddLine(ctx context.Context, userID, productID string, qty int64) (*ResolvedLine, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrCartAuthRequired
	}
	if qty <= 0 {
		return nil, cartdom.ErrInvalidQuantity
	}

	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !p.HasStockFor(qty) {
		return nil, ErrCartInsufficientStock
	}

	l, err := cartdom.NewLine("", uid, p.ID, qty, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	created, err := uc.lines.Append(ctx, l)
	if err != nil {
		return nil, err
	}
	return &ResolvedLine{Line: *created, ProductName: p.Name, Subtotal: p.Price * qty}, nil
}

// Lines returns the user's cart lines, newest first, products resolved.
// A deleted product renders the fixed placeholder with zero subtotal.
func (uc *CartUsecase) Lines(ctx context.Context, userID string) ([]ResolvedLine, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrCartAuthRequired
	}

	lines, err := uc.lines.ListByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}

	out := make([]ResolvedLine, 0, len(lines))
	for _, l := range lines {
		r := ResolvedLine{Line: l, ProductName: PlaceholderDeletedProduct}
		p, err := uc.products.GetByID(ctx, l.ProductID)
		if err != nil {
			if !errors.Is(err, productdom.ErrNotFound) {
				return nil, err
			}
		} else {
			r.ProductName = p.Name
			r.Subtotal = p.Price * l.Quantity
		}
		out = append(out, r)
	}
	return out, nil
}
