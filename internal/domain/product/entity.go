// internal/domain/product/entity.go
package product

import (
	"errors"
	"strings"
	"time"
)

// Errors (single source)
var (
	ErrInvalidName        = errors.New("product: invalid name")
	ErrInvalidCategory    = errors.New("product: invalid category")
	ErrInvalidPrice       = errors.New("product: invalid price")
	ErrInvalidStock       = errors.New("product: invalid stock")
	ErrInvalidDescription = errors.New("product: invalid description")
	ErrInvalidDetails     = errors.New("product: invalid details")
	ErrNotFound           = errors.New("product: not found")
	ErrConflict           = errors.New("product: already exists")
)

// Category is the product category. The catalog only knows two kinds:
// downloadable applications and one-off services.
type Category string

const (
	CategoryApp     Category = "app"
	CategoryService Category = "service"
)

func (c Category) IsValid() bool {
	return c == CategoryApp || c == CategoryService
}

// ParseCategory normalizes a raw category string.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(strings.ToLower(s)))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// StockUnlimited marks a product that never runs out.
const StockUnlimited = -1

// Product represents "a product document".
//   - docId = Firestore auto id
//   - Details is an ordered list of feature strings shown on the detail page.
type Product struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	Category    Category  `json:"category" firestore:"category"`
	Price       int64     `json:"price" firestore:"price"`
	Stock       int64     `json:"stock" firestore:"stock"`
	Description string    `json:"description" firestore:"description"`
	Details     []string  `json:"details" firestore:"details"`
	ImageURL    string    `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// New builds a validated product. id may be empty (Firestore assigns one).
func New(id, name string, category Category, price, stock int64, description string, details []string, now time.Time) (*Product, error) {
	p := &Product{
		ID:          strings.TrimSpace(id),
		Name:        strings.TrimSpace(name),
		Category:    category,
		Price:       price,
		Stock:       stock,
		Description: strings.TrimSpace(description),
		Details:     normalizeDetails(details),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Unlimited reports whether the stock sentinel is set.
func (p *Product) Unlimited() bool {
	return p.Stock == StockUnlimited
}

// HasStockFor reports whether qty units can be sold.
// Nothing here decrements stock; the catalog only answers availability.
func (p *Product) HasStockFor(qty int64) bool {
	if p.Unlimited() {
		return qty > 0
	}
	return qty > 0 && qty <= p.Stock
}

// Apply overwrites the editable fields and bumps UpdatedAt.
// CreatedAt is never touched by an update.
func (p *Product) Apply(name string, category Category, price, stock int64, description string, details []string, now time.Time) error {
	p.Name = strings.TrimSpace(name)
	p.Category = category
	p.Price = price
	p.Stock = stock
	p.Description = strings.TrimSpace(description)
	p.Details = normalizeDetails(details)
	p.UpdatedAt = now
	return p.Validate()
}

// SetImage records the public image URL. An empty url clears the slot.
func (p *Product) SetImage(url string, now time.Time) {
	p.ImageURL = strings.TrimSpace(url)
	p.UpdatedAt = now
}

func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidName
	}
	if !p.Category.IsValid() {
		return ErrInvalidCategory
	}
	if p.Price < 0 {
		return ErrInvalidPrice
	}
	if p.Stock < StockUnlimited {
		return ErrInvalidStock
	}
	if strings.TrimSpace(p.Description) == "" {
		return ErrInvalidDescription
	}
	if len(p.Details) == 0 {
		return ErrInvalidDetails
	}
	return nil
}

// normalizeDetails trims entries and drops blanks, preserving order.
func normalizeDetails(src []string) []string {
	out := make([]string, 0, len(src))
	for _, d := range src {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		out = append(out, d)
	}
	return out
}
