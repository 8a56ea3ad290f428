// internal/application/usecase/catalog_usecase.go
package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"path"
	"strings"

	productdom "github.com/Fizxxc/digital-store/internal/domain/product"
)

var (
	ErrCatalogInvalidArgument = errors.New("catalog_usecase: invalid argument")
	ErrCatalogNoImageStore    = errors.New("catalog_usecase: image store not configured")
)

// ImageStore is the outbound port for product image blobs.
type ImageStore interface {
	Upload(ctx context.Context, productID, fileName, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, productID, fileName string) error
}

// relatedLimit caps the related-products strip on the detail page.
const relatedLimit = 4

// ProductInput carries the raw form fields of the product modal.
type ProductInput struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       int64    `json:"price"`
	Stock       int64    `json:"stock"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
}

// CatalogUsecase coordinates product reads and console writes.
// images is optional; image endpoints fail with ErrCatalogNoImageStore
// when the blob store was not configured.
type CatalogUsecase struct {
	repo   productdom.Repository
	images ImageStore
	clock  Clock
}

func NewCatalogUsecase(repo productdom.Repository, images ImageStore) *CatalogUsecase {
	return &CatalogUsecase{repo: repo, images: images, clock: systemClock{}}
}

// NewCatalogUsecaseWithClock is useful for tests.
func NewCatalogUsecaseWithClock(repo productdom.Repository, images ImageStore, clock Clock) *CatalogUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CatalogUsecase{repo: repo, images: images, clock: clock}
}

func (uc *CatalogUsecase) ListAll(ctx context.Context) ([]productdom.Product, error) {
	return uc.repo.ListAll(ctx)
}

func (uc *CatalogUsecase) ListByCategory(ctx context.Context, rawCategory string) ([]productdom.Product, error) {
	c, err := productdom.ParseCategory(rawCategory)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListByCategory(ctx, c)
}

// GetByID returns productdom.ErrNotFound when the product is absent.
func (uc *CatalogUsecase) GetByID(ctx context.Context, id string) (*productdom.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrCatalogInvalidArgument
	}
	return uc.repo.GetByID(ctx, id)
}

// Related returns up to 4 products of the same category, excluding id itself.
func (uc *CatalogUsecase) Related(ctx context.Context, id string) ([]productdom.Product, error) {
	p, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	same, err := uc.repo.ListByCategory(ctx, p.Category)
	if err != nil {
		return nil, err
	}

	out := make([]productdom.Product, 0, relatedLimit)
	for _, candidate := range same {
		if candidate.ID == p.ID {
			continue
		}
		out = append(out, candidate)
		if len(out) == relatedLimit {
			break
		}
	}
	return out, nil
}

// Search fetches the full catalog and filters by case-insensitive substring
// match on name/description. Cost is linear in collection size; the catalog
// is small enough that no indexed query is worth it.
func (uc *CatalogUsecase) Search(ctx context.Context, term string) ([]productdom.Product, error) {
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return all, nil
	}

	out := make([]productdom.Product, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Create validates the form fields and inserts a new product.
// On any validation error no store call is made.
func (uc *CatalogUsecase) Create(ctx context.Context, in ProductInput) (*productdom.Product, error) {
	c, err := productdom.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	p, err := productdom.New("", in.Name, c, in.Price, in.Stock, in.Description, in.Details, now)
	if err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, p)
}

// Update loads the product, applies the form fields and saves it back.
// createdAt survives; updatedAt is bumped. Validation errors write nothing.
func (uc *CatalogUsecase) Update(ctx context.Context, id string, in ProductInput) (*productdom.Product, error) {
	c, err := productdom.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}

	p, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := p.Apply(in.Name, c, in.Price, in.Stock, in.Description, in.Details, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AttachImage uploads an image for an existing product and records the
// public URL on the document.
func (uc *CatalogUsecase) AttachImage(ctx context.Context, id, fileName, contentType string, body io.Reader) (*productdom.Product, error) {
	if uc.images == nil {
		return nil, ErrCatalogNoImageStore
	}
	if strings.TrimSpace(fileName) == "" || body == nil {
		return nil, ErrCatalogInvalidArgument
	}

	p, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := uc.images.Upload(ctx, p.ID, fileName, contentType, body)
	if err != nil {
		return nil, err
	}

	p.SetImage(url, uc.clock.Now())
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the product unconditionally. Orders and cart lines keep
// their dangling reference and render a placeholder from then on.
// A stored image is cleaned up best-effort before the doc goes away.
func (uc *CatalogUsecase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrCatalogInvalidArgument
	}

	if uc.images != nil {
		if p, err := uc.repo.GetByID(ctx, id); err == nil && p.ImageURL != "" {
			if fn := path.Base(p.ImageURL); fn != "" && fn != "." {
				if err := uc.images.Delete(ctx, id, fn); err != nil {
					log.Printf("[CatalogUsecase] image cleanup failed for %s: %v", id, err)
				}
			}
		}
	}

	return uc.repo.Delete(ctx, id)
}
