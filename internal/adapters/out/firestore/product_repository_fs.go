// internal/adapters/out/firestore/product_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	productdom "github.com/Fizxxc/digital-store/internal/domain/product"
)

const productsCollection = "products"

// ProductRepositoryFS implements product.Repository using Firestore.
//
// Collection design:
// - collection: products
// - docId: auto id ✅ (docId is the source of truth, never stored as a field)
// - fields: name, category, price, stock, description, details, createdAt, updatedAt
type ProductRepositoryFS struct {
	Client *firestore.Client
}

func NewProductRepositoryFS(client *firestore.Client) *ProductRepositoryFS {
	return &ProductRepositoryFS{Client: client}
}

func (r *ProductRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(productsCollection)
}

// productDoc is the stored shape; the id lives on the document ref only.
type productDoc struct {
	Name        string    `firestore:"name"`
	Category    string    `firestore:"category"`
	Price       int64     `firestore:"price"`
	Stock       int64     `firestore:"stock"`
	Description string    `firestore:"description"`
	Details     []string  `firestore:"details"`
	ImageURL    string    `firestore:"imageUrl,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

func productToDoc(p *productdom.Product) productDoc {
	return productDoc{
		Name:        p.Name,
		Category:    string(p.Category),
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		Details:     p.Details,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func docToProduct(snap *firestore.DocumentSnapshot) (*productdom.Product, error) {
	var d productDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	return &productdom.Product{
		// ✅ docId is the source of truth
		ID:          snap.Ref.ID,
		Name:        d.Name,
		Category:    productdom.Category(d.Category),
		Price:       d.Price,
		Stock:       d.Stock,
		Description: d.Description,
		Details:     d.Details,
		ImageURL:    d.ImageURL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

func (r *ProductRepositoryFS) GetByID(ctx context.Context, id string) (*productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}
	if id == "" {
		return nil, productdom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, productdom.ErrNotFound
		}
		return nil, err
	}
	return docToProduct(snap)
}

func (r *ProductRepositoryFS) ListAll(ctx context.Context) ([]productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}
	return collectProducts(r.col().Documents(ctx))
}

func (r *ProductRepositoryFS) ListByCategory(ctx context.Context, category productdom.Category) ([]productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}
	it := r.col().Where("category", "==", string(category)).Documents(ctx)
	return collectProducts(it)
}

func (r *ProductRepositoryFS) Create(ctx context.Context, p *productdom.Product) (*productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}
	if p == nil {
		return nil, errors.New("product_repository_fs: product is nil")
	}

	var docRef *firestore.DocumentRef
	if p.ID == "" {
		docRef = r.col().NewDoc()
		p.ID = docRef.ID
	} else {
		docRef = r.col().Doc(p.ID)
	}

	if _, err := docRef.Create(ctx, productToDoc(p)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, productdom.ErrConflict
		}
		return nil, err
	}
	return p, nil
}

// Save overwrites the full doc (simple & predictable).
func (r *ProductRepositoryFS) Save(ctx context.Context, p *productdom.Product) error {
	if r == nil || r.Client == nil {
		return errors.New("product_repository_fs: firestore client is nil")
	}
	if p == nil || p.ID == "" {
		return errors.New("product_repository_fs: Save requires product.ID as docId")
	}

	_, err := r.col().Doc(p.ID).Set(ctx, productToDoc(p))
	return err
}

func (r *ProductRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("product_repository_fs: firestore client is nil")
	}
	if id == "" {
		return errors.New("product_repository_fs: id is empty")
	}

	_, err := r.col().Doc(id).Delete(ctx)
	return err
}

func collectProducts(it *firestore.DocumentIterator) ([]productdom.Product, error) {
	defer it.Stop()

	var out []productdom.Product
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		p, err := docToProduct(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}
