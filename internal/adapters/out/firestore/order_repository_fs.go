// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	orderdom "github.com/Fizxxc/digital-store/internal/domain/order"
)

const ordersCollection = "orders"

// OrderRepositoryFS implements order.Repository using Firestore.
//
// Collection design:
// - collection: orders
// - docId: auto id
// - fields: productId, userId, total, status, createdAt, updatedAt
//
// productId/userId are plain string references; the store does not enforce
// them, so reads may point at deleted documents.
type OrderRepositoryFS struct {
	Client *firestore.Client
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client}
}

func (r *OrderRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(ordersCollection)
}

type orderDoc struct {
	ProductID string    `firestore:"productId"`
	UserID    string    `firestore:"userId"`
	Total     int64     `firestore:"total"`
	Status    string    `firestore:"status"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

func orderToDoc(o *orderdom.Order) orderDoc {
	return orderDoc{
		ProductID: o.ProductID,
		UserID:    o.UserID,
		Total:     o.Total,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func docToOrder(snap *firestore.DocumentSnapshot) (*orderdom.Order, error) {
	var d orderDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	return &orderdom.Order{
		ID:        snap.Ref.ID,
		ProductID: d.ProductID,
		UserID:    d.UserID,
		Total:     d.Total,
		Status:    orderdom.Status(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func (r *OrderRepositoryFS) GetByID(ctx context.Context, id string) (*orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}
	if id == "" {
		return nil, orderdom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, orderdom.ErrNotFound
		}
		return nil, err
	}
	return docToOrder(snap)
}

// ListAll returns every order, createdAt descending. Doc id breaks ties so
// the order is deterministic.
func (r *OrderRepositoryFS) ListAll(ctx context.Context) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}
	q := r.col().
		OrderBy("createdAt", firestore.Desc).
		OrderBy(firestore.DocumentID, firestore.Desc)
	return collectOrders(q.Documents(ctx))
}

func (r *OrderRepositoryFS) ListRecent(ctx context.Context, limit int) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}
	if limit <= 0 {
		return nil, errors.New("order_repository_fs: limit must be positive")
	}
	q := r.col().
		OrderBy("createdAt", firestore.Desc).
		OrderBy(firestore.DocumentID, firestore.Desc).
		Limit(limit)
	return collectOrders(q.Documents(ctx))
}

func (r *OrderRepositoryFS) Create(ctx context.Context, o *orderdom.Order) (*orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}
	if o == nil {
		return nil, errors.New("order_repository_fs: order is nil")
	}

	var docRef *firestore.DocumentRef
	if o.ID == "" {
		docRef = r.col().NewDoc()
		o.ID = docRef.ID
	} else {
		docRef = r.col().Doc(o.ID)
	}

	if _, err := docRef.Create(ctx, orderToDoc(o)); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepositoryFS) Save(ctx context.Context, o *orderdom.Order) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}
	if o == nil || o.ID == "" {
		return errors.New("order_repository_fs: Save requires order.ID as docId")
	}

	_, err := r.col().Doc(o.ID).Set(ctx, orderToDoc(o))
	return err
}

func (r *OrderRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}
	if id == "" {
		return errors.New("order_repository_fs: id is empty")
	}

	_, err := r.col().Doc(id).Delete(ctx)
	return err
}

func collectOrders(it *firestore.DocumentIterator) ([]orderdom.Order, error) {
	defer it.Stop()

	var out []orderdom.Order
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		o, err := docToOrder(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, nil
}
