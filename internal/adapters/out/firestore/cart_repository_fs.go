// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	cartdom "github.com/Fizxxc/digital-store/internal/domain/cart"
)

const cartsCollection = "carts"

// CartRepositoryFS implements cart.Repository using Firestore.
//
// Collection design:
// - collection: carts
// - docId: auto id (one document per add-to-cart click)
// - fields: userId, productId, quantity, createdAt
//
// The adapter exposes no update or delete: the collection is append-only.
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(cartsCollection)
}

type cartDoc struct {
	UserID    string    `firestore:"userId"`
	ProductID string    `firestore:"productId"`
	Quantity  int64     `firestore:"quantity"`
	CreatedAt time.Time `firestore:"createdAt"`
}

func docToLine(snap *firestore.DocumentSnapshot) (*cartdom.Line, error) {
	var d cartDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	return &cartdom.Line{
		ID:        snap.Ref.ID,
		UserID:    d.UserID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		CreatedAt: d.CreatedAt,
	}, nil
}

func (r *CartRepositoryFS) Append(ctx context.Context, l *cartdom.Line) (*cartdom.Line, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}
	if l == nil {
		return nil, errors.New("cart_repository_fs: line is nil")
	}

	docRef := r.col().NewDoc()
	l.ID = docRef.ID

	_, err := docRef.Create(ctx, cartDoc{
		UserID:    l.UserID,
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
		CreatedAt: l.CreatedAt,
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *CartRepositoryFS) ListByUserID(ctx context.Context, userID string) ([]cartdom.Line, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}
	if userID == "" {
		return nil, errors.New("cart_repository_fs: userID is empty")
	}

	it := r.col().
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer it.Stop()

	var out []cartdom.Line
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		l, err := docToLine(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, nil
}
