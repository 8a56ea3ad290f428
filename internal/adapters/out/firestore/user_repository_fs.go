// internal/adapters/out/firestore/user_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	userdom "github.com/Fizxxc/digital-store/internal/domain/user"
)

const usersCollection = "users"

// UserRepositoryFS implements user.Repository using Firestore.
//
// Collection design:
// - collection: users
// - docId: Firebase Auth uid ✅ (docId is the source of truth)
// - fields: name, email, role, createdAt, updatedAt
type UserRepositoryFS struct {
	Client *firestore.Client
}

func NewUserRepositoryFS(client *firestore.Client) *UserRepositoryFS {
	return &UserRepositoryFS{Client: client}
}

func (r *UserRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(usersCollection)
}

type userDoc struct {
	Name      string    `firestore:"name"`
	Email     string    `firestore:"email"`
	Role      string    `firestore:"role"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

func userToDoc(u *userdom.User) userDoc {
	return userDoc{
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func docToUser(snap *firestore.DocumentSnapshot) (*userdom.User, error) {
	var d userDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}

	role := userdom.Role(d.Role)
	if !role.IsValid() {
		// Legacy docs may predate the role field; default matches registration.
		role = userdom.RoleUser
	}

	return &userdom.User{
		ID:        snap.Ref.ID,
		Name:      d.Name,
		Email:     d.Email,
		Role:      role,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func (r *UserRepositoryFS) GetByID(ctx context.Context, id string) (*userdom.User, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("user_repository_fs: firestore client is nil")
	}
	if id == "" {
		return nil, userdom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, userdom.ErrNotFound
		}
		return nil, err
	}
	return docToUser(snap)
}

func (r *UserRepositoryFS) ListAll(ctx context.Context) ([]userdom.User, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("user_repository_fs: firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	var out []userdom.User
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		u, err := docToUser(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, nil
}

// Create writes the registration document keyed by the uid.
func (r *UserRepositoryFS) Create(ctx context.Context, u *userdom.User) error {
	if r == nil || r.Client == nil {
		return errors.New("user_repository_fs: firestore client is nil")
	}
	if u == nil || u.ID == "" {
		return errors.New("user_repository_fs: Create requires user.ID (= uid) as docId")
	}

	_, err := r.col().Doc(u.ID).Create(ctx, userToDoc(u))
	return err
}

func (r *UserRepositoryFS) Save(ctx context.Context, u *userdom.User) error {
	if r == nil || r.Client == nil {
		return errors.New("user_repository_fs: firestore client is nil")
	}
	if u == nil || u.ID == "" {
		return errors.New("user_repository_fs: Save requires user.ID (= uid) as docId")
	}

	_, err := r.col().Doc(u.ID).Set(ctx, userToDoc(u))
	return err
}

func (r *UserRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("user_repository_fs: firestore client is nil")
	}
	if id == "" {
		return errors.New("user_repository_fs: id is empty")
	}

	// Only the profile document goes away; the auth provider's account
	// record needs provider admin APIs and is handled elsewhere (or not).
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}
