// internal/application/usecase/user_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	userdom "github.com/Fizxxc/digital-store/internal/domain/user"
)

var (
	ErrUserInvalidArgument = errors.New("user_usecase: invalid argument")
)

// UserUsecase coordinates the console's user directory.
//
// Note: Delete carries no self-delete guard; that check lives at the
// console handler boundary.
type UserUsecase struct {
	repo  userdom.Repository
	clock Clock
}

func NewUserUsecase(repo userdom.Repository) *UserUsecase {
	return &UserUsecase{repo: repo, clock: systemClock{}}
}

// NewUserUsecaseWithClock is useful for tests.
func NewUserUsecaseWithClock(repo userdom.Repository, clock Clock) *UserUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &UserUsecase{repo: repo, clock: clock}
}

func (uc *UserUsecase) ListAll(ctx context.Context) ([]userdom.User, error) {
	return uc.repo.ListAll(ctx)
}

// GetByID returns userdom.ErrNotFound when the user is absent.
func (uc *UserUsecase) GetByID(ctx context.Context, id string) (*userdom.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrUserInvalidArgument
	}
	return uc.repo.GetByID(ctx, id)
}

// Search fetches the full directory and filters by case-insensitive
// substring match on name/email.
func (uc *UserUsecase) Search(ctx context.Context, term string) ([]userdom.User, error) {
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return all, nil
	}

	out := make([]userdom.User, 0, len(all))
	for _, u := range all {
		if strings.Contains(strings.ToLower(u.Name), term) ||
			strings.Contains(strings.ToLower(u.Email), term) {
			out = append(out, u)
		}
	}
	return out, nil
}

// Update sets the user's name and role. Empty name or an unknown role is
// rejected before any store call.
func (uc *UserUsecase) Update(ctx context.Context, id, name, rawRole string) (*userdom.User, error) {
	role, err := userdom.ParseRole(rawRole)
	if err != nil {
		return nil, err
	}

	u, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.Apply(name, role, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes the profile document unconditionally. The auth provider's
// account record is untouched (deleting it needs provider admin privileges).
func (uc *UserUsecase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrUserInvalidArgument
	}
	return uc.repo.Delete(ctx, id)
}
