package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fizxxc/digital-store/internal/application/usecase"
	userdom "github.com/Fizxxc/digital-store/internal/domain/user"
)

func TestUserUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("name and role applied, email untouched", func(t *testing.T) {
		t.Parallel()

		repo := newFakeUserRepo(seedUser("u1", "Budi", "budi@example.com", userdom.RoleUser))
		later := testNow.Add(time.Hour)
		uc := usecase.NewUserUsecaseWithClock(repo, fakeClock{later})

		u, err := uc.Update(ctx, "u1", "Budi Santoso", "admin")
		require.NoError(t, err)
		assert.Equal(t, "Budi Santoso", u.Name)
		assert.Equal(t, userdom.RoleAdmin, u.Role)
		assert.Equal(t, "budi@example.com", u.Email)
		assert.Equal(t, later, u.UpdatedAt)
	})

	t.Run("rejections with zero store calls", func(t *testing.T) {
		t.Parallel()

		repo := newFakeUserRepo(seedUser("u1", "Budi", "budi@example.com", userdom.RoleUser))
		uc := usecase.NewUserUsecaseWithClock(repo, fakeClock{testNow})

		_, err := uc.Update(ctx, "u1", "Budi", "root")
		assert.ErrorIs(t, err, userdom.ErrInvalidRole)

		_, err = uc.Update(ctx, "u1", "  ", "user")
		assert.ErrorIs(t, err, userdom.ErrInvalidName)

		assert.Zero(t, repo.writes)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewUserUsecaseWithClock(newFakeUserRepo(), fakeClock{testNow})
		_, err := uc.Update(ctx, "ghost", "X", "user")
		assert.ErrorIs(t, err, userdom.ErrNotFound)
	})
}

func TestUserSearch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeUserRepo(
		seedUser("u1", "Budi", "budi@example.com", userdom.RoleUser),
		seedUser("u2", "Siti", "siti@shop.id", userdom.RoleAdmin),
	)
	uc := usecase.NewUserUsecaseWithClock(repo, fakeClock{testNow})

	byName, err := uc.Search(ctx, "BUD")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "u1", byName[0].ID)

	byEmail, err := uc.Search(ctx, "shop.id")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "u2", byEmail[0].ID)

	all, err := uc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUserDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeUserRepo(seedUser("u1", "Budi", "budi@example.com", userdom.RoleUser))
	uc := usecase.NewUserUsecaseWithClock(repo, fakeClock{testNow})

	// The access layer has no self-delete guard: any id goes through.
	// The console handler is the layer that refuses self-deletes.
	require.NoError(t, uc.Delete(ctx, "u1"))
	_, err := repo.GetByID(ctx, "u1")
	assert.ErrorIs(t, err, userdom.ErrNotFound)
}
