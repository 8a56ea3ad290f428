package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fizxxc/digital-store/internal/application/usecase"
	userdom "github.com/Fizxxc/digital-store/internal/domain/user"
)

type fakeAccounts struct {
	uid   string
	err   error
	calls int
}

func (a *fakeAccounts) CreateAccount(_ context.Context, _, _, _ string) (string, error) {
	a.calls++
	if a.err != nil {
		return "", a.err
	}
	return a.uid, nil
}

func TestSessionFor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := newFakeUserRepo(
		seedUser("admin-1", "Siti", "siti@example.com", userdom.RoleAdmin),
		seedUser("user-1", "Budi", "budi@example.com", userdom.RoleUser),
	)
	uc := usecase.NewAuthUsecaseWithClock(&fakeAccounts{}, users, fakeClock{testNow})

	t.Run("admin profile", func(t *testing.T) {
		t.Parallel()

		s := uc.SessionFor(ctx, usecase.Identity{UID: "admin-1", Email: "siti@example.com"})
		assert.True(t, s.Admin)
		assert.Equal(t, userdom.RoleAdmin, s.Role)
		assert.Equal(t, "Siti", s.Name)
	})

	t.Run("plain user", func(t *testing.T) {
		t.Parallel()

		s := uc.SessionFor(ctx, usecase.Identity{UID: "user-1"})
		assert.False(t, s.Admin)
		assert.Equal(t, "budi@example.com", s.Email) // backfilled from the profile
	})

	t.Run("missing profile degrades to non-admin", func(t *testing.T) {
		t.Parallel()

		s := uc.SessionFor(ctx, usecase.Identity{UID: "ghost", Email: "g@example.com"})
		assert.False(t, s.Admin)
		assert.Equal(t, userdom.RoleUser, s.Role)
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	valid := usecase.RegisterInput{
		Name:            "Budi",
		Email:           "budi@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}

	t.Run("creates identity then profile with role user", func(t *testing.T) {
		t.Parallel()

		accounts := &fakeAccounts{uid: "new-uid"}
		users := newFakeUserRepo()
		uc := usecase.NewAuthUsecaseWithClock(accounts, users, fakeClock{testNow})

		u, err := uc.Register(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, "new-uid", u.ID)
		assert.Equal(t, userdom.RoleUser, u.Role)
		assert.Equal(t, testNow, u.CreatedAt)

		stored, err := users.GetByID(ctx, "new-uid")
		require.NoError(t, err)
		assert.Equal(t, "budi@example.com", stored.Email)
	})

	t.Run("local validation happens before the provider call", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name   string
			mutate func(*usecase.RegisterInput)
			want   error
		}{
			{"password mismatch", func(in *usecase.RegisterInput) { in.ConfirmPassword = "other1" }, usecase.ErrAuthPasswordMismatch},
			{"password too short", func(in *usecase.RegisterInput) { in.Password, in.ConfirmPassword = "abc", "abc" }, usecase.ErrAuthPasswordTooShort},
			{"empty name", func(in *usecase.RegisterInput) { in.Name = " " }, usecase.ErrAuthInvalidArgument},
			{"empty email", func(in *usecase.RegisterInput) { in.Email = "" }, usecase.ErrAuthInvalidArgument},
		}
		for _, tc := range cases {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				accounts := &fakeAccounts{uid: "x"}
				uc := usecase.NewAuthUsecaseWithClock(accounts, newFakeUserRepo(), fakeClock{testNow})

				in := valid
				tc.mutate(&in)
				_, err := uc.Register(ctx, in)
				assert.ErrorIs(t, err, tc.want)
				assert.Zero(t, accounts.calls)
			})
		}
	})

	t.Run("provider errors pass through", func(t *testing.T) {
		t.Parallel()

		accounts := &fakeAccounts{err: usecase.ErrAuthEmailAlreadyInUse}
		users := newFakeUserRepo()
		uc := usecase.NewAuthUsecaseWithClock(accounts, users, fakeClock{testNow})

		_, err := uc.Register(ctx, valid)
		assert.ErrorIs(t, err, usecase.ErrAuthEmailAlreadyInUse)
		assert.Zero(t, users.writes)
	})
}

func TestCapabilitiesFor(t *testing.T) {
	t.Parallel()

	admin := usecase.CapabilitiesFor(userdom.RoleAdmin)
	assert.True(t, admin.Admin())

	plain := usecase.CapabilitiesFor(userdom.RoleUser)
	assert.False(t, plain.Admin())
	assert.False(t, plain.ManageUsers)
}
