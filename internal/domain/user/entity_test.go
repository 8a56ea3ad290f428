package user_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fizxxc/digital-store/internal/domain/user"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	t.Parallel()

	u, err := user.New("uid-1", "Budi", "budi@example.com", now)
	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, u.Role)
	assert.False(t, u.IsAdmin())

	_, err = user.New("", "Budi", "budi@example.com", now)
	assert.ErrorIs(t, err, user.ErrInvalidID)

	_, err = user.New("uid-1", " ", "budi@example.com", now)
	assert.ErrorIs(t, err, user.ErrInvalidName)

	_, err = user.New("uid-1", "Budi", "", now)
	assert.ErrorIs(t, err, user.ErrInvalidEmail)
}

func TestApply(t *testing.T) {
	t.Parallel()

	u, err := user.New("uid-1", "Budi", "budi@example.com", now)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	require.NoError(t, u.Apply("Budi S", user.RoleAdmin, later))
	assert.True(t, u.IsAdmin())
	assert.Equal(t, later, u.UpdatedAt)
	assert.Equal(t, now, u.CreatedAt)

	assert.ErrorIs(t, u.Apply("", user.RoleAdmin, later), user.ErrInvalidName)
	assert.ErrorIs(t, u.Apply("Budi", "owner", later), user.ErrInvalidRole)
	// Failed apply leaves fields untouched.
	assert.Equal(t, "Budi S", u.Name)
	assert.Equal(t, user.RoleAdmin, u.Role)
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	r, err := user.ParseRole(" Admin ")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, r)

	_, err = user.ParseRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
