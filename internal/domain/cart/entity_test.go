package cart_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fizxxc/digital-store/internal/domain/cart"
)

func TestNewLine(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	l, err := cart.NewLine("", "u1", "p1", 3, now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), l.Quantity)
	assert.Equal(t, now, l.CreatedAt)

	_, err = cart.NewLine("", "", "p1", 1, now)
	assert.ErrorIs(t, err, cart.ErrInvalidUserRef)

	_, err = cart.NewLine("", "u1", " ", 1, now)
	assert.ErrorIs(t, err, cart.ErrInvalidProductRef)

	for _, qty := range []int64{0, -1, -100} {
		_, err = cart.NewLine("", "u1", "p1", qty, now)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	}
}
