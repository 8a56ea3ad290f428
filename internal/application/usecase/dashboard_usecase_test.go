package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fizxxc/digital-store/internal/application/usecase"
	orderdom "github.com/Fizxxc/digital-store/internal/domain/order"
	productdom "github.com/Fizxxc/digital-store/internal/domain/product"
	userdom "github.com/Fizxxc/digital-store/internal/domain/user"
)

func TestDashboardSummary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	products := newFakeProductRepo(
		seedProduct("p1", "App A", productdom.CategoryApp, 10000, 5),
		seedProduct("p2", "Svc", productdom.CategoryService, 500, -1),
	)
	users := newFakeUserRepo(seedUser("u1", "Budi", "budi@example.com", userdom.RoleAdmin))

	var seed []orderdom.Order
	for i := 0; i < 7; i++ {
		seed = append(seed, seedOrder(
			"o"+string(rune('0'+i)), "p1", "u1", int64(1000*(i+1)),
			orderdom.StatusPending, testNow.Add(time.Duration(i)*time.Minute)))
	}
	orders := newFakeOrderRepo(seed...)

	orderUC := usecase.NewOrderUsecaseWithClock(orders, products, users, nil, fakeClock{testNow})
	uc := usecase.NewDashboardUsecase(users, products, orderUC)

	s, err := uc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalUsers)
	assert.Equal(t, 2, s.TotalProducts)
	assert.Equal(t, 7, s.TotalOrders)
	assert.Equal(t, int64(1000+2000+3000+4000+5000+6000+7000), s.TotalRevenue)

	// Recent orders: newest five, references resolved.
	require.Len(t, s.RecentOrders, 5)
	assert.Equal(t, "o6", s.RecentOrders[0].ID)
	assert.Equal(t, "App A", s.RecentOrders[0].ProductName)
	assert.Equal(t, "Budi", s.RecentOrders[0].UserName)
}
