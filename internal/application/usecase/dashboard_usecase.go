// internal/application/usecase/dashboard_usecase.go
package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	productdom "github.com/Fizxxc/digital-store/internal/domain/product"
	userdom "github.com/Fizxxc/digital-store/internal/domain/user"
)

// DashboardSummary backs the console's landing section.
type DashboardSummary struct {
	TotalUsers    int             `json:"totalUsers"`
	TotalProducts int             `json:"totalProducts"`
	TotalOrders   int             `json:"totalOrders"`
	TotalRevenue  int64           `json:"totalRevenue"`
	RecentOrders  []ResolvedOrder `json:"recentOrders"`
}

// DashboardUsecase aggregates collection-wide counts for the console.
type DashboardUsecase struct {
	users    userdom.Repository
	products productdom.Repository
	orders   *OrderUsecase
}

func NewDashboardUsecase(users userdom.Repository, products productdom.Repository, orders *OrderUsecase) *DashboardUsecase {
	return &DashboardUsecase{users: users, products: products, orders: orders}
}

// Summary issues the three collection reads concurrently and joins them.
// Revenue is the sum of order totals regardless of status, matching the
// original dashboard.
func (uc *DashboardUsecase) Summary(ctx context.Context) (*DashboardSummary, error) {
	var (
		out    DashboardSummary
		orders []ResolvedOrder
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		users, err := uc.users.ListAll(gctx)
		if err != nil {
			return err
		}
		out.TotalUsers = len(users)
		return nil
	})

	g.Go(func() error {
		products, err := uc.products.ListAll(gctx)
		if err != nil {
			return err
		}
		out.TotalProducts = len(products)
		return nil
	})

	g.Go(func() error {
		var err error
		orders, err = uc.orders.ListAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.TotalOrders = len(orders)
	for _, o := range orders {
		out.TotalRevenue += o.Total
	}

	if len(orders) > defaultRecentLimit {
		orders = orders[:defaultRecentLimit]
	}
	out.RecentOrders = orders
	return &out, nil
}
