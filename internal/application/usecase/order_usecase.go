// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	orderdom "github.com/Fizxxc/digital-store/internal/domain/order"
	productdom "github.com/Fizxxc/digital-store/internal/domain/product"
	userdom "github.com/Fizxxc/digital-store/internal/domain/user"
)

var (
	ErrOrderInvalidArgument   = errors.New("order_usecase: invalid argument")
	ErrOrderInsufficientStock = errors.New("order_usecase: insufficient stock")
)

// Placeholder strings shown when an order references a deleted document.
// These are the exact strings the web UI renders.
const (
	PlaceholderDeletedProduct = "Produk dihapus"
	PlaceholderDeletedUser    = "Pengguna dihapus"
)

// defaultRecentLimit matches the dashboard's "recent orders" table.
const defaultRecentLimit = 5

// resolveConcurrency bounds parallel reference lookups when resolving lists.
const resolveConcurrency = 4

// ResolvedOrder is an order joined with the display names of its references.
// A dangling reference becomes a placeholder, never an error.
type ResolvedOrder struct {
	orderdom.Order
	ProductName string `json:"productName"`
	UserName    string `json:"userName"`
}

// StatusNotifier is an optional outbound port; a nil notifier disables mail.
type StatusNotifier interface {
	NotifyStatusChange(ctx context.Context, o ResolvedOrder, email string) error
}

// OrderUsecase coordinates order reads, status updates and placement.
type OrderUsecase struct {
	orders   orderdom.Repository
	products productdom.Repository
	users    userdom.Repository
	notifier StatusNotifier
	clock    Clock
}

func NewOrderUsecase(orders orderdom.Repository, products productdom.Repository, users userdom.Repository, notifier StatusNotifier) *OrderUsecase {
	return &OrderUsecase{
		orders:   orders,
		products: products,
		users:    users,
		notifier: notifier,
		clock:    systemClock{},
	}
}

// NewOrderUsecaseWithClock is useful for tests.
func NewOrderUsecaseWithClock(orders orderdom.Repository, products productdom.Repository, users userdom.Repository, notifier StatusNotifier, clock Clock) *OrderUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &OrderUsecase{orders: orders, products: products, users: users, notifier: notifier, clock: clock}
}

// GetByID returns the order with its references resolved.
func (uc *OrderUsecase) GetByID(ctx context.Context, id string) (*ResolvedOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrOrderInvalidArgument
	}

	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resolved, err := uc.resolve(ctx, *o)
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}

// ListAll returns every order, newest first, references resolved.
func (uc *OrderUsecase) ListAll(ctx context.Context) ([]ResolvedOrder, error) {
	all, err := uc.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.resolveMany(ctx, all)
}

// ListRecent returns the newest orders, references resolved.
// limit <= 0 falls back to the dashboard default of 5.
func (uc *OrderUsecase) ListRecent(ctx context.Context, limit int) ([]ResolvedOrder, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	recent, err := uc.orders.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return uc.resolveMany(ctx, recent)
}

// Search fetches every order and filters by case-insensitive substring match
// on order id, resolved product name, or resolved user name.
func (uc *OrderUsecase) Search(ctx context.Context, term string) ([]ResolvedOrder, error) {
	all, err := uc.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return all, nil
	}

	out := make([]ResolvedOrder, 0, len(all))
	for _, o := range all {
		if strings.Contains(strings.ToLower(o.ID), term) ||
			strings.Contains(strings.ToLower(o.ProductName), term) ||
			strings.Contains(strings.ToLower(o.UserName), term) {
			out = append(out, o)
		}
	}
	return out, nil
}

// Place creates a pending order for qty units of a product.
// Same availability rules as the cart: finite stock must cover qty and the
// caller must be signed in. Stock is NOT decremented here.
func (uc *OrderUsecase) Place(ctx context.Context, userID, productID string, qty int64) (*ResolvedOrder, error) {
	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(productID)
	if uid == "" || pid == "" {
		return nil, ErrOrderInvalidArgument
	}
	if qty <= 0 {
		return nil, ErrOrderInvalidArgument
	}

	p, err := uc.products.GetByID(ctx, pid)
	if err != nil {
		return nil, err
	}
	if !p.HasStockFor(qty) {
		return nil, ErrOrderInsufficientStock
	}

	o, err := orderdom.New("", pid, uid, p.Price*qty, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	created, err := uc.orders.Create(ctx, o)
	if err != nil {
		return nil, err
	}

	resolved, err := uc.resolve(ctx, *created)
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}

// SetStatus transitions an order to one of pending/completed/cancelled.
// Unknown values are rejected before any store call, so the stored status
// stays unchanged. On success the user is notified by mail (best-effort).
func (uc *OrderUsecase) SetStatus(ctx context.Context, id, rawStatus string) (*ResolvedOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrOrderInvalidArgument
	}

	st, err := orderdom.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := o.SetStatus(st, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	resolved, err := uc.resolve(ctx, *o)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, resolved)
	return &resolved, nil
}

// Delete removes the order unconditionally, no cascade.
func (uc *OrderUsecase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrOrderInvalidArgument
	}
	return uc.orders.Delete(ctx, id)
}

// resolve looks up the order's product and user concurrently and joins them.
// An absent reference yields the fixed placeholder string.
func (uc *OrderUsecase) resolve(ctx context.Context, o orderdom.Order) (ResolvedOrder, error) {
	out := ResolvedOrder{
		Order:       o,
		ProductName: PlaceholderDeletedProduct,
		UserName:    PlaceholderDeletedUser,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := uc.products.GetByID(gctx, o.ProductID)
		if err != nil {
			if errors.Is(err, productdom.ErrNotFound) {
				return nil
			}
			return err
		}
		out.ProductName = p.Name
		return nil
	})

	g.Go(func() error {
		u, err := uc.users.GetByID(gctx, o.UserID)
		if err != nil {
			if errors.Is(err, userdom.ErrNotFound) {
				return nil
			}
			return err
		}
		out.UserName = u.Name
		return nil
	})

	if err := g.Wait(); err != nil {
		return ResolvedOrder{}, err
	}
	return out, nil
}

func (uc *OrderUsecase) resolveMany(ctx context.Context, orders []orderdom.Order) ([]ResolvedOrder, error) {
	out := make([]ResolvedOrder, len(orders))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)
	for i, o := range orders {
		i, o := i, o
		g.Go(func() error {
			r, err := uc.resolve(gctx, o)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// notify mails the order's user about the new status. Failures are logged
// and swallowed: mail never blocks a status change.
func (uc *OrderUsecase) notify(ctx context.Context, o ResolvedOrder) {
	if uc.notifier == nil {
		return
	}

	u, err := uc.users.GetByID(ctx, o.UserID)
	if err != nil {
		log.Printf("[OrderUsecase] skip status mail order=%s: user lookup failed: %v", o.ID, err)
		return
	}
	if err := uc.notifier.NotifyStatusChange(ctx, o, u.Email); err != nil {
		log.Printf("[OrderUsecase] status mail failed order=%s to=%s: %v", o.ID, u.Email, err)
	}
}
