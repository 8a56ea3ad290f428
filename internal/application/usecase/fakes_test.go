package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	cartdom "github.com/Fizxxc/digital-store/internal/domain/cart"
	orderdom "github.com/Fizxxc/digital-store/internal/domain/order"
	productdom "github.com/Fizxxc/digital-store/internal/domain/product"
	userdom "github.com/Fizxxc/digital-store/internal/domain/user"
)

// In-memory fakes behind the domain ports. Write counters let tests assert
// that rejected operations never reached the store.

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// ---- products ----

type fakeProductRepo struct {
	mu     sync.Mutex
	byID   map[string]productdom.Product
	seq    int
	writes int
}

func newFakeProductRepo(seed ...productdom.Product) *fakeProductRepo {
	r := &fakeProductRepo{byID: map[string]productdom.Product{}}
	for _, p := range seed {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, productdom.ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (r *fakeProductRepo) ListAll(context.Context) ([]productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]productdom.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(ctx context.Context, c productdom.Category) ([]productdom.Product, error) {
	all, _ := r.ListAll(ctx)
	out := make([]productdom.Product, 0, len(all))
	for _, p := range all {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Create(_ context.Context, p *productdom.Product) (*productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if p.ID == "" {
		r.seq++
		p.ID = fmt.Sprintf("prod-%d", r.seq)
	}
	r.byID[p.ID] = *p
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Save(_ context.Context, p *productdom.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	r.byID[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	delete(r.byID, id)
	return nil
}

// ---- orders ----

type fakeOrderRepo struct {
	mu     sync.Mutex
	byID   map[string]orderdom.Order
	seq    int
	writes int
}

func newFakeOrderRepo(seed ...orderdom.Order) *fakeOrderRepo {
	r := &fakeOrderRepo{byID: map[string]orderdom.Order{}}
	for _, o := range seed {
		r.byID[o.ID] = o
	}
	return r
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.byID[id]
	if !ok {
		return nil, orderdom.ErrNotFound
	}
	cp := o
	return &cp, nil
}

func (r *fakeOrderRepo) ListAll(context.Context) ([]orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]orderdom.Order, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeOrderRepo) ListRecent(ctx context.Context, limit int) ([]orderdom.Order, error) {
	all, _ := r.ListAll(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeOrderRepo) Create(_ context.Context, o *orderdom.Order) (*orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if o.ID == "" {
		r.seq++
		o.ID = fmt.Sprintf("order-%d", r.seq)
	}
	r.byID[o.ID] = *o
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) Save(_ context.Context, o *orderdom.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	r.byID[o.ID] = *o
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	delete(r.byID, id)
	return nil
}

// ---- cart ----

type fakeCartRepo struct {
	mu    sync.Mutex
	lines []cartdom.Line
	seq   int
}

func (r *fakeCartRepo) Append(_ context.Context, l *cartdom.Line) (*cartdom.Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	l.ID = fmt.Sprintf("line-%d", r.seq)
	r.lines = append(r.lines, *l)
	cp := *l
	return &cp, nil
}

func (r *fakeCartRepo) ListByUserID(_ context.Context, userID string) ([]cartdom.Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]cartdom.Line, 0, len(r.lines))
	for _, l := range r.lines {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ---- users ----

type fakeUserRepo struct {
	mu     sync.Mutex
	byID   map[string]userdom.User
	writes int
}

func newFakeUserRepo(seed ...userdom.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: map[string]userdom.User{}}
	for _, u := range seed {
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*userdom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, userdom.ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (r *fakeUserRepo) ListAll(context.Context) ([]userdom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]userdom.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *userdom.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	r.byID[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) Save(_ context.Context, u *userdom.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	r.byID[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	delete(r.byID, id)
	return nil
}

// ---- test fixtures ----

func seedProduct(id, name string, category productdom.Category, price, stock int64) productdom.Product {
	return productdom.Product{
		ID:          id,
		Name:        name,
		Category:    category,
		Price:       price,
		Stock:       stock,
		Description: "desc",
		Details:     []string{"f1"},
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
}

func seedUser(id, name, email string, role userdom.Role) userdom.User {
	return userdom.User{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

func seedOrder(id, productID, userID string, total int64, status orderdom.Status, createdAt time.Time) orderdom.Order {
	return orderdom.Order{
		ID:        id,
		ProductID: productID,
		UserID:    userID,
		Total:     total,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}
