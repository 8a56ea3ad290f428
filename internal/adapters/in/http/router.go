// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"github.com/Fizxxc/digital-store/internal/adapters/in/http/handlers"
	"github.com/Fizxxc/digital-store/internal/adapters/in/http/middleware"
	usecase "github.com/Fizxxc/digital-store/internal/application/usecase"
)

// RouterDeps collects the usecases (and other dependencies) injected from main.go.
type RouterDeps struct {
	CatalogUC   *usecase.CatalogUsecase
	OrderUC     *usecase.OrderUsecase
	CartUC      *usecase.CartUsecase
	UserUC      *usecase.UserUsecase
	DashboardUC *usecase.DashboardUsecase
	AuthUC      *usecase.AuthUsecase

	Auth          *middleware.Authenticator
	AllowedOrigin string
}

// mount registers a handler for both "/path" and "/path/".
func mount(mux *http.ServeMux, path string, h http.Handler) {
	mux.Handle(path, h)
	mux.Handle(path+"/", h)
}

func healthz(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

// chain applies CORS > Recover > auth, outermost first, so a panicking
// handler still answers with CORS headers intact.
func chain(allowedOrigin string, auth func(http.Handler) http.Handler, mux *http.ServeMux) http.Handler {
	var h http.Handler = mux
	if auth != nil {
		h = auth(h)
	}
	h = middleware.Recover(h)
	return middleware.CORS(allowedOrigin)(h)
}

// NewStoreRouter wires the public storefront. Authentication is optional:
// reads stay anonymous, cart and order placement require a bearer token
// checked downstream.
func NewStoreRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()
	healthz(mux)

	if deps.CatalogUC != nil {
		mount(mux, "/products", handlers.NewProductHandler(deps.CatalogUC))
	}
	if deps.CartUC != nil {
		mount(mux, "/cart", handlers.NewCartHandler(deps.CartUC))
	}
	if deps.OrderUC != nil {
		mount(mux, "/orders", handlers.NewOrderHandler(deps.OrderUC))
	}
	if deps.AuthUC != nil {
		mount(mux, "/auth", handlers.NewAuthHandler(deps.AuthUC))
	}

	var auth func(http.Handler) http.Handler
	if deps.Auth != nil {
		auth = deps.Auth.Optional
	}
	return chain(deps.AllowedOrigin, auth, mux)
}

// NewConsoleRouter wires the admin console. Every route except /healthz and
// /auth sits behind RequireAdmin; /auth stays optional so a signed-in
// non-admin can still resolve their session and be redirected away.
func NewConsoleRouter(deps RouterDeps) http.Handler {
	admin := http.NewServeMux()

	if deps.CatalogUC != nil {
		mount(admin, "/products", handlers.NewProductHandler(deps.CatalogUC))
	}
	if deps.OrderUC != nil {
		mount(admin, "/orders", handlers.NewOrderHandler(deps.OrderUC))
	}
	if deps.UserUC != nil {
		mount(admin, "/users", handlers.NewUserHandler(deps.UserUC))
	}
	if deps.DashboardUC != nil {
		mount(admin, "/dashboard", handlers.NewDashboardHandler(deps.DashboardUC))
	}

	mux := http.NewServeMux()
	healthz(mux)

	if deps.AuthUC != nil && deps.Auth != nil {
		mount(mux, "/auth", deps.Auth.Optional(handlers.NewAuthHandler(deps.AuthUC)))
	}

	var protected http.Handler = admin
	if deps.Auth != nil {
		protected = deps.Auth.RequireAdmin(admin)
	}
	mux.Handle("/", protected)

	return chain(deps.AllowedOrigin, nil, mux)
}
