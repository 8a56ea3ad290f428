// internal/platform/di/container.go
package di

import (
	"context"
	"log"

	httpin "github.com/Fizxxc/digital-store/internal/adapters/in/http"
	"github.com/Fizxxc/digital-store/internal/adapters/in/http/middleware"
	"github.com/Fizxxc/digital-store/internal/adapters/out/fbauth"
	fsrepo "github.com/Fizxxc/digital-store/internal/adapters/out/firestore"
	gcsstore "github.com/Fizxxc/digital-store/internal/adapters/out/gcs"
	"github.com/Fizxxc/digital-store/internal/adapters/out/mail"
	usecase "github.com/Fizxxc/digital-store/internal/application/usecase"
)

// Container wires repositories, usecases and router deps on top of Infra.
// Both services share the same wiring; the routers decide what is exposed.
type Container struct {
	Infra *Infra

	CatalogUC   *usecase.CatalogUsecase
	OrderUC     *usecase.OrderUsecase
	CartUC      *usecase.CartUsecase
	UserUC      *usecase.UserUsecase
	DashboardUC *usecase.DashboardUsecase
	AuthUC      *usecase.AuthUsecase

	Auth *middleware.Authenticator
}

func NewContainer(ctx context.Context) (*Container, error) {
	inf, err := NewInfra(ctx)
	if err != nil {
		return nil, err
	}

	c := &Container{Infra: inf}

	products := fsrepo.NewProductRepositoryFS(inf.Firestore.Client)
	orders := fsrepo.NewOrderRepositoryFS(inf.Firestore.Client)
	carts := fsrepo.NewCartRepositoryFS(inf.Firestore.Client)
	users := fsrepo.NewUserRepositoryFS(inf.Firestore.Client)

	// Optional image store: nil when GCS or the bucket is unavailable.
	var images usecase.ImageStore
	if inf.GCS != nil && inf.ProductImageBucket != "" {
		images = gcsstore.NewProductImageStoreGCS(inf.GCS, inf.ProductImageBucket)
	}

	// Optional status mail: nil notifier disables it in the usecase.
	var notifier usecase.StatusNotifier
	if inf.SendGridAPIKey != "" {
		client := mail.NewSendGridClient(inf.SendGridAPIKey)
		notifier = mail.NewOrderStatusMailer(client, inf.MailFromAddress)
		log.Printf("[di.container] order status mailer initialized from=%s", inf.MailFromAddress)
	}

	// Account provisioning needs Firebase Auth; without it registration
	// answers with a remote failure.
	var accounts usecase.AccountCreator
	if inf.FirebaseAuth != nil {
		accounts = fbauth.NewAccountCreatorFB(inf.FirebaseAuth)
	}

	c.CatalogUC = usecase.NewCatalogUsecase(products, images)
	c.OrderUC = usecase.NewOrderUsecase(orders, products, users, notifier)
	c.CartUC = usecase.NewCartUsecase(carts, products)
	c.UserUC = usecase.NewUserUsecase(users)
	c.DashboardUC = usecase.NewDashboardUsecase(users, products, c.OrderUC)
	c.AuthUC = usecase.NewAuthUsecase(accounts, users)

	c.Auth = &middleware.Authenticator{
		FirebaseAuth: inf.FirebaseAuth,
		Sessions:     c.AuthUC,
	}

	return c, nil
}

// RouterDeps converts the container into the deps the routers consume.
func (c *Container) RouterDeps() httpin.RouterDeps {
	return httpin.RouterDeps{
		CatalogUC:     c.CatalogUC,
		OrderUC:       c.OrderUC,
		CartUC:        c.CartUC,
		UserUC:        c.UserUC,
		DashboardUC:   c.DashboardUC,
		AuthUC:        c.AuthUC,
		Auth:          c.Auth,
		AllowedOrigin: c.Infra.AllowedOrigin,
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	return c.Infra.Close()
}
