// internal/adapters/out/mail/order_status_mailer.go
package mail

import (
	"context"
	"fmt"
	"strings"

	usecase "github.com/Fizxxc/digital-store/internal/application/usecase"
	orderdom "github.com/Fizxxc/digital-store/internal/domain/order"
)

// OrderStatusMailer implements usecase.StatusNotifier with an EmailClient.
// The storefront's audience is Indonesian, so the copy follows suit.
type OrderStatusMailer struct {
	client      EmailClient
	fromAddress string
}

func NewOrderStatusMailer(client EmailClient, fromAddress string) *OrderStatusMailer {
	return &OrderStatusMailer{
		client:      client,
		fromAddress: strings.TrimSpace(fromAddress),
	}
}

func statusLabel(s orderdom.Status) string {
	switch s {
	case orderdom.StatusPending:
		return "Menunggu"
	case orderdom.StatusCompleted:
		return "Selesai"
	case orderdom.StatusCancelled:
		return "Dibatalkan"
	default:
		return string(s)
	}
}

func (m *OrderStatusMailer) NotifyStatusChange(ctx context.Context, o usecase.ResolvedOrder, email string) error {
	subject := fmt.Sprintf("[Digital Store] Status pesanan %s: %s", o.ID, statusLabel(o.Status))

	body := fmt.Sprintf(
		`Halo %s,

Status pesanan Anda telah diperbarui.

  Pesanan : %s
  Produk  : %s
  Total   : Rp %d
  Status  : %s

Terima kasih telah berbelanja di Digital Store.

--
Digital Store`,
		strings.TrimSpace(o.UserName),
		o.ID,
		o.ProductName,
		o.Total,
		statusLabel(o.Status),
	)

	return m.client.Send(ctx, m.fromAddress, strings.TrimSpace(email), subject, body)
}
