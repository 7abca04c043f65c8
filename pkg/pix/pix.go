package pix

import "context"

// CreateRequest describes a PIX charge to open with the provider.
type CreateRequest struct {
	Amount          float64
	Description     string
	PayerEmail      string
	NotificationURL string
}

// Payment is the normalized result of a charge creation: the
// provider-assigned ID and the copy-paste QR code payload.
type Payment struct {
	ID     string
	QRCode string
}

type Provider interface {
	CreatePixPayment(ctx context.Context, req CreateRequest) (*Payment, error)
	// GetPaymentStatus returns the provider's current status for id, or
	// "unknown" on any failure. It never returns an error: its only caller
	// sits on the best-effort webhook path.
	GetPaymentStatus(ctx context.Context, id string) string
}
