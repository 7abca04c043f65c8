package pix

import (
	"context"
	"fmt"
	"time"

	"github.com/MagnetoUSP/PixV3/internal/domain"
)

// StubProvider is a deterministic in-process provider for local development.
type StubProvider struct {
	Status string // status reported by GetPaymentStatus; defaults to pending
}

func (s *StubProvider) CreatePixPayment(ctx context.Context, req CreateRequest) (*Payment, error) {
	id := fmt.Sprintf("stub_%d", time.Now().UnixNano())
	return &Payment{ID: id, QRCode: "00020126stub" + id}, nil
}

func (s *StubProvider) GetPaymentStatus(ctx context.Context, id string) string {
	if s.Status != "" {
		return s.Status
	}
	return domain.StatusPending
}
