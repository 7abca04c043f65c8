package pix

import (
	"context"
	"log"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/MagnetoUSP/PixV3/internal/domain"
)

// paymentAPI is the slice of the Mercado Pago payment client this adapter
// actually uses; narrowed so tests can fake it.
type paymentAPI interface {
	Create(ctx context.Context, request mppayment.Request) (*mppayment.Response, error)
	Get(ctx context.Context, id int) (*mppayment.Response, error)
}

// MercadoPagoProvider implements PIX charges via the official Mercado Pago SDK.
type MercadoPagoProvider struct {
	payments paymentAPI
}

func NewMercadoPagoProvider(accessToken string) (*MercadoPagoProvider, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPagoProvider{payments: mppayment.NewClient(cfg)}, nil
}

func (p *MercadoPagoProvider) CreatePixPayment(ctx context.Context, req CreateRequest) (*Payment, error) {
	res, err := p.payments.Create(ctx, mppayment.Request{
		TransactionAmount: req.Amount,
		PaymentMethodID:   "pix",
		Description:       req.Description,
		Payer:             &mppayment.PayerRequest{Email: req.PayerEmail},
		NotificationURL:   req.NotificationURL,
	})
	if err != nil {
		return nil, err
	}
	var id string
	if res.ID != 0 {
		id = strconv.Itoa(res.ID)
	}
	qr := res.PointOfInteraction.TransactionData.QRCode
	if id == "" || qr == "" {
		// Surface the raw response instead of nil-dereferencing into it.
		return nil, domain.UpstreamIncomplete("provider response missing payment id or qr_code", res)
	}
	log.Printf("[MP] created pix payment id=%s", id)
	return &Payment{ID: id, QRCode: qr}, nil
}

func (p *MercadoPagoProvider) GetPaymentStatus(ctx context.Context, id string) string {
	numeric, err := strconv.Atoi(id)
	if err != nil {
		log.Printf("[MP] non-numeric payment id %q", id)
		return domain.StatusUnknown
	}
	res, err := p.payments.Get(ctx, numeric)
	if err != nil {
		log.Printf("[MP] get payment %s: %v", id, err)
		return domain.StatusUnknown
	}
	if res.Status == "" {
		return domain.StatusUnknown
	}
	return res.Status
}
