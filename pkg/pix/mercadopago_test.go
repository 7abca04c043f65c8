package pix

import (
	"context"
	"errors"
	"testing"

	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/stretchr/testify/require"

	"github.com/MagnetoUSP/PixV3/internal/domain"
)

type fakePaymentAPI struct {
	createFn func(ctx context.Context, request mppayment.Request) (*mppayment.Response, error)
	getFn    func(ctx context.Context, id int) (*mppayment.Response, error)
}

func (f *fakePaymentAPI) Create(ctx context.Context, request mppayment.Request) (*mppayment.Response, error) {
	return f.createFn(ctx, request)
}

func (f *fakePaymentAPI) Get(ctx context.Context, id int) (*mppayment.Response, error) {
	return f.getFn(ctx, id)
}

func pixResponse(id int, qr string) *mppayment.Response {
	res := &mppayment.Response{ID: id, Status: "pending"}
	res.PointOfInteraction.TransactionData.QRCode = qr
	return res
}

func TestCreatePixPaymentBuildsChargeRequest(t *testing.T) {
	var got mppayment.Request
	provider := &MercadoPagoProvider{payments: &fakePaymentAPI{
		createFn: func(ctx context.Context, request mppayment.Request) (*mppayment.Response, error) {
			got = request
			return pixResponse(12345, "00020126qr-data"), nil
		},
	}}

	payment, err := provider.CreatePixPayment(context.Background(), CreateRequest{
		Amount:          10.5,
		Description:     "coffee",
		PayerEmail:      "payer@example.com",
		NotificationURL: "https://api.example.com/webhook/mercadopago",
	})
	require.NoError(t, err)
	require.Equal(t, "12345", payment.ID)
	require.Equal(t, "00020126qr-data", payment.QRCode)

	require.Equal(t, "pix", got.PaymentMethodID)
	require.Equal(t, 10.5, got.TransactionAmount)
	require.Equal(t, "coffee", got.Description)
	require.Equal(t, "payer@example.com", got.Payer.Email)
	require.Equal(t, "https://api.example.com/webhook/mercadopago", got.NotificationURL)
}

func TestCreatePixPaymentIncompleteResponse(t *testing.T) {
	provider := &MercadoPagoProvider{payments: &fakePaymentAPI{
		createFn: func(ctx context.Context, request mppayment.Request) (*mppayment.Response, error) {
			return pixResponse(12345, ""), nil // no qr_code
		},
	}}

	_, err := provider.CreatePixPayment(context.Background(), CreateRequest{Amount: 1, Description: "x"})
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	require.Equal(t, domain.KindUpstreamIncomplete, de.Kind)
	require.NotNil(t, de.Payload)
}

func TestCreatePixPaymentPropagatesSDKError(t *testing.T) {
	provider := &MercadoPagoProvider{payments: &fakePaymentAPI{
		createFn: func(ctx context.Context, request mppayment.Request) (*mppayment.Response, error) {
			return nil, errors.New("401 unauthorized")
		},
	}}

	_, err := provider.CreatePixPayment(context.Background(), CreateRequest{Amount: 1, Description: "x"})
	require.EqualError(t, err, "401 unauthorized")
}

func TestGetPaymentStatus(t *testing.T) {
	provider := &MercadoPagoProvider{payments: &fakePaymentAPI{
		getFn: func(ctx context.Context, id int) (*mppayment.Response, error) {
			require.Equal(t, 12345, id)
			return &mppayment.Response{ID: id, Status: "approved"}, nil
		},
	}}
	require.Equal(t, "approved", provider.GetPaymentStatus(context.Background(), "12345"))
}

func TestGetPaymentStatusUnknownSentinel(t *testing.T) {
	failing := &MercadoPagoProvider{payments: &fakePaymentAPI{
		getFn: func(ctx context.Context, id int) (*mppayment.Response, error) {
			return nil, errors.New("timeout")
		},
	}}
	require.Equal(t, "unknown", failing.GetPaymentStatus(context.Background(), "12345"))

	// non-numeric IDs never reach the SDK
	require.Equal(t, "unknown", failing.GetPaymentStatus(context.Background(), "not-a-number"))

	empty := &MercadoPagoProvider{payments: &fakePaymentAPI{
		getFn: func(ctx context.Context, id int) (*mppayment.Response, error) {
			return &mppayment.Response{ID: id}, nil
		},
	}}
	require.Equal(t, "unknown", empty.GetPaymentStatus(context.Background(), "12345"))
}
