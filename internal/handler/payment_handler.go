package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/MagnetoUSP/PixV3/config"
	"github.com/MagnetoUSP/PixV3/internal/domain"
	"github.com/MagnetoUSP/PixV3/internal/repository"
	"github.com/MagnetoUSP/PixV3/pkg/pix"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cfg      *config.Config
	store    repository.StatusStore
	provider pix.Provider
}

// NewPaymentHandler wires the two adapters. provider may be nil when no
// access token is configured; create then fails with a diagnostic error.
func NewPaymentHandler(cfg *config.Config, store repository.StatusStore, provider pix.Provider) *PaymentHandler {
	return &PaymentHandler{cfg: cfg, store: store, provider: provider}
}

func (h *PaymentHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API de Pagamentos PIX está funcionando!"})
}

// CreatePayment opens a PIX charge with the provider and seeds the status
// store with "pending". A store failure must not fail the request: the
// provider remains queryable as the source of truth.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req struct {
		Amount      float64 `json:"amount" binding:"required,gt=0"`
		Description string  `json:"description" binding:"required"`
		PayerEmail  string  `json:"payer_email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if h.provider == nil {
		respondError(c, domain.ConfigurationMissing("payment provider unavailable: PAYMENT_PROVIDER_ACCESS_TOKEN not configured"))
		return
	}
	if req.PayerEmail == "" {
		req.PayerEmail = domain.DefaultPayerEmail
	}

	payment, err := h.provider.CreatePixPayment(c.Request.Context(), pix.CreateRequest{
		Amount:          req.Amount,
		Description:     req.Description,
		PayerEmail:      req.PayerEmail,
		NotificationURL: h.cfg.MercadoPago.NotificationTarget(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.store.Set(c.Request.Context(), payment.ID, domain.StatusPending); err != nil {
		log.Printf("[STORE] set %s=%s failed: %v", payment.ID, domain.StatusPending, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"payment_id":         payment.ID,
		"status":             domain.StatusPending,
		"qr_code_copy_paste": payment.QRCode,
	})
}

// GetPaymentStatus serves the stored status only; it never re-queries the
// provider. Webhooks keep the store current.
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	paymentID := c.Param("payment_id")
	status, found, err := h.store.Get(c.Request.Context(), paymentID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondError(c, domain.NotFound("payment not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_id": paymentID, "status": status})
}

// respondError maps the error taxonomy to HTTP statuses. Anything outside
// the taxonomy is an unexpected failure and surfaces as a 500 with its text.
func respondError(c *gin.Context, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		switch de.Kind {
		case domain.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"detail": de.Detail})
		case domain.KindUpstreamIncomplete:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": de.Detail, "upstream": de.Payload})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": de.Detail})
		}
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}
