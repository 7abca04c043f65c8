package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/MagnetoUSP/PixV3/internal/domain"
	"github.com/MagnetoUSP/PixV3/internal/repository"
	"github.com/MagnetoUSP/PixV3/pkg/pix"

	"github.com/gin-gonic/gin"
)

// WebhookHandler processes Mercado Pago payment notifications,
// e.g. {"type":"payment","data":{"id":12345}}.
type WebhookHandler struct {
	store    repository.StatusStore
	provider pix.Provider
}

func NewWebhookHandler(store repository.StatusStore, provider pix.Provider) *WebhookHandler {
	return &WebhookHandler{store: store, provider: provider}
}

type webhookPayload struct {
	Type string `json:"type"`
	Data struct {
		ID any `json:"id"` // number or string, provider sends both
	} `json:"data"`
}

// Handle acknowledges every notification with 200. Rejecting with an error
// status would only trigger the provider's retry storm; a bad body is
// reported in the response body instead.
func (h *WebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "invalid_json", "detail": err.Error()})
		return
	}
	log.Printf("[WEBHOOK] raw body: %s", body)

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var payload webhookPayload
	if err := dec.Decode(&payload); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "invalid_json", "detail": err.Error()})
		return
	}
	if payload.Type != "payment" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "detail": "unsupported type"})
		return
	}
	paymentID := textID(payload.Data.ID)
	if paymentID == "" {
		c.JSON(http.StatusOK, gin.H{"status": "no_id"})
		return
	}

	// The payload may embed a status of its own; the provider is the source
	// of truth, so the authoritative status is re-fetched.
	status := domain.StatusUnknown
	if h.provider != nil {
		status = h.provider.GetPaymentStatus(c.Request.Context(), paymentID)
	}
	if err := h.store.Set(c.Request.Context(), paymentID, status); err != nil {
		// Polling still works against the provider, so swallow and log.
		log.Printf("[STORE] set %s=%s failed: %v", paymentID, status, err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "payment_id": paymentID, "new_status": status})
}

func textID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	}
	return ""
}
