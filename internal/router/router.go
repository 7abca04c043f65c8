package router

import (
	"github.com/MagnetoUSP/PixV3/config"
	"github.com/MagnetoUSP/PixV3/internal/handler"
	"github.com/MagnetoUSP/PixV3/internal/repository"
	"github.com/MagnetoUSP/PixV3/pkg/pix"

	"github.com/gin-gonic/gin"
)

func Setup(cfg *config.Config, store repository.StatusStore, provider pix.Provider) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	paymentHandler := handler.NewPaymentHandler(cfg, store, provider)
	webhookHandler := handler.NewWebhookHandler(store, provider)

	r.GET("/hello", paymentHandler.Hello)
	r.POST("/create_payment", paymentHandler.CreatePayment)
	r.GET("/payment_status/:payment_id", paymentHandler.GetPaymentStatus)
	r.POST("/webhook/mercadopago", webhookHandler.Handle)

	return r
}
