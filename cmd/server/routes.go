package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"pay-ledger.backend/internal/interfaces/http/handlers"
	"pay-ledger.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	walletHandler   *handlers.WalletHandler
	paystackHandler *handlers.PaystackNotificationHandler
	monnifyHandler  *handlers.MonnifyNotificationHandler
	authMiddleware  gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Wallet routes (protected)
		wallet := v1.Group("/wallet")
		wallet.Use(d.authMiddleware)
		{
			wallet.GET("", d.walletHandler.GetWallet)
			wallet.GET("/transactions", d.walletHandler.ListTransactions)
			wallet.POST("/transactions", middleware.IdempotencyMiddleware(), d.walletHandler.CreateTransaction)
		}

		// Provider webhooks (public; providers do not send bearer tokens)
		webhooks := v1.Group("/webhooks")
		{
			webhooks.POST("/paystack", d.paystackHandler.HandleWebhook)
			webhooks.POST("/monnify", d.monnifyHandler.HandleWebhook)
		}

		// Notification audit routes (protected)
		notifications := v1.Group("/notifications")
		notifications.Use(d.authMiddleware)
		{
			notifications.GET("/paystack", d.paystackHandler.ListNotifications)
			notifications.GET("/paystack/search", d.paystackHandler.SearchNotifications)
			notifications.GET("/paystack/:id", d.paystackHandler.GetNotification)

			notifications.GET("/monnify", d.monnifyHandler.ListNotifications)
			notifications.GET("/monnify/search", d.monnifyHandler.SearchNotifications)
			notifications.GET("/monnify/:id", d.monnifyHandler.GetNotification)
		}
	}
}
