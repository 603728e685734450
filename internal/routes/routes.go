package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Multydelivery/nextjs-clone-dashboard/internal/config"
	handler "github.com/Multydelivery/nextjs-clone-dashboard/internal/handlers"
	"github.com/Multydelivery/nextjs-clone-dashboard/internal/services/auth"
	"github.com/Multydelivery/nextjs-clone-dashboard/internal/services/dashboard"
	"github.com/Multydelivery/nextjs-clone-dashboard/internal/store"
)

func RegisterRoutes(r *gin.Engine, st store.Store, cfg *config.Config, log *zap.Logger) {
	dashboardService := dashboard.NewService(st, log,
		dashboard.WithRevenueDelay(cfg.RevenueDelay))
	authService := auth.NewService(st, cfg.JWTSecret, cfg.TokenTTL)

	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	invoiceHandler := handler.NewInvoiceHandler(dashboardService, st)
	customerHandler := handler.NewCustomerHandler(dashboardService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	session := api.Group("/auth")
	session.POST("/login", authHandler.Login)
	session.POST("/logout", authHandler.Logout)
	session.GET("/me", handler.RequireAuth(authService), authHandler.Me)

	protected := api.Group("", handler.RequireAuth(authService))

	dash := protected.Group("/dashboard")
	dash.GET("/cards", dashboardHandler.Cards)
	dash.GET("/revenue", dashboardHandler.Revenue)
	dash.GET("/latest-invoices", dashboardHandler.LatestInvoices)

	invoices := protected.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/pages", invoiceHandler.Pages)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.POST("", invoiceHandler.Create)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}

	customers := protected.Group("/customers")
	{
		customers.GET("", customerHandler.List)
		customers.GET("/names", customerHandler.Names)
	}
}
