// Package stubserver is an in-memory implementation of the HomeFix
// backend contract. It exists for local development and for end-to-end
// tests of the SDK; it is not the production service and keeps no
// state across restarts.
package stubserver

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

// Server carries the handlers' shared dependencies.
type Server struct {
	data      *store
	jwtSecret string
	log       zerolog.Logger
}

// New builds the Echo instance with all routes registered.
func New(jwtSecret string, log zerolog.Logger) *echo.Echo {
	s := &Server{
		data:      newStore(),
		jwtSecret: jwtSecret,
		log:       log,
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = newHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	// Each server gets its own registry so several instances can
	// coexist in one process (the default registry rejects duplicate
	// collectors).
	registry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "homefix_stub",
		Registerer: registry,
	}))

	auth := bearerAuth(jwtSecret)
	professionalOnly := requireRole(domain.RoleProfessional)

	// --- Auth & account ---
	e.POST("/auth/register", s.register)
	e.POST("/auth/login", s.login)
	e.GET("/auth/me", s.me, auth)
	e.PUT("/users/me", s.updateMe, auth)

	// --- Professionals ---
	e.GET("/professionals", s.listProfessionals)
	e.GET("/professionals/search/advanced", s.searchProfessionals)
	e.GET("/professionals/:id", s.getProfessional)
	e.GET("/professionals/by-user/:userId", s.getProfessionalByUser)
	e.POST("/professionals", s.createProfessional, auth)
	e.PUT("/professionals/:id", s.updateProfessional, auth)
	e.GET("/professionals/:id/services", s.professionalServices)

	// --- Reviews & replies ---
	e.GET("/reviews", s.listReviews)
	e.POST("/reviews", s.createReview, auth)
	e.PUT("/reviews/:id", s.updateReview, auth)
	e.DELETE("/reviews/:id", s.deleteReview, auth)
	e.GET("/reviews/check", s.checkReview, auth)
	e.GET("/reviews/user-review", s.userReview, auth)

	e.POST("/review-replies", s.createReply, auth, professionalOnly)
	e.PUT("/review-replies/:id", s.updateReply, auth, professionalOnly)
	e.DELETE("/review-replies/:id", s.deleteReply, auth, professionalOnly)
	e.GET("/review-replies/by-review/:id", s.repliesByReview)
	e.GET("/review-replies/check/:id", s.checkReply)

	// --- Service orders, chat, payments ---
	e.POST("/service-orders", s.createOrder, auth)
	e.GET("/service-orders/me", s.myOrders, auth)
	e.GET("/service-orders/professional/:id", s.professionalOrders, auth)
	e.GET("/service-orders/:id", s.getOrder, auth)
	e.POST("/service-orders/:id/confirm", s.confirmOrder, auth)
	e.POST("/service-orders/:id/complete", s.completeOrder, auth)
	e.POST("/service-orders/:id/cancel", s.cancelOrder, auth)
	e.GET("/service-orders/:id/messages", s.listMessages, auth)
	e.POST("/service-orders/:id/messages", s.sendMessage, auth)
	e.DELETE("/service-orders/:id/messages", s.deleteMessage, auth)
	e.POST("/payments", s.createPayment, auth)

	// --- Catalogue ---
	e.GET("/trades", s.listTrades)
	e.GET("/services-by-trade", s.servicesByTrade)
	e.POST("/priced-services", s.createPricedService, auth, professionalOnly)
	e.PUT("/priced-services/:id", s.updatePricedService, auth, professionalOnly)
	e.DELETE("/priced-services/:id", s.deletePricedService, auth, professionalOnly)

	// --- Operational endpoints ---
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: registry,
	}))

	return e
}
