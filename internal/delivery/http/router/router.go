// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pawmart/internal/delivery/http/middleware"
	"pawmart/internal/delivery/http/router/handler"
	"pawmart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	CartHandler        *handler.CartHandler
	OrderHandler       *handler.OrderHandler
	AlertHandler       *handler.AlertHandler
	PaymentHandler     *handler.PaymentHandler
	AppointmentHandler *handler.AppointmentHandler
	ProductHandler     *handler.ProductHandler
	CatalogHandler     *handler.CatalogHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	authenticate := p.AuthMiddleware.Authenticate
	requireAdmin := p.AuthMiddleware.RequireRole(entity.RoleAdmin)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", p.UserHandler.Signup)
		authGroup.POST("/login", p.UserHandler.Login)
	}

	e.GET("/profile", p.UserHandler.GetProfile, authenticate)

	// Public catalog reads; admin-gated writes.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", p.ProductHandler.ListProducts)
		productGroup.GET("/:id", p.ProductHandler.GetProduct)
		productGroup.GET("/:id/reviews", p.CatalogHandler.ListProductReviews)
		productGroup.POST("", p.ProductHandler.CreateProduct, authenticate, requireAdmin)
		productGroup.PATCH("/:id", p.ProductHandler.UpdateProduct, authenticate, requireAdmin)
		productGroup.DELETE("/:id", p.ProductHandler.DeleteProduct, authenticate, requireAdmin)
		productGroup.POST("/:id/image", p.ProductHandler.UploadProductImage, authenticate, requireAdmin)
	}

	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", p.CatalogHandler.ListCategories)
		categoryGroup.POST("", p.CatalogHandler.CreateCategory, authenticate, requireAdmin)
	}

	serviceGroup := e.Group("/services")
	{
		serviceGroup.GET("", p.CatalogHandler.ListServices)
		serviceGroup.GET("/:id/reviews", p.CatalogHandler.ListServiceReviews)
		serviceGroup.POST("", p.CatalogHandler.CreateService, authenticate, requireAdmin)
		serviceGroup.PATCH("/:id", p.CatalogHandler.UpdateService, authenticate, requireAdmin)
		serviceGroup.DELETE("/:id", p.CatalogHandler.DeleteService, authenticate, requireAdmin)
	}

	zoneGroup := e.Group("/delivery-zones")
	{
		zoneGroup.GET("", p.CatalogHandler.ListDeliveryZones)
		zoneGroup.POST("", p.CatalogHandler.CreateDeliveryZone, authenticate, requireAdmin)
		zoneGroup.PATCH("/:id", p.CatalogHandler.UpdateDeliveryZone, authenticate, requireAdmin)
		zoneGroup.DELETE("/:id", p.CatalogHandler.DeleteDeliveryZone, authenticate, requireAdmin)
	}

	e.POST("/reviews", p.CatalogHandler.CreateReview, authenticate)

	// Cart routes
	cartGroup := e.Group("/cart")
	cartGroup.Use(authenticate)
	{
		cartGroup.GET("", p.CartHandler.GetCart)
		cartGroup.DELETE("", p.CartHandler.Clear)
		cartGroup.POST("/items", p.CartHandler.AddItem)
		cartGroup.PATCH("/items/:id", p.CartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", p.CartHandler.RemoveItem)
	}

	// Checkout and orders
	e.POST("/check-out", p.OrderHandler.Checkout, authenticate)

	orderGroup := e.Group("/orders")
	orderGroup.Use(authenticate)
	{
		orderGroup.GET("", p.OrderHandler.ListOrders)
		orderGroup.GET("/status-history/:id", p.OrderHandler.GetStatusHistory)
		orderGroup.PATCH("/status-history/:id", p.OrderHandler.UpdateStatus, requireAdmin)
		orderGroup.GET("/:id/qr", p.OrderHandler.GetOrderQR)
	}

	// Inventory alerts, admin only
	alertGroup := e.Group("/alerts")
	alertGroup.Use(authenticate, requireAdmin)
	{
		alertGroup.GET("", p.AlertHandler.ListAlerts)
		alertGroup.DELETE("/:id", p.AlertHandler.DeleteAlert)
	}

	// Payments
	paymentGroup := e.Group("/payments")
	paymentGroup.Use(authenticate)
	{
		paymentGroup.POST("", p.PaymentHandler.RecordPayment)
		paymentGroup.GET("", p.PaymentHandler.ListOwnPayments)
		paymentGroup.POST("/mpesa/initiate", p.PaymentHandler.InitiateMpesa)
		paymentGroup.GET("/users/:id", p.PaymentHandler.ListUserPayments, requireAdmin)
	}

	// Appointments
	appointmentGroup := e.Group("/appointments")
	appointmentGroup.Use(authenticate)
	{
		appointmentGroup.POST("", p.AppointmentHandler.BookAppointment)
		appointmentGroup.GET("", p.AppointmentHandler.ListAppointments)
		appointmentGroup.PATCH("/:id", p.AppointmentHandler.UpdateAppointmentStatus, requireAdmin)
		appointmentGroup.DELETE("/:id", p.AppointmentHandler.DeleteAppointment, requireAdmin)
	}
}
