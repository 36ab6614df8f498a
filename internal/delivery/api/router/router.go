// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"beautymarket/internal/delivery/api/middleware"
	"beautymarket/internal/delivery/api/router/handler"
	"beautymarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler          *handler.UserHandler
	AccountHandler       *handler.AccountHandler
	DeviceHandler        *handler.DeviceHandler
	ProductHandler       *handler.ProductHandler
	OrderHandler         *handler.OrderHandler
	CommunityHandler     *handler.CommunityHandler
	AdvertisementHandler *handler.AdvertisementHandler
	AdminHandler         *handler.AdminHandler
	AnalyticsHandler     *handler.AnalyticsHandler
	AuthMiddleware       *middleware.AuthMiddleware
	MetricsHandler       http.Handler `name:"metrics"`
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	accountHandler   *handler.AccountHandler
	deviceHandler    *handler.DeviceHandler
	productHandler   *handler.ProductHandler
	orderHandler     *handler.OrderHandler
	communityHandler *handler.CommunityHandler
	adHandler        *handler.AdvertisementHandler
	adminHandler     *handler.AdminHandler
	analyticsHandler *handler.AnalyticsHandler
	authMiddleware   *middleware.AuthMiddleware
	metricsHandler   http.Handler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		accountHandler:   params.AccountHandler,
		deviceHandler:    params.DeviceHandler,
		productHandler:   params.ProductHandler,
		orderHandler:     params.OrderHandler,
		communityHandler: params.CommunityHandler,
		adHandler:        params.AdvertisementHandler,
		adminHandler:     params.AdminHandler,
		analyticsHandler: params.AnalyticsHandler,
		authMiddleware:   params.AuthMiddleware,
		metricsHandler:   params.MetricsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metricsHandler))

	r.registerAuthRoutes(e)

	v1 := e.Group("/api/v1")
	r.registerStorefrontRoutes(v1)

	authed := v1.Group("", r.authMiddleware.Authenticate)
	r.registerAccountRoutes(authed)
	r.registerOrderRoutes(authed)
	r.registerCommunityRoutes(authed)

	seller := authed.Group("/seller", r.authMiddleware.RequireRole(entity.RoleSeller))
	seller.GET("/products", r.productHandler.SellerProducts)
	seller.POST("/products", r.productHandler.CreateProduct)
	seller.PUT("/products/:id", r.productHandler.UpdateProduct)
	seller.DELETE("/products/:id", r.productHandler.DeleteProduct)

	r.registerAdminRoutes(authed.Group("/admin", r.authMiddleware.RequireRole(entity.RoleAdmin)))
}

func (r *router) registerAuthRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/register", r.userHandler.Register)
	authGroup.POST("/login", r.userHandler.Login)
	authGroup.POST("/refresh", r.userHandler.RefreshToken)
	authGroup.POST("/logout", r.userHandler.Logout, r.authMiddleware.Authenticate)
	authGroup.POST("/logout-all", r.userHandler.LogoutAllDevices, r.authMiddleware.Authenticate)

	e.POST("/oauth/google/callback", r.userHandler.GoogleCallback)
}

func (r *router) registerStorefrontRoutes(v1 *echo.Group) {
	public := v1.Group("", r.authMiddleware.Optional)
	public.GET("/home", r.productHandler.Home)
	public.GET("/products", r.productHandler.ListProducts)
	public.GET("/products/popular", r.productHandler.PopularProducts)
	public.GET("/products/featured", r.productHandler.FeaturedProducts)
	public.GET("/products/:id", r.productHandler.GetProduct)
	public.GET("/categories", r.productHandler.Categories)

	public.GET("/ads/slots", r.adHandler.ServingSlots)
	public.POST("/ads/slots/:id/impression", r.adHandler.RecordImpression)
	public.GET("/ads/slots/:id/click", r.adHandler.RecordClick)
}

func (r *router) registerAccountRoutes(g *echo.Group) {
	account := g.Group("/account")
	account.GET("", r.accountHandler.GetProfile)
	account.PUT("/profile", r.accountHandler.UpdateProfile)
	account.PUT("/avatar", r.accountHandler.UpdateAvatar)
	account.PUT("/password", r.accountHandler.ChangePassword)
	account.GET("/kyc", r.accountHandler.GetKYCStatus)
	account.POST("/kyc", r.accountHandler.SubmitKYC)
	account.GET("/age-verification", r.accountHandler.GetAgeVerification)
	account.POST("/age-verification", r.accountHandler.RequestAgeVerification)
	account.POST("/age-verification/confirm", r.accountHandler.ConfirmAgeVerification)

	devices := g.Group("/devices")
	devices.POST("", r.deviceHandler.RegisterDevice)
	devices.GET("", r.deviceHandler.GetUserDevices)
	devices.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
	devices.DELETE("/:id", r.deviceHandler.DeactivateDevice)

	g.POST("/products/:id/reviews", r.productHandler.AddReview)
}

func (r *router) registerOrderRoutes(g *echo.Group) {
	cart := g.Group("/cart")
	cart.GET("", r.orderHandler.GetCart)
	cart.POST("/items", r.orderHandler.AddToCart)
	cart.PUT("/items/:id", r.orderHandler.UpdateCartItem)
	cart.DELETE("/items/:id", r.orderHandler.RemoveCartItem)
	cart.DELETE("", r.orderHandler.ClearCart)

	g.GET("/checkout", r.orderHandler.CheckoutSummary)
	g.POST("/checkout", r.orderHandler.PlaceOrder)

	orders := g.Group("/orders")
	orders.GET("", r.orderHandler.ListOrders)
	orders.GET("/:id", r.orderHandler.GetOrder)
	orders.POST("/:id/cancel", r.orderHandler.CancelOrder)
	orders.GET("/:id/qrcode", r.orderHandler.OrderQRCode)
}

func (r *router) registerCommunityRoutes(g *echo.Group) {
	community := g.Group("/community")
	community.GET("", r.communityHandler.Home)
	community.GET("/rooms", r.communityHandler.ListRooms)
	community.POST("/rooms", r.communityHandler.CreateRoom)
	community.GET("/rooms/:id", r.communityHandler.GetRoom)
	community.POST("/rooms/:id/posts", r.communityHandler.CreatePost)
	community.GET("/posts/:id", r.communityHandler.GetPost)
	community.POST("/posts/:id/messages", r.communityHandler.AddMessage)
	community.POST("/posts/:id/like", r.communityHandler.LikePost)

	messages := g.Group("/messages")
	messages.GET("", r.communityHandler.Conversations)
	messages.GET("/:userId", r.communityHandler.Thread)
	messages.POST("", r.communityHandler.SendMessage)

	g.POST("/reports", r.communityHandler.ReportContent)
}

func (r *router) registerAdminRoutes(admin *echo.Group) {
	admin.GET("/dashboard", r.adminHandler.Dashboard)

	admin.GET("/users", r.adminHandler.ListUsers)
	admin.GET("/users/:id", r.adminHandler.GetUser)
	admin.POST("/users/:id/toggle-active", r.adminHandler.ToggleUserActive)

	admin.GET("/kyc", r.adminHandler.ListKYC)
	admin.POST("/kyc/:id/approve", r.adminHandler.ApproveKYC)
	admin.POST("/kyc/:id/reject", r.adminHandler.RejectKYC)

	admin.GET("/products", r.adminHandler.ListProducts)
	admin.POST("/products/:id/approve", r.adminHandler.ApproveProduct)
	admin.POST("/products/:id/reject", r.adminHandler.RejectProduct)

	admin.POST("/categories", r.adminHandler.CreateCategory)
	admin.PUT("/categories/:id", r.adminHandler.UpdateCategory)

	admin.PUT("/orders/:id/status", r.orderHandler.UpdateOrderStatus)
	admin.PUT("/orders/:id/payment", r.orderHandler.UpdatePayment)
	admin.POST("/orders/confirm-delivery", r.orderHandler.ConfirmDelivery)

	admin.GET("/reports", r.adminHandler.ListReports)
	admin.POST("/reports/:id/resolve", r.adminHandler.ResolveReport)

	admin.GET("/ads", r.adHandler.List)
	admin.POST("/ads", r.adHandler.Create)
	admin.GET("/ads/:id", r.adHandler.Get)
	admin.PUT("/ads/:id", r.adHandler.Update)
	admin.DELETE("/ads/:id", r.adHandler.Delete)
	admin.POST("/ads/:id/slots", r.adHandler.AddSlot)
	admin.POST("/ads/:id/approve", r.adHandler.Approve)
	admin.POST("/ads/:id/reject", r.adHandler.Reject)
	admin.POST("/ads/:id/pause", r.adHandler.Pause)

	admin.GET("/settings", r.adminHandler.ListSettings)
	admin.GET("/settings/:key", r.adminHandler.GetSetting)
	admin.PUT("/settings/:key", r.adminHandler.UpsertSetting)
	admin.DELETE("/settings/:key", r.adminHandler.DeleteSetting)

	admin.GET("/audit-log", r.adminHandler.AuditLog)

	analytics := admin.Group("/analytics")
	analytics.GET("", r.analyticsHandler.Dashboard)
	analytics.GET("/activity", r.analyticsHandler.Activity)
	analytics.GET("/products", r.analyticsHandler.Products)
	analytics.GET("/search", r.analyticsHandler.Search)
	analytics.GET("/revenue", r.analyticsHandler.Revenue)
	analytics.GET("/signups", r.analyticsHandler.Signups)
	analytics.POST("/export", r.analyticsHandler.Export)
}
