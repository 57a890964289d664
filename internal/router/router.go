package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/gonggu-backend/config"
	"github.com/ikkim/gonggu-backend/internal/app/controller"
	"github.com/ikkim/gonggu-backend/internal/middleware"
)

type Router struct {
	groupController      *controller.GroupController
	orderController      *controller.OrderController
	memberController     *controller.MemberController
	miscChargeController *controller.MiscChargeController
	settlementController *controller.SettlementController
	authMiddleware       *middleware.AuthMiddleware
	config               *config.Config
}

func NewRouter(
	groupController *controller.GroupController,
	orderController *controller.OrderController,
	memberController *controller.MemberController,
	miscChargeController *controller.MiscChargeController,
	settlementController *controller.SettlementController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		groupController:      groupController,
		orderController:      orderController,
		memberController:     memberController,
		miscChargeController: miscChargeController,
		settlementController: settlementController,
		authMiddleware:       authMiddleware,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "GONGGU API is running",
		})
	}
	router.GET("/health", health)

	admin := r.authMiddleware.RequireAdmin()

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", health)

		members := v1.Group("/members")
		{
			members.GET("", r.memberController.ListMembers)
			members.GET("/:id/billing", r.memberController.GetBilling)
			members.GET("/:id/orders", r.orderController.ListMemberOrders)
			members.PUT("/:id/membership", admin, r.memberController.UpdateMembership)
		}

		groups := v1.Group("/groups")
		{
			groups.GET("", r.groupController.ListGroups)
			groups.GET("/:id", r.groupController.GetGroup)
			groups.POST("", admin, r.groupController.CreateGroup)
			groups.PATCH("/:id/settings", admin, r.groupController.UpdateSettings)
			groups.PATCH("/:id/tracking", admin, r.groupController.UpdateTracking)
			groups.PATCH("/:id/status", admin, r.groupController.UpdateStatus)

			groups.GET("/:id/settlement", r.settlementController.GetGroupSettlement)
			groups.GET("/:id/export", admin, r.settlementController.ExportGroupSettlement)

			groups.GET("/:id/orders", r.orderController.ListGroupOrders)
			groups.GET("/:id/orders/:memberId", r.orderController.GetOrder)
			groups.PUT("/:id/orders/:memberId", r.orderController.PlaceOrder)
		}

		charges := v1.Group("/misc-charges")
		{
			charges.GET("", r.miscChargeController.ListCharges)
			charges.POST("", admin, r.miscChargeController.CreateCharge)
			charges.PATCH("/:id/paid", admin, r.miscChargeController.MarkPaid)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Admin-Key, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
