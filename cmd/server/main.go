package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ikkim/gonggu-backend/config"
	"github.com/ikkim/gonggu-backend/internal/app/controller"
	"github.com/ikkim/gonggu-backend/internal/app/repository"
	"github.com/ikkim/gonggu-backend/internal/app/service"
	"github.com/ikkim/gonggu-backend/internal/db"
	"github.com/ikkim/gonggu-backend/internal/middleware"
	"github.com/ikkim/gonggu-backend/internal/router"
	"github.com/ikkim/gonggu-backend/internal/scheduler"
	"github.com/ikkim/gonggu-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		EnableColor: cfg.Server.Environment == "development",
	})

	logger.Info("Starting GONGGU Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   cfg.Log.Level,
	})
	if cfg.Admin.Key == "" {
		logger.Warn("ADMIN_KEY is not set; admin routes are locked")
	}

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	groupRepo := repository.NewGroupRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	memberRepo := repository.NewMemberRepository(db.GetDB())
	chargeRepo := repository.NewMiscChargeRepository(db.GetDB())

	// Initialize services
	groupService := service.NewGroupService(groupRepo)
	orderService := service.NewOrderService(orderRepo, groupRepo, memberRepo)
	memberService := service.NewMemberService(memberRepo)
	chargeService := service.NewMiscChargeService(chargeRepo, memberRepo)
	settlementService := service.NewSettlementService(
		groupRepo,
		orderRepo,
		memberRepo,
		chargeRepo,
		cfg.Settlement.MembershipFlatFee,
	)

	// Initialize controllers
	groupController := controller.NewGroupController(groupService)
	orderController := controller.NewOrderController(orderService)
	memberController := controller.NewMemberController(memberService, settlementService)
	chargeController := controller.NewMiscChargeController(chargeService)
	settlementController := controller.NewSettlementController(settlementService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.Admin.Key)

	// Start membership scheduler
	membershipScheduler := scheduler.NewMembershipScheduler(memberService, cfg.Settlement.MembershipSweepSpec)
	if err := membershipScheduler.Start(); err != nil {
		logger.Fatal("Failed to start membership scheduler", err)
	}
	defer membershipScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		groupController,
		orderController,
		memberController,
		chargeController,
		settlementController,
		authMiddleware,
		cfg,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           r.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}
	logger.Info("Server stopped successfully")
}
