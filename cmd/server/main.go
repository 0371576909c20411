package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"techvault-checkout/internal/api"
	"techvault-checkout/internal/config"
	"techvault-checkout/internal/logger"
	"techvault-checkout/internal/order"
	"techvault-checkout/internal/payment"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	orderSvc := order.NewService(gateway)
	verifier := payment.NewVerifier(cfg.RazorpayKeySecret)

	h := api.NewHandler(orderSvc, verifier)
	e := api.NewRouter(h)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.L().Info("checkout server started", zap.String("port", cfg.AppPort))
		if err := e.Start(":" + cfg.AppPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()
	logger.L().Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("server shutdown failed", zap.Error(err))
	}
}
