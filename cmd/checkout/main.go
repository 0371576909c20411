// Command checkout runs one headless checkout attempt against a live server,
// standing in for the browser flow. With RAZORPAY_KEY_SECRET set it simulates
// a gateway-signed payment; with -dismiss it abandons the widget instead.
// Intended for local smoke testing, not production use.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"techvault-checkout/internal/checkout"
	"techvault-checkout/internal/logger"
	"techvault-checkout/internal/payment"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// simulatedWidget plays the hosted payment widget: it either hands back a
// payment result signed with the shared secret, or dismisses without paying.
type simulatedWidget struct {
	secret  string
	dismiss bool
}

func (w *simulatedWidget) Open(ctx context.Context, ord payment.Order, events checkout.Events) {
	logger.L().Info("payment widget opened",
		zap.String("order_id", ord.OrderID),
		zap.Int64("amount", ord.Amount),
	)

	if w.dismiss || w.secret == "" {
		logger.L().Info("dismissing payment widget without paying")
		events.Dismissed()
		return
	}

	paymentID := "pay_" + uuid.New().String()
	events.PaymentCompleted(ctx, payment.Result{
		PaymentID: paymentID,
		OrderID:   ord.OrderID,
		Signature: payment.Signature(w.secret, ord.OrderID, paymentID),
	})
}

func main() {
	server := flag.String("server", "http://localhost:3000", "checkout server base URL")
	amount := flag.Int64("amount", 29900, "amount in minor currency units")
	currency := flag.String("currency", "INR", "ISO 4217 currency code")
	dismiss := flag.Bool("dismiss", false, "dismiss the widget instead of paying")
	flag.Parse()

	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"))
	defer logger.Sync()

	widget := &simulatedWidget{
		secret:  os.Getenv("RAZORPAY_KEY_SECRET"),
		dismiss: *dismiss,
	}

	render := func(s checkout.UIState) {
		logger.L().Info("ui state",
			zap.Bool("busy", s.Busy),
			zap.String("panel", string(s.Panel)),
			zap.String("order_id", s.OrderID),
			zap.String("payment_id", s.PaymentID),
			zap.String("message", s.Message),
		)
	}

	o := checkout.NewOrchestrator(
		checkout.NewAPIClient(*server),
		widget,
		render,
		checkout.Product{
			Name:        "Premium Wireless Headphones Pro",
			Description: "High-quality wireless headphones with ANC",
			Amount:      *amount,
			Currency:    *currency,
		},
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := o.Start(ctx); err != nil {
		logger.L().Fatal("checkout could not start", zap.Error(err))
	}

	switch o.State() {
	case checkout.StateSucceeded:
		logger.L().Info("checkout succeeded")
	case checkout.StateIdle:
		logger.L().Info("checkout dismissed")
	default:
		logger.L().Error("checkout failed", zap.String("state", string(o.State())))
		logger.Sync()
		os.Exit(1)
	}
}
