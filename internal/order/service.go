package order

import (
	"context"
	"fmt"

	"techvault-checkout/internal/logger"
	"techvault-checkout/internal/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultCurrency = "INR"

type CreateOrderInput struct {
	Amount   int64
	Currency string
}

type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*payment.Order, error)
}

type service struct {
	gateway payment.Gateway
}

func NewService(gateway payment.Gateway) Service {
	return &service{gateway: gateway}
}

func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*payment.Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int64("amount", input.Amount),
		zap.String("currency", input.Currency),
	)

	// 1. Validate before anything reaches the gateway
	if input.Amount <= 0 {
		log.Warn("rejected order with non-positive amount")
		return nil, ErrInvalidAmount
	}

	currency := input.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	// 2. Receipt labels are random, not time-derived, so rapid checkouts
	// cannot collide.
	receipt := "rcpt_" + uuid.New().String()

	// 3. Delegate creation to the gateway
	ord, err := s.gateway.CreateOrder(ctx, input.Amount, currency, receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	log.Info("order created", zap.String("order_id", ord.OrderID))

	return ord, nil
}
