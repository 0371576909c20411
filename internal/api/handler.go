package api

import (
	"errors"
	"net/http"
	"time"

	"techvault-checkout/internal/logger"
	"techvault-checkout/internal/order"
	"techvault-checkout/internal/payment"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Handler struct {
	orders   order.Service
	verifier *payment.Verifier
}

func NewHandler(orders order.Service, verifier *payment.Verifier) *Handler {
	return &Handler{
		orders:   orders,
		verifier: verifier,
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type createOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type verifyPaymentRequest struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}

type verifyPaymentResponse struct {
	Verified  bool   `json:"verified"`
	PaymentID string `json:"paymentId,omitempty"`
	Error     string `json:"error,omitempty"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (h *Handler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid amount"})
	}

	ord, err := h.orders.CreateOrder(ctx, order.CreateOrderInput{
		Amount:   req.Amount,
		Currency: req.Currency,
	})
	if errors.Is(err, order.ErrInvalidAmount) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid amount"})
	}
	if err != nil {
		// The upstream failure is logged; the caller only sees a generic error.
		logger.FromCtx(ctx).Error("Error creating order", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create order"})
	}

	return c.JSON(http.StatusOK, createOrderResponse{
		OrderID:  ord.OrderID,
		Amount:   ord.Amount,
		Currency: ord.Currency,
	})
}

func (h *Handler) VerifyPayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req verifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		// A malformed body is a failed verification, not a server fault.
		return c.JSON(http.StatusBadRequest, verifyPaymentResponse{
			Verified: false,
			Error:    "Missing payment details",
		})
	}

	outcome := h.verifier.Verify(ctx, payment.Result{
		PaymentID: req.PaymentID,
		OrderID:   req.OrderID,
		Signature: req.Signature,
	})

	if !outcome.Verified {
		return c.JSON(http.StatusBadRequest, verifyPaymentResponse{
			Verified: false,
			Error:    outcome.Reason,
		})
	}

	return c.JSON(http.StatusOK, verifyPaymentResponse{
		Verified:  true,
		PaymentID: outcome.PaymentID,
	})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
