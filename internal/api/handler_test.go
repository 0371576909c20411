package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"techvault-checkout/internal/order"
	"techvault-checkout/internal/payment"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, input order.CreateOrderInput) (*payment.Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Order), args.Error(1)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_CreateOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("CreateOrder", mock.Anything, order.CreateOrderInput{Amount: 29900, Currency: "INR"}).
			Return(&payment.Order{OrderID: "order_Nxy123", Amount: 29900, Currency: "INR"}, nil)

		h := NewHandler(orders, payment.NewVerifier("testsecret"))
		c, rec := newTestContext(t, http.MethodPost, "/api/create-order", `{"amount":29900,"currency":"INR"}`)

		err := h.CreateOrder(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp createOrderResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "order_Nxy123", resp.OrderID)
		assert.Equal(t, int64(29900), resp.Amount)
		assert.Equal(t, "INR", resp.Currency)
		orders.AssertExpectations(t)
	})

	t.Run("InvalidAmount", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("CreateOrder", mock.Anything, order.CreateOrderInput{Amount: 0}).
			Return(nil, order.ErrInvalidAmount)

		h := NewHandler(orders, payment.NewVerifier("testsecret"))
		c, rec := newTestContext(t, http.MethodPost, "/api/create-order", `{"amount":0}`)

		err := h.CreateOrder(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid amount")
	})

	t.Run("NonNumericAmount", func(t *testing.T) {
		orders := new(MockOrderService)

		h := NewHandler(orders, payment.NewVerifier("testsecret"))
		c, rec := newTestContext(t, http.MethodPost, "/api/create-order", `{"amount":"lots"}`)

		err := h.CreateOrder(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		// Nothing malformed is ever forwarded to the gateway.
		orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("GatewayFailure", func(t *testing.T) {
		orders := new(MockOrderService)
		orders.On("CreateOrder", mock.Anything, mock.Anything).
			Return(nil, errors.New("razorpay error: auth failed"))

		h := NewHandler(orders, payment.NewVerifier("testsecret"))
		c, rec := newTestContext(t, http.MethodPost, "/api/create-order", `{"amount":29900}`)

		err := h.CreateOrder(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to create order")
		// Upstream detail never leaks to the caller.
		assert.NotContains(t, rec.Body.String(), "razorpay")
	})
}

func TestHandler_VerifyPayment(t *testing.T) {
	verifier := payment.NewVerifier("testsecret")
	h := NewHandler(new(MockOrderService), verifier)

	validSig := payment.Signature("testsecret", "order_ABC", "pay_XYZ")

	t.Run("ValidSignature", func(t *testing.T) {
		body := `{"razorpay_payment_id":"pay_XYZ","razorpay_order_id":"order_ABC","razorpay_signature":"` + validSig + `"}`
		c, rec := newTestContext(t, http.MethodPost, "/api/verify-payment", body)

		err := h.VerifyPayment(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp verifyPaymentResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Verified)
		assert.Equal(t, "pay_XYZ", resp.PaymentID)
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		body := `{"razorpay_payment_id":"pay_XYZ","razorpay_order_id":"order_ABC","razorpay_signature":"not-the-signature"}`
		c, rec := newTestContext(t, http.MethodPost, "/api/verify-payment", body)

		err := h.VerifyPayment(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp verifyPaymentResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Verified)
		assert.Equal(t, "Invalid signature", resp.Error)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		c, rec := newTestContext(t, http.MethodPost, "/api/verify-payment", "")

		err := h.VerifyPayment(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp verifyPaymentResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Verified)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		c, rec := newTestContext(t, http.MethodPost, "/api/verify-payment", `{not-json`)

		err := h.VerifyPayment(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"verified":false`)
	})
}

func TestHandler_Health(t *testing.T) {
	h := NewHandler(new(MockOrderService), payment.NewVerifier("testsecret"))
	c, rec := newTestContext(t, http.MethodGet, "/api/health", "")

	err := h.Health(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Timestamp)
}
