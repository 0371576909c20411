package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"techvault-checkout/internal/payment"
)

// APIClient talks to the checkout backend.
type APIClient interface {
	CreateOrder(ctx context.Context, amount int64, currency string) (*payment.Order, error)
	VerifyPayment(ctx context.Context, res payment.Result) (*payment.VerificationOutcome, error)
}

type httpAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string) APIClient {
	return &httpAPIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *httpAPIClient) post(ctx context.Context, path string, body interface{}) (int, []byte, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, bodyBytes, nil
}

func (c *httpAPIClient) CreateOrder(ctx context.Context, amount int64, currency string) (*payment.Order, error) {
	status, body, err := c.post(ctx, "/api/create-order", map[string]interface{}{
		"amount":   amount,
		"currency": currency,
	})
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("create order failed: %s", string(body))
	}

	var ord payment.Order
	if err := json.Unmarshal(body, &ord); err != nil {
		return nil, err
	}
	return &ord, nil
}

func (c *httpAPIClient) VerifyPayment(ctx context.Context, res payment.Result) (*payment.VerificationOutcome, error) {
	status, body, err := c.post(ctx, "/api/verify-payment", map[string]interface{}{
		"razorpay_payment_id": res.PaymentID,
		"razorpay_order_id":   res.OrderID,
		"razorpay_signature":  res.Signature,
	})
	if err != nil {
		return nil, err
	}

	// 400 carries a well-formed negative outcome; anything else unexpected
	// is a transport-level failure.
	if status != http.StatusOK && status != http.StatusBadRequest {
		return nil, fmt.Errorf("verify payment failed: %s", string(body))
	}

	var resp struct {
		Verified  bool   `json:"verified"`
		PaymentID string `json:"paymentId"`
		Error     string `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	return &payment.VerificationOutcome{
		Verified:  resp.Verified,
		PaymentID: resp.PaymentID,
		Reason:    resp.Error,
	}, nil
}
