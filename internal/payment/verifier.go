package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"techvault-checkout/internal/logger"

	"go.uber.org/zap"
)

// Signature computes the hex-encoded HMAC-SHA256 the gateway attaches to a
// completed payment: HMAC(secret, orderID + "|" + paymentID).
func Signature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verifier proves a payment result was produced by the gateway holding the
// shared key secret. It is read-only after construction and entirely local;
// no gateway call is made during verification.
type Verifier struct {
	secret string
}

func NewVerifier(secret string) *Verifier {
	if secret == "" {
		logger.L().Warn("Razorpay key secret is empty")
	}
	return &Verifier{secret: secret}
}

func (v *Verifier) Verify(ctx context.Context, res Result) VerificationOutcome {
	log := logger.FromCtx(ctx).With(
		zap.String("order_id", res.OrderID),
		zap.String("payment_id", res.PaymentID),
	)

	if res.PaymentID == "" || res.OrderID == "" || res.Signature == "" {
		log.Warn("Payment verification rejected, missing fields")
		return VerificationOutcome{Verified: false, Reason: "Missing payment details"}
	}

	expected := Signature(v.secret, res.OrderID, res.PaymentID)

	// Constant-time compare; the expected signature is never logged or
	// returned to the caller.
	if !hmac.Equal([]byte(expected), []byte(res.Signature)) {
		log.Warn("Payment verification failed, signature mismatch")
		return VerificationOutcome{Verified: false, Reason: "Invalid signature"}
	}

	log.Info("Payment verified successfully")
	return VerificationOutcome{Verified: true, PaymentID: res.PaymentID}
}
