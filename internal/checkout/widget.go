package checkout

import (
	"context"

	"techvault-checkout/internal/payment"
)

// Events is how the payment widget resumes a suspended checkout. Exactly one
// of the two events fires per Open.
type Events interface {
	// PaymentCompleted delivers the gateway-signed payment result.
	PaymentCompleted(ctx context.Context, res payment.Result)
	// Dismissed fires when the user closes the widget without paying.
	Dismissed()
}

// Widget is the gateway's hosted payment collection surface. Open suspends
// the checkout until the widget reports back through events.
type Widget interface {
	Open(ctx context.Context, order payment.Order, events Events)
}
