package payment

// Order is a gateway-registered intent to collect a specific amount.
// Identity is assigned by the gateway; orders are never persisted here.
type Order struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"` // minor currency unit
	Currency string `json:"currency"`
	Receipt  string `json:"receipt,omitempty"`
}

// Result is what the hosted checkout widget hands back after the user pays.
type Result struct {
	PaymentID string
	OrderID   string
	Signature string
}

// VerificationOutcome is terminal; the client consumes it once to pick a UI state.
type VerificationOutcome struct {
	Verified  bool
	PaymentID string
	Reason    string
}
