package checkout

type State string

const (
	StateIdle            State = "IDLE"
	StateCreatingOrder   State = "CREATING_ORDER"
	StateAwaitingPayment State = "AWAITING_PAYMENT"
	StateVerifying       State = "VERIFYING"
	StateSucceeded       State = "SUCCEEDED"
	StateFailed          State = "FAILED"
)

type Panel string

const (
	PanelNone    Panel = ""
	PanelSuccess Panel = "SUCCESS"
	PanelError   Panel = "ERROR"
)

// UIState is everything a presentation layer needs to draw one frame of the
// checkout: whether the initiating control is disabled, and which terminal
// panel (if any) is showing. Rendering itself is out of scope here.
type UIState struct {
	Busy      bool
	Panel     Panel
	OrderID   string
	PaymentID string
	Message   string
}

// Product is the single item being sold.
type Product struct {
	Name        string
	Description string
	Amount      int64 // minor currency unit
	Currency    string
}
