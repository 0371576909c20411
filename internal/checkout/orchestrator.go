package checkout

import (
	"context"

	"techvault-checkout/internal/logger"
	"techvault-checkout/internal/payment"

	"go.uber.org/zap"
)

// Orchestrator drives one checkout attempt at a time through
// Idle -> CreatingOrder -> AwaitingPayment -> Verifying -> Succeeded|Failed.
// It is event-driven and single-threaded: the widget is the only suspension
// point, and its completion or dismissal resumes the flow.
type Orchestrator struct {
	api     APIClient
	widget  Widget
	render  func(UIState)
	product Product
	state   State
}

func NewOrchestrator(api APIClient, widget Widget, render func(UIState), product Product) *Orchestrator {
	if render == nil {
		render = func(UIState) {}
	}
	return &Orchestrator{
		api:     api,
		widget:  widget,
		render:  render,
		product: product,
		state:   StateIdle,
	}
}

func (o *Orchestrator) State() State {
	return o.state
}

// Start begins a checkout attempt. The initiating control stays busy from
// here until a terminal panel is dismissed, or until the widget is dismissed
// without paying. Returns ErrCheckoutInFlight if an attempt is already running.
func (o *Orchestrator) Start(ctx context.Context) error {
	if o.state != StateIdle {
		return ErrCheckoutInFlight
	}

	log := logger.FromCtx(ctx).With(
		zap.Int64("amount", o.product.Amount),
		zap.String("currency", o.product.Currency),
	)

	o.state = StateCreatingOrder
	o.render(UIState{Busy: true})

	ord, err := o.api.CreateOrder(ctx, o.product.Amount, o.product.Currency)
	if err != nil {
		log.Error("order creation failed", zap.Error(err))
		o.fail("Unable to initiate payment. Please try again.")
		return nil
	}

	log.Info("order created, opening payment widget", zap.String("order_id", ord.OrderID))

	o.state = StateAwaitingPayment
	o.render(UIState{Busy: true})
	o.widget.Open(ctx, *ord, o)

	return nil
}

// PaymentCompleted resumes the flow with the widget's signed payment result.
func (o *Orchestrator) PaymentCompleted(ctx context.Context, res payment.Result) {
	if o.state != StateAwaitingPayment {
		return
	}

	log := logger.FromCtx(ctx).With(
		zap.String("order_id", res.OrderID),
		zap.String("payment_id", res.PaymentID),
	)

	o.state = StateVerifying
	o.render(UIState{Busy: true})

	outcome, err := o.api.VerifyPayment(ctx, res)
	if err != nil {
		log.Error("verification request failed", zap.Error(err))
		o.fail("Payment verification failed. Please try again.")
		return
	}
	if !outcome.Verified {
		log.Warn("payment not verified")
		o.fail("Payment verification failed. Please contact support.")
		return
	}

	log.Info("payment verified")

	o.state = StateSucceeded
	o.render(UIState{
		Busy:      true,
		Panel:     PanelSuccess,
		OrderID:   res.OrderID,
		PaymentID: res.PaymentID,
	})
}

// Dismissed resumes the flow after the user closed the widget without paying:
// back to Idle, control re-enabled, no terminal panel.
func (o *Orchestrator) Dismissed() {
	if o.state != StateAwaitingPayment {
		return
	}
	o.state = StateIdle
	o.render(UIState{})
}

// Dismiss closes a terminal panel (close control, backdrop click or escape)
// and returns the checkout to Idle.
func (o *Orchestrator) Dismiss() {
	if o.state != StateSucceeded && o.state != StateFailed {
		return
	}
	o.state = StateIdle
	o.render(UIState{})
}

func (o *Orchestrator) fail(message string) {
	o.state = StateFailed
	o.render(UIState{
		Busy:    true,
		Panel:   PanelError,
		Message: message,
	})
}
