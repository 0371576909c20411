package checkout

import "errors"

var (
	ErrCheckoutInFlight = errors.New("a checkout is already in flight")
)
