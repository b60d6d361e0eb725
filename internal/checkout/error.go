package checkout

import (
	"errors"
	"fmt"
)

var (
	// -- Validation & Input --
	ErrInvalidForm     = errors.New("invalid checkout form")
	ErrNameRequired    = fmt.Errorf("%w: name is required", ErrInvalidForm)
	ErrPhoneRequired   = fmt.Errorf("%w: phone is required", ErrInvalidForm)
	ErrAddressRequired = fmt.Errorf("%w: delivery address is required", ErrInvalidForm)
	ErrEmptyCart       = fmt.Errorf("%w: cart is empty", ErrInvalidForm)

	// -- Remote --
	ErrSubmitFailed = errors.New("failed to submit order")

	errIllegalTransition = errors.New("illegal checkout state transition")
)
