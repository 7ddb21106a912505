package checkout

import (
	"errors"
	"sync"
)

// Step is one state of the checkout flow.
type Step string

const (
	StepAddress      Step = "address"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// Event is a requested transition.
type Event string

const (
	EventAddressSubmitted Event = "address_submitted"
	EventPaymentConfirmed Event = "payment_confirmed"
	EventEditAddress      Event = "edit_address"
)

// ErrInvalidTransition is returned for any step/event pair missing from the
// transition table, e.g. confirming payment straight from the address step.
var ErrInvalidTransition = errors.New("checkout: invalid transition")

// transitions is the whole flow: a forward path through the three steps and
// a single backward edge to re-edit the address from the payment step.
// Confirmation is terminal.
var transitions = map[Step]map[Event]Step{
	StepAddress: {
		EventAddressSubmitted: StepPayment,
	},
	StepPayment: {
		EventPaymentConfirmed: StepConfirmation,
		EventEditAddress:      StepAddress,
	},
	StepConfirmation: {},
}

// Wizard tracks one session's progress through checkout. It starts on the
// address step and only moves along table edges.
type Wizard struct {
	mu      sync.Mutex
	step    Step
	address AddressForm
	orderID string
}

func NewWizard() *Wizard {
	return &Wizard{step: StepAddress}
}

func (wz *Wizard) Step() Step {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	return wz.step
}

func (wz *Wizard) Address() AddressForm {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	return wz.address
}

// OrderID is set once the confirmation step is reached.
func (wz *Wizard) OrderID() string {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	return wz.orderID
}

func (wz *Wizard) apply(ev Event) error {
	next, ok := transitions[wz.step][ev]
	if !ok {
		return ErrInvalidTransition
	}
	wz.step = next
	return nil
}

// SubmitAddress validates the form and advances to payment. Field errors
// leave the wizard on the address step.
func (wz *Wizard) SubmitAddress(form AddressForm) (FieldErrors, error) {
	if errs := ValidateAddress(form); len(errs) > 0 {
		return errs, nil
	}
	wz.mu.Lock()
	defer wz.mu.Unlock()
	if err := wz.apply(EventAddressSubmitted); err != nil {
		return nil, err
	}
	wz.address = form
	return nil, nil
}

// ConfirmPayment runs the order placement callback and advances to the
// confirmation step only on success.
func (wz *Wizard) ConfirmPayment(place func(AddressForm) (string, error)) error {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	if _, ok := transitions[wz.step][EventPaymentConfirmed]; !ok {
		return ErrInvalidTransition
	}
	orderID, err := place(wz.address)
	if err != nil {
		return err
	}
	_ = wz.apply(EventPaymentConfirmed)
	wz.orderID = orderID
	return nil
}

// EditAddress is the only backward edge: payment back to address.
func (wz *Wizard) EditAddress() error {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	return wz.apply(EventEditAddress)
}
