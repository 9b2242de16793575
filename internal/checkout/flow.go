package checkout

import "errors"

type Step string

const (
	StepAddressEntry     Step = "address_entry"
	StepPaymentSelection Step = "payment_selection"
	StepInvoiceDisplay   Step = "invoice_display"
)

var (
	ErrWrongStep = errors.New("operation not allowed in current checkout step")
	ErrEmptyCart = errors.New("cart is empty")
)

// Flow is one user's checkout session: a three-step state machine.
// Back-navigation from payment selection preserves the entered address;
// abandoning the flow discards everything but leaves the cart alone.
type Flow struct {
	Step    Step     `json:"step"`
	Address Address  `json:"address"`
	Invoice *Invoice `json:"invoice,omitempty"`
}

func newFlow() *Flow {
	return &Flow{Step: StepAddressEntry}
}

func (f *Flow) submitAddress(a Address) error {
	if f.Step != StepAddressEntry {
		return ErrWrongStep
	}
	if err := ValidateAddress(a); err != nil {
		return err
	}

	f.Address = a
	f.Step = StepPaymentSelection
	return nil
}

func (f *Flow) back() error {
	if f.Step != StepPaymentSelection {
		return ErrWrongStep
	}

	f.Step = StepAddressEntry
	return nil
}
