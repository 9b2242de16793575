package checkout

import "regexp"

// Address is the delivery address entered during checkout. It lives for
// one checkout session and is only persisted inside the invoice
// snapshot.
type Address struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark,omitempty"`
}

// ValidationError carries the user-facing message for the first failing
// address field. It blocks the flow transition and is fully recoverable
// by re-entry.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	phonePattern   = regexp.MustCompile(`^\d{10}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
)

// ValidateAddress checks required fields in a fixed order and reports
// the first failure only, naming the offending field.
func ValidateAddress(a Address) error {
	required := []struct {
		field string
		value string
	}{
		{"name", a.Name},
		{"email", a.Email},
		{"phone", a.Phone},
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"pincode", a.Pincode},
	}

	for _, f := range required {
		if f.value == "" {
			return &ValidationError{
				Field:   f.field,
				Message: "Please fill in " + f.field,
			}
		}
	}

	if !phonePattern.MatchString(a.Phone) {
		return &ValidationError{
			Field:   "phone",
			Message: "Please enter a valid 10-digit phone number",
		}
	}

	if !pincodePattern.MatchString(a.Pincode) {
		return &ValidationError{
			Field:   "pincode",
			Message: "Please enter a valid 6-digit pincode",
		}
	}

	return nil
}
