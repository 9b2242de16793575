package checkout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validAddress() Address {
	return Address{
		Name:    "Avinash",
		Email:   "avinash@example.com",
		Phone:   "9876543210",
		Street:  "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
	}
}

func TestValidateAddress_Valid(t *testing.T) {
	require.NoError(t, ValidateAddress(validAddress()))
}

func TestValidateAddress_LandmarkIsOptional(t *testing.T) {
	a := validAddress()
	a.Landmark = ""

	require.NoError(t, ValidateAddress(a))
}

func TestValidateAddress_ReportsFirstMissingField(t *testing.T) {
	a := validAddress()
	a.Name = ""
	a.City = ""

	err := ValidateAddress(a)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "name", vErr.Field)
	require.Equal(t, "Please fill in name", vErr.Message)
}

func TestValidateAddress_MissingFieldMessages(t *testing.T) {
	cases := []struct {
		field string
		clear func(*Address)
	}{
		{"name", func(a *Address) { a.Name = "" }},
		{"email", func(a *Address) { a.Email = "" }},
		{"phone", func(a *Address) { a.Phone = "" }},
		{"street", func(a *Address) { a.Street = "" }},
		{"city", func(a *Address) { a.City = "" }},
		{"state", func(a *Address) { a.State = "" }},
		{"pincode", func(a *Address) { a.Pincode = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			a := validAddress()
			tc.clear(&a)

			err := ValidateAddress(a)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Equal(t, tc.field, vErr.Field)
			require.Equal(t, "Please fill in "+tc.field, vErr.Message)
		})
	}
}

func TestValidateAddress_ShortPhoneRejected(t *testing.T) {
	a := validAddress()
	a.Phone = "12345"

	err := ValidateAddress(a)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "phone", vErr.Field)
	require.Equal(t, "Please enter a valid 10-digit phone number", vErr.Message)
}

func TestValidateAddress_NonDigitPhoneRejected(t *testing.T) {
	a := validAddress()
	a.Phone = "98765abc10"

	err := ValidateAddress(a)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "phone", vErr.Field)
}

func TestValidateAddress_ShortPincodeRejected(t *testing.T) {
	a := validAddress()
	a.Pincode = "1234"

	err := ValidateAddress(a)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "pincode", vErr.Field)
	require.Equal(t, "Please enter a valid 6-digit pincode", vErr.Message)
}

func TestValidateAddress_RequiredChecksRunBeforeFormatChecks(t *testing.T) {
	a := validAddress()
	a.Phone = "bad"
	a.Street = ""

	err := ValidateAddress(a)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "street", vErr.Field)
}
