package checkout

import (
	"regexp"
	"strings"
)

// AddressForm is the address-step input.
type AddressForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// FieldErrors maps field names to user-facing messages.
type FieldErrors map[string]string

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
	emailPattern   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateAddress checks required fields and formats. These errors stay on
// the client side; nothing invalid reaches the backend.
func ValidateAddress(f AddressForm) FieldErrors {
	errs := FieldErrors{}

	required := map[string]string{
		"name":     f.Name,
		"email":    f.Email,
		"phone":    f.Phone,
		"address1": f.Address1,
		"city":     f.City,
		"state":    f.State,
		"pincode":  f.Pincode,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = "This field is required"
		}
	}

	if _, ok := errs["email"]; !ok && !emailPattern.MatchString(strings.TrimSpace(f.Email)) {
		errs["email"] = "Enter a valid email address"
	}
	if _, ok := errs["phone"]; !ok && !phonePattern.MatchString(strings.TrimSpace(f.Phone)) {
		errs["phone"] = "Enter a valid 10-digit phone number"
	}
	if _, ok := errs["pincode"]; !ok && !pincodePattern.MatchString(strings.TrimSpace(f.Pincode)) {
		errs["pincode"] = "Enter a valid 6-digit pincode"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
