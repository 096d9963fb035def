package order

import (
	"strings"

	"github.com/jsamuelsen11/storesync/internal/domain"
)

// Address is a billing or shipping address.
type Address struct {
	FirstName string
	LastName  string
	Company   string
	Address1  string
	Address2  string
	City      string
	State     string
	Postcode  string
	Country   string
	Phone     string
	Email     string
}

// Validate checks the fields the store rejects. Country, when set, must be an
// ISO 3166-1 alpha-2 code and email, when set, must contain a local part and
// a domain.
func (a *Address) Validate() error {
	fields := make(map[string]string)

	if a.Country != "" && !isCountryCode(a.Country) {
		fields["country"] = "must be a two-letter country code"
	}
	if a.Email != "" {
		at := strings.Index(a.Email, "@")
		if at <= 0 || at == len(a.Email)-1 {
			fields["email"] = "must be a valid email address"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func isCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
