package customer

import (
	"errors"
	"strings"
)

// ErrAddressIsNotConstructed is returned when an Address was not created through NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the delivery address of an order.
type Address struct {
	id             string
	owningCustomer string
	line1          string
	line2          string
	postalCode     string
	city           string
	isConstructed  bool
}

// AddressParams groups the fields of an Address.
type AddressParams struct {
	ID             string
	OwningCustomer string
	Line1          string
	Line2          string
	PostalCode     string
	City           string
}

// NewAddress creates an Address. Line2 is optional; the remaining fields are
// copied as received because the template service decides how to show them.
func NewAddress(p AddressParams) *Address {
	return &Address{
		id:             strings.TrimSpace(p.ID),
		owningCustomer: strings.TrimSpace(p.OwningCustomer),
		line1:          strings.TrimSpace(p.Line1),
		line2:          strings.TrimSpace(p.Line2),
		postalCode:     strings.TrimSpace(p.PostalCode),
		city:           strings.TrimSpace(p.City),
		isConstructed:  true,
	}
}

// Validate ensures the Address was created through NewAddress.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a *Address) ID() string               { return a.id }
func (a *Address) OwningCustomerID() string { return a.owningCustomer }
func (a *Address) Line1() string            { return a.line1 }
func (a *Address) Line2() string            { return a.line2 }
func (a *Address) PostalCode() string       { return a.postalCode }
func (a *Address) City() string             { return a.city }
