package customer

import (
	"errors"
	"net/mail"
	"strings"

	"shipconfirm/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created through NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the buyer of an order and the target of its shipment email.
type Customer struct {
	id            string
	firstName     string
	lastName      string
	email         string
	isConstructed bool
}

// NewCustomer creates a Customer. The email is required and must parse as an
// address because it is used as the send target.
func NewCustomer(id, firstName, lastName, email string) (*Customer, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errs.NewValueIsRequiredError("customer email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("customer email", err)
	}

	return &Customer{
		id:            strings.TrimSpace(id),
		firstName:     strings.TrimSpace(firstName),
		lastName:      strings.TrimSpace(lastName),
		email:         email,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() string        { return c.id }
func (c *Customer) FirstName() string { return c.firstName }
func (c *Customer) LastName() string  { return c.lastName }
func (c *Customer) Email() string     { return c.email }

// FullName joins first and last name.
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.firstName + " " + c.lastName)
}
