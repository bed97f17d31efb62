package order

import (
	"errors"
	"strings"

	"shipconfirm/internal/core/domain/model/kernel"
	"shipconfirm/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or FromRecord.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a purchase order pending shipment confirmation.
//
// Order follows these invariants:
//   - Must have a non-empty identifier
//   - Must have a non-empty reference, used in the customer-facing subject
//   - Must have a non-empty, trimmed tracking number
//   - Customer and delivery address links may be absent; resolving them is a
//     separate step that fails when either is missing
//
// The attributes map keeps the complete raw document so the template service
// can render any field of the order.
type Order struct {
	// id is the identifier assigned by the order-management system
	id string

	// reference is the human-readable order code
	reference string

	// trackingNumber is the carrier tracking number
	trackingNumber string

	// customerLink points at the customer resource (zero if absent)
	customerLink kernel.Link

	// addressLink points at the delivery address resource (zero if absent)
	addressLink kernel.Link

	// attributes is the raw order document
	attributes Record

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order with validation.
//
// Parameters:
//   - id: Order identifier (required)
//   - reference: Human-readable order code (required)
//   - trackingNumber: Carrier tracking number (required, trimmed)
//   - customerLink, addressLink: Links to related resources (may be zero)
//   - attributes: Raw order document (may be nil)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: All validation errors joined together otherwise
func NewOrder(
	id, reference, trackingNumber string,
	customerLink, addressLink kernel.Link,
	attributes Record,
) (*Order, error) {
	o := &Order{
		customerLink:  customerLink,
		addressLink:   addressLink,
		attributes:    attributes.Clone(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setReference(reference),
		o.setTrackingNumber(trackingNumber),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// FromRecord builds an Order out of a raw order document, coercing every
// text-bearing field and extracting the customer and delivery address links.
//
// Example:
//
//	rec := order.Record{
//	    "id":                  "10",
//	    "reference":           "A100",
//	    "shipping_number":     map[string]any{"_": "TRK123"},
//	    "id_customer":         map[string]any{"@xlink:href": "/customers/5"},
//	    "id_address_delivery": map[string]any{"@xlink:href": "/addresses/7"},
//	}
//	o, err := order.FromRecord(rec)
func FromRecord(rec Record) (*Order, error) {
	customerLink, _ := kernel.ExtractLink(rec.Field(FieldCustomer))
	addressLink, _ := kernel.ExtractLink(rec.Field(FieldAddressDelivery))

	return NewOrder(
		rec.ID(),
		kernel.CoerceText(rec.Field(FieldReference)),
		rec.TrackingNumber(),
		customerLink,
		addressLink,
		rec,
	)
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier.
func (o *Order) ID() string {
	return o.id
}

// Reference returns the human-readable order code.
func (o *Order) Reference() string {
	return o.reference
}

// TrackingNumber returns the carrier tracking number.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// CustomerLink returns the link to the customer, zero if the order had none.
func (o *Order) CustomerLink() kernel.Link {
	return o.customerLink
}

// AddressLink returns the link to the delivery address, zero if the order had none.
func (o *Order) AddressLink() kernel.Link {
	return o.addressLink
}

// Attributes returns a copy of the raw order document.
func (o *Order) Attributes() Record {
	return o.attributes.Clone()
}

func (o *Order) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setReference(reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return errs.NewValueIsRequiredError("order reference")
	}
	o.reference = reference
	return nil
}

func (o *Order) setTrackingNumber(trackingNumber string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	o.trackingNumber = trackingNumber
	return nil
}
