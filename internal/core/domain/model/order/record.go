package order

import (
	"maps"
	"strings"

	"shipconfirm/internal/core/domain/model/kernel"
)

// Field names of an order document.
const (
	FieldID              = "id"
	FieldReference       = "reference"
	FieldTrackingNumber  = "shipping_number"
	FieldCustomer        = "id_customer"
	FieldAddressDelivery = "id_address_delivery"
)

// Record is one order exactly as decoded from the order-management API.
// Its fields keep their raw shapes; accessors coerce them on read.
type Record map[string]any

// Field returns the raw value of a field, nil when absent.
func (r Record) Field(name string) any {
	return r[name]
}

// ID returns the order identifier as text.
func (r Record) ID() string {
	return strings.TrimSpace(kernel.CoerceText(r[FieldID]))
}

// TrackingNumber returns the trimmed tracking number, "" when absent.
func (r Record) TrackingNumber() string {
	return strings.TrimSpace(kernel.CoerceText(r[FieldTrackingNumber]))
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	return maps.Clone(r)
}
