package services

import "shipconfirm/internal/core/domain/model/order"

// OrdersWithTracking returns the records whose tracking number is non-empty
// after text coercion and trimming. Input order is preserved and the input
// slice and records are left untouched.
func OrdersWithTracking(records []order.Record) []order.Record {
	kept := make([]order.Record, 0, len(records))
	for _, rec := range records {
		if rec.TrackingNumber() != "" {
			kept = append(kept, rec)
		}
	}
	return kept
}
