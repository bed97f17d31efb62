// Package services provides the domain services of the shipment confirmation
// workflow. They are pure functions over domain values with no I/O of their own.
//
// The package includes:
//   - OrderNormalizer: turns decoded order documents into uniform order records
//   - OrdersWithTracking: keeps only orders that carry a carrier tracking number
//   - ProjectCustomer, ProjectAddress: extract customer and address records
//   - ResolveRecipient: routes customer mail by environment mode
//   - ComposeShipmentMessage: builds the customer-facing confirmation email
//   - BuildRunSummary, BuildCriticalNotification: shape operational notifications
package services
