// Package order provides the Order entity of the shipment confirmation service.
//
// The package includes:
//   - Record: a raw order as decoded from the order-management API, before validation
//   - Order: a read-only snapshot of an order that carries a tracking number
//   - State: the two order states this service observes and writes
//
// Orders are fetched once per run and never mutated locally. Their only visible
// mutation is the remote move from InPreparation to Shipped.
package order
