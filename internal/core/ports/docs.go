// Package ports declares the contracts between the shipment confirmation core
// and the outside world: the order-management API, the template service,
// mail transports, notification channels and metrics.
package ports
