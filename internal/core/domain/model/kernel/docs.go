// Package kernel provides the domain primitives shared by the order, customer
// and run models of the shipment confirmation service.
//
// The package includes:
//   - RunID: A value object identifying one execution of the shipment run
//   - TextField: A tagged union for text-bearing payload fields that arrive either
//     as a bare value, as a mapping wrapping the text, or not at all
//   - Link: A resource link embedded in one entity pointing at another
//
// The upstream order-management system answers in XML. Its documents are decoded
// into nested map[string]any trees where element text lives under "#text" (or "_"
// in the shape produced by some gateways) and attributes are prefixed with "@".
// Everything in this package is pure and never panics on unexpected shapes.
package kernel
