package services

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"shipconfirm/internal/core/domain/model/customer"
	"shipconfirm/internal/core/domain/model/kernel"
	"shipconfirm/internal/core/domain/model/order"
	"shipconfirm/internal/pkg/errs"
)

// Node names of order-management documents.
const (
	RootNode     = "prestashop"
	OrdersNode   = "orders"
	OrderNode    = "order"
	CustomerNode = "customer"
	AddressNode  = "address"
)

// OrderNormalizer turns decoded order-management documents into order records.
//
// The upstream format collapses a collection of one into a single object, omits
// empty collections entirely and is otherwise loose about shapes. The
// normalizer absorbs all of that: no pending orders, a single order and many
// orders all come out as a plain slice, and unexpected shapes are logged and
// treated as "no orders" rather than failing the run.
//
// Example usage:
//
//	normalizer := services.NewOrderNormalizer(logger)
//	records := normalizer.NormalizeOrders(ctx, doc)
//	candidates := services.OrdersWithTracking(records)
type OrderNormalizer struct {
	logger *slog.Logger
}

// NewOrderNormalizer creates a normalizer that reports shape problems to logger.
func NewOrderNormalizer(logger *slog.Logger) OrderNormalizer {
	return OrderNormalizer{logger: logger.With("component", "order_normalizer")}
}

// NormalizeOrders locates prestashop/orders/order in doc and returns its
// orders in document order.
//
// Returns:
//   - empty slice when the root or the orders collection is absent
//   - a one-element slice when a single order was collapsed into an object
//   - one record per element when the collection holds several orders
//   - empty slice, with a warning, for any other shape
func (n OrderNormalizer) NormalizeOrders(ctx context.Context, doc map[string]any) []order.Record {
	if len(doc) == 0 {
		n.logger.WarnContext(ctx, "Empty document received")
		return []order.Record{}
	}

	root, ok := doc[RootNode].(map[string]any)
	if !ok {
		n.logger.WarnContext(ctx, "Root node not found in document", "root", RootNode, "keys", slices.Sorted(maps.Keys(doc)))
		return []order.Record{}
	}

	ordersNode, present := root[OrdersNode]
	if !present || isEmptyNode(ordersNode) {
		n.logger.InfoContext(ctx, "No orders node in document, nothing pending")
		return []order.Record{}
	}

	collection, ok := ordersNode.(map[string]any)
	if !ok {
		n.logger.WarnContext(ctx, "Unexpected shape for orders node", "type", fmt.Sprintf("%T", ordersNode))
		return []order.Record{}
	}

	switch v := collection[OrderNode].(type) {
	case nil:
		return []order.Record{}
	case map[string]any:
		n.logger.DebugContext(ctx, "Single order found, wrapping into a list")
		return []order.Record{order.Record(v)}
	case []any:
		records := make([]order.Record, 0, len(v))
		for i, item := range v {
			m, isMap := item.(map[string]any)
			if !isMap {
				n.logger.WarnContext(ctx, "Unexpected shape for order element",
					"index", i, "type", fmt.Sprintf("%T", item))
				return []order.Record{}
			}
			records = append(records, order.Record(m))
		}
		n.logger.DebugContext(ctx, "Orders found", "count", len(records))
		return records
	default:
		n.logger.WarnContext(ctx, "Unexpected shape for order node", "type", fmt.Sprintf("%T", v))
		return []order.Record{}
	}
}

// ProjectCustomer extracts the customer record of a customer document.
func ProjectCustomer(doc map[string]any) (*customer.Customer, error) {
	fields, err := entityFields(doc, CustomerNode)
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(
		kernel.CoerceText(fields["id"]),
		kernel.CoerceText(fields["firstname"]),
		kernel.CoerceText(fields["lastname"]),
		kernel.CoerceText(fields["email"]),
	)
}

// ProjectAddress extracts the address record of an address document.
func ProjectAddress(doc map[string]any) (*customer.Address, error) {
	fields, err := entityFields(doc, AddressNode)
	if err != nil {
		return nil, err
	}

	return customer.NewAddress(customer.AddressParams{
		ID:             kernel.CoerceText(fields["id"]),
		OwningCustomer: kernel.CoerceText(fields["id_customer"]),
		Line1:          kernel.CoerceText(fields["address1"]),
		Line2:          kernel.CoerceText(fields["address2"]),
		PostalCode:     kernel.CoerceText(fields["postcode"]),
		City:           kernel.CoerceText(fields["city"]),
	}), nil
}

func entityFields(doc map[string]any, node string) (map[string]any, error) {
	root, ok := doc[RootNode].(map[string]any)
	if !ok {
		return nil, errs.NewMalformedResponseErrorWithCause(node, fmt.Errorf("missing %s root", RootNode))
	}
	fields, ok := root[node].(map[string]any)
	if !ok {
		return nil, errs.NewMalformedResponseErrorWithCause(node, fmt.Errorf("missing %s node", node))
	}
	return fields, nil
}

func isEmptyNode(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case string:
		return n == ""
	case map[string]any:
		return len(n) == 0
	default:
		return false
	}
}
