package commands_test

import (
	"testing"

	"shipconfirm/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func link(t *testing.T, href string) kernel.Link {
	t.Helper()
	l, err := kernel.NewLink(href)
	require.NoError(t, err)
	return l
}

func rawOrder(id, reference, tracking string) map[string]any {
	return map[string]any{
		"id":                  id,
		"reference":           reference,
		"shipping_number":     map[string]any{"_": tracking},
		"id_customer":         map[string]any{"@xlink:href": "/customers/5"},
		"id_address_delivery": map[string]any{"@xlink:href": "/addresses/7"},
	}
}

func ordersDoc(orders ...map[string]any) map[string]any {
	var node any
	switch len(orders) {
	case 0:
		return map[string]any{"prestashop": map[string]any{"orders": nil}}
	case 1:
		node = orders[0]
	default:
		list := make([]any, 0, len(orders))
		for _, o := range orders {
			list = append(list, o)
		}
		node = list
	}
	return map[string]any{"prestashop": map[string]any{"orders": map[string]any{"order": node}}}
}

func customerDoc() map[string]any {
	return map[string]any{"prestashop": map[string]any{"customer": map[string]any{
		"id":        "5",
		"firstname": "Jane",
		"lastname":  "Doe",
		"email":     "jane@example.com",
	}}}
}

func addressDoc() map[string]any {
	return map[string]any{"prestashop": map[string]any{"address": map[string]any{
		"id":          "7",
		"id_customer": map[string]any{"@xlink:href": "/customers/5", "#text": "5"},
		"address1":    "Calle Mayor 1",
		"postcode":    "28001",
		"city":        "Madrid",
	}}}
}
