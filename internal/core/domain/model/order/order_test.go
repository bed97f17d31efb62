package order_test

import (
	"testing"

	"shipconfirm/internal/core/domain/model/kernel"
	"shipconfirm/internal/core/domain/model/order"
	"shipconfirm/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() order.Record {
	return order.Record{
		"id":                  "10",
		"reference":           "A100",
		"shipping_number":     map[string]any{"_": " TRK123 "},
		"id_customer":         map[string]any{"@xlink:href": "/customers/5", "#text": "5"},
		"id_address_delivery": map[string]any{"@xlink:href": "/addresses/7", "#text": "7"},
		"total_paid":          "49.90",
	}
}

func TestFromRecord(t *testing.T) {
	t.Run("builds order from raw record", func(t *testing.T) {
		// Act
		o, err := order.FromRecord(sampleRecord())

		// Assert
		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "10", o.ID())
		assert.Equal(t, "A100", o.Reference())
		assert.Equal(t, "TRK123", o.TrackingNumber())
		assert.Equal(t, "/customers/5", o.CustomerLink().String())
		assert.Equal(t, "/addresses/7", o.AddressLink().String())
		assert.Equal(t, "49.90", o.Attributes()["total_paid"])
	})

	t.Run("missing links stay zero", func(t *testing.T) {
		rec := sampleRecord()
		delete(rec, "id_address_delivery")

		o, err := order.FromRecord(rec)

		require.NoError(t, err)
		assert.True(t, o.AddressLink().IsZero())
		assert.False(t, o.CustomerLink().IsZero())
	})

	t.Run("joins validation errors", func(t *testing.T) {
		o, err := order.FromRecord(order.Record{"shipping_number": ""})

		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "order id")
		assert.Contains(t, err.Error(), "order reference")
		assert.Contains(t, err.Error(), "tracking number")
	})

	t.Run("attributes are a copy", func(t *testing.T) {
		rec := sampleRecord()
		o, err := order.FromRecord(rec)
		require.NoError(t, err)

		attrs := o.Attributes()
		attrs["reference"] = "changed"
		rec["reference"] = "changed too"

		assert.Equal(t, "A100", o.Attributes()["reference"])
	})
}

func TestNewOrder(t *testing.T) {
	link, err := kernel.NewLink("/customers/5")
	require.NoError(t, err)

	o, err := order.NewOrder("10", "A100", "TRK", link, kernel.Link{}, nil)

	require.NoError(t, err)
	assert.Nil(t, o.Attributes())
	assert.True(t, o.AddressLink().IsZero())
}

func TestOrder_Validate_ZeroValue(t *testing.T) {
	var o *order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestRecord(t *testing.T) {
	rec := order.Record{"id": map[string]any{"#text": " 12 "}, "shipping_number": "   "}

	assert.Equal(t, "12", rec.ID())
	assert.Empty(t, rec.TrackingNumber())
	assert.Nil(t, rec.Field("missing"))
}

func TestState(t *testing.T) {
	t.Run("in preparation ships", func(t *testing.T) {
		next, err := order.InPreparation.Ship()

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, next)
		assert.Equal(t, 4, next.Code())
	})

	t.Run("other states cannot ship", func(t *testing.T) {
		for _, s := range []order.State{order.Shipped, order.Unknown, order.State(7)} {
			next, err := s.Ship()

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, order.Unknown, next)
		}
	})

	t.Run("validate and string", func(t *testing.T) {
		require.NoError(t, order.InPreparation.Validate())
		require.NoError(t, order.Shipped.Validate())
		require.Error(t, order.State(5).Validate())
		assert.Equal(t, "InPreparation", order.InPreparation.String())
		assert.Equal(t, "Shipped", order.Shipped.String())
		assert.Equal(t, "Unknown", order.State(9).String())
	})
}
