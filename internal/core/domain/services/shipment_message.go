package services

import (
	"fmt"
	"slices"

	"shipconfirm/internal/core/domain/model/email"
)

// ShipmentSubjectFormat is the subject of the customer-facing confirmation.
const ShipmentSubjectFormat = "Confirmación de envío de tu pedido %s"

// ComposeShipmentMessage builds the confirmation email for an order with a
// single HTML body.
func ComposeShipmentMessage(reference string, to Recipients, html string) (email.Message, error) {
	msg := email.Message{
		To:       []string{to.Primary},
		Bcc:      slices.Clone(to.Bcc),
		Subject:  fmt.Sprintf(ShipmentSubjectFormat, reference),
		HTMLBody: html,
	}
	if err := msg.Validate(); err != nil {
		return email.Message{}, err
	}
	return msg, nil
}
