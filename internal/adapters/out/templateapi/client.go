// Package templateapi renders customer emails through the remote template service.
package templateapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"shipconfirm/internal/core/domain/model/customer"
	"shipconfirm/internal/core/domain/model/order"
	"shipconfirm/internal/core/ports"
	"shipconfirm/internal/pkg/errs"
)

// ErrNoHTML is returned when the service answers without an HTML body.
var ErrNoHTML = errors.New("template service returned no html")

type renderRequest struct {
	Order    order.Record    `json:"order"`
	Customer customerPayload `json:"customer"`
	Address  addressPayload  `json:"address"`
}

type customerPayload struct {
	ID        string `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
}

type addressPayload struct {
	ID         string `json:"id"`
	CustomerID string `json:"id_customer"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	Postcode   string `json:"postcode"`
	City       string `json:"city"`
}

type renderResponse struct {
	Body struct {
		HTML string `json:"html"`
	} `json:"body"`
}

// Client calls the template service.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *slog.Logger
}

var _ ports.TemplateRenderer = (*Client)(nil)

// NewClient creates a client posting to endpoint with the given request timeout.
func NewClient(endpoint string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if endpoint == "" {
		return nil, errs.NewValueIsRequiredError("template api url")
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		logger:   logger.With("component", "template_api"),
	}, nil
}

// RenderShipment posts the order, customer and address and returns body.html
// of the response.
func (c *Client) RenderShipment(
	ctx context.Context,
	rec order.Record,
	cust *customer.Customer,
	addr *customer.Address,
) (string, error) {
	payload, err := json.Marshal(renderRequest{
		Order: rec,
		Customer: customerPayload{
			ID:        cust.ID(),
			FirstName: cust.FirstName(),
			LastName:  cust.LastName(),
			Email:     cust.Email(),
		},
		Address: addressPayload{
			ID:         addr.ID(),
			CustomerID: addr.OwningCustomerID(),
			Address1:   addr.Line1(),
			Address2:   addr.Line2(),
			Postcode:   addr.PostalCode(),
			City:       addr.City(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode render request: %w", err)
	}

	c.logger.DebugContext(ctx, "Rendering shipment template", "order_id", rec.ID())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("template service returned status %d", resp.StatusCode)
	}

	var out renderResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode render response: %w", err)
	}
	if out.Body.HTML == "" {
		return "", ErrNoHTML
	}
	return out.Body.HTML, nil
}
