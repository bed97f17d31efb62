// Package prestashop implements the order-management ports against the
// PrestaShop webservice API.
package prestashop

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shipconfirm/internal/core/domain/model/kernel"
	"shipconfirm/internal/core/domain/model/order"
	"shipconfirm/internal/core/ports"
	"shipconfirm/internal/pkg/errs"

	"golang.org/x/time/rate"
)

const (
	ordersResource         = "orders"
	orderHistoriesResource = "order_histories"
	maxLoggedBody          = 500
)

// Config configures the webservice client.
type Config struct {
	// BaseURL is the webservice root, e.g. https://shop.example.com/api.
	BaseURL  string
	Username string
	Password string
	// PaymentMethods restricts pending orders to these payment methods.
	PaymentMethods []string
	// EmployeeID is recorded as the author of state changes.
	EmployeeID int
	// Timeout bounds every request.
	Timeout time.Duration
	// RateLimit is the maximum number of requests per second; zero disables limiting.
	RateLimit float64
}

// Client talks to the PrestaShop webservice using XML and HTTP basic auth.
type Client struct {
	baseURL        *url.URL
	username       string
	password       string
	paymentMethods []string
	employeeID     int
	http           *http.Client
	limiter        *rate.Limiter
	logger         *slog.Logger
}

var (
	_ ports.OrderSource      = (*Client)(nil)
	_ ports.EntityFetcher    = (*Client)(nil)
	_ ports.OrderStateWriter = (*Client)(nil)
)

// NewClient validates cfg and creates a client.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errs.NewValueIsInvalidErrorWithCause("prestashop base url", err)
	}
	if cfg.Username == "" {
		return nil, errs.NewValueIsRequiredError("prestashop username")
	}
	if cfg.EmployeeID <= 0 {
		return nil, errs.NewValueIsInvalidError("prestashop employee id")
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return &Client{
		baseURL:        base,
		username:       cfg.Username,
		password:       cfg.Password,
		paymentMethods: cfg.PaymentMethods,
		employeeID:     cfg.EmployeeID,
		http:           &http.Client{Timeout: cfg.Timeout},
		limiter:        limiter,
		logger:         logger.With("component", "prestashop_client"),
	}, nil
}

// FetchPendingOrders lists orders in preparation paid with one of the
// configured payment methods, with all fields displayed.
func (c *Client) FetchPendingOrders(ctx context.Context) (map[string]any, error) {
	params := url.Values{}
	if len(c.paymentMethods) > 0 {
		params.Set("filter[payment]", "["+strings.Join(c.paymentMethods, "|")+"]")
	}
	params.Set("filter[current_state]", fmt.Sprintf("[%d]", order.InPreparation.Code()))
	params.Set("display", "full")

	endpoint := c.resourceURL(ordersResource)
	endpoint.RawQuery = params.Encode()

	c.logger.InfoContext(ctx, "Querying pending shipment orders", "url", endpoint.Redacted())

	body, err := c.do(ctx, ordersResource, http.MethodGet, endpoint.String(), nil, "")
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		c.logger.WarnContext(ctx, "Order source returned an empty response")
		return map[string]any{}, nil
	}

	doc, err := decodeTree(body)
	if err != nil {
		c.logger.DebugContext(ctx, "Unparsable order response", "body", truncate(body))
		return nil, errs.NewMalformedResponseErrorWithCause(ordersResource, err)
	}
	return doc, nil
}

// FetchEntity fetches the resource a link points at. Relative links are
// resolved against the webservice root.
func (c *Client) FetchEntity(ctx context.Context, link kernel.Link) (map[string]any, error) {
	target, err := c.resolve(link)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("resource link", err)
	}

	c.logger.DebugContext(ctx, "Fetching linked resource", "url", target)

	body, err := c.do(ctx, link.String(), http.MethodGet, target, nil, "")
	if err != nil {
		return nil, err
	}

	doc, err := decodeTree(body)
	if err != nil {
		return nil, errs.NewMalformedResponseErrorWithCause(link.String(), err)
	}
	return doc, nil
}

// AdvanceState records a new order_history entry moving orderID to state.
func (c *Client) AdvanceState(ctx context.Context, orderID string, state order.State) error {
	if err := state.Validate(); err != nil {
		return err
	}

	payload, err := orderHistoryPayload(orderID, c.employeeID, state.Code())
	if err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "Updating order state", "order_id", orderID, "state", state.Code())

	endpoint := c.resourceURL(orderHistoriesResource)
	_, err = c.do(ctx, orderHistoriesResource, http.MethodPost, endpoint.String(), payload, "application/xml")
	return err
}

func (c *Client) do(
	ctx context.Context,
	resource, method, target string,
	payload []byte,
	contentType string,
) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errs.NewSourceUnreachableErrorWithCause(resource, err)
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, errs.NewSourceUnreachableErrorWithCause(resource, err)
	}
	req.SetBasicAuth(c.username, c.password)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.NewSourceUnreachableErrorWithCause(resource, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewSourceUnreachableErrorWithCause(resource, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.DebugContext(ctx, "Order source returned an error",
			"status", resp.StatusCode, "body", truncate(body))
		return nil, errs.NewSourceUnreachableErrorWithCause(resource,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	return body, nil
}

func (c *Client) resourceURL(resource string) *url.URL {
	return c.baseURL.JoinPath(resource)
}

func (c *Client) resolve(link kernel.Link) (string, error) {
	ref, err := url.Parse(link.String())
	if err != nil {
		return "", err
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}

	basePath := strings.TrimRight(c.baseURL.Path, "/")
	if basePath != "" && strings.HasPrefix(ref.Path, basePath+"/") {
		return c.baseURL.ResolveReference(ref).String(), nil
	}
	resolved := c.baseURL.JoinPath(strings.TrimLeft(ref.Path, "/"))
	resolved.RawQuery = ref.RawQuery
	return resolved.String(), nil
}

func truncate(body []byte) string {
	if len(body) > maxLoggedBody {
		return string(body[:maxLoggedBody])
	}
	return string(body)
}
