package commands_test

import (
	"context"
	"time"

	"shipconfirm/internal/core/domain/model/customer"
	"shipconfirm/internal/core/domain/model/email"
	"shipconfirm/internal/core/domain/model/kernel"
	"shipconfirm/internal/core/domain/model/notification"
	"shipconfirm/internal/core/domain/model/order"
	"shipconfirm/internal/core/domain/model/run"

	"github.com/stretchr/testify/mock"
)

type MockOrderSource struct{ mock.Mock }

func (m *MockOrderSource) FetchPendingOrders(ctx context.Context) (map[string]any, error) {
	args := m.Called(ctx)
	doc, _ := args.Get(0).(map[string]any)
	return doc, args.Error(1)
}

type MockEntityFetcher struct{ mock.Mock }

func (m *MockEntityFetcher) FetchEntity(ctx context.Context, link kernel.Link) (map[string]any, error) {
	args := m.Called(ctx, link)
	doc, _ := args.Get(0).(map[string]any)
	return doc, args.Error(1)
}

type MockTemplateRenderer struct{ mock.Mock }

func (m *MockTemplateRenderer) RenderShipment(
	ctx context.Context,
	rec order.Record,
	c *customer.Customer,
	a *customer.Address,
) (string, error) {
	args := m.Called(ctx, rec, c, a)
	return args.String(0), args.Error(1)
}

type MockMailSender struct{ mock.Mock }

func (m *MockMailSender) Send(ctx context.Context, msg email.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockOrderStateWriter struct{ mock.Mock }

func (m *MockOrderStateWriter) AdvanceState(ctx context.Context, orderID string, state order.State) error {
	args := m.Called(ctx, orderID, state)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockRunObserver struct{ mock.Mock }

func (m *MockRunObserver) ObserveRun(outcome run.Outcome, duration time.Duration) {
	m.Called(outcome, duration)
}

func (m *MockRunObserver) ObserveOrder(success bool) {
	m.Called(success)
}

func (m *MockRunObserver) ObserveStateDrift() {
	m.Called()
}
