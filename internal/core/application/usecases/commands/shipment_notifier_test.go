package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"shipconfirm/internal/core/application/usecases/commands"
	"shipconfirm/internal/core/domain/model/customer"
	"shipconfirm/internal/core/domain/model/email"
	"shipconfirm/internal/core/domain/model/order"
	"shipconfirm/internal/core/domain/services"
	"shipconfirm/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jane(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("5", "Jane", "Doe", "jane@example.com")
	require.NoError(t, err)
	return c
}

func madrid() *customer.Address {
	return customer.NewAddress(customer.AddressParams{ID: "7", OwningCustomer: "5", City: "Madrid"})
}

func TestShipmentNotifier_Render(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	o := newOrder(t, rawOrder("10", "A100", "TRK"))

	t.Run("renderer error", func(t *testing.T) {
		renderer := new(MockTemplateRenderer)
		renderer.On("RenderShipment", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("status 502")).Once()

		_, err := commands.NewShipmentNotifier(renderer, new(MockMailSender), production(), logger).
			Render(t.Context(), o, jane(t), madrid())

		require.ErrorIs(t, err, errs.ErrTemplateRender)
		assert.Contains(t, err.Error(), "status 502")
	})

	t.Run("empty html", func(t *testing.T) {
		renderer := new(MockTemplateRenderer)
		renderer.On("RenderShipment", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", nil).Once()

		_, err := commands.NewShipmentNotifier(renderer, new(MockMailSender), production(), logger).
			Render(t.Context(), o, jane(t), madrid())

		require.ErrorIs(t, err, errs.ErrTemplateRender)
	})
}

func TestShipmentNotifier_Send(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	o := newOrder(t, rawOrder("10", "A100", "TRK"))

	t.Run("production delivers to customer with bcc", func(t *testing.T) {
		sender := new(MockMailSender)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(m email.Message) bool {
			return m.To[0] == "jane@example.com" &&
				len(m.Envelope()) == 2 &&
				m.Subject == "Confirmación de envío de tu pedido A100"
		})).Return(nil).Once()

		err := commands.NewShipmentNotifier(new(MockTemplateRenderer), sender, production(), logger).
			Send(t.Context(), o, jane(t), "<p>ok</p>")

		require.NoError(t, err)
		sender.AssertExpectations(t)
	})

	t.Run("missing test recipient outside production", func(t *testing.T) {
		sender := new(MockMailSender)
		policy := commands.RecipientPolicy{Environment: services.Development}

		err := commands.NewShipmentNotifier(new(MockTemplateRenderer), sender, policy, logger).
			Send(t.Context(), o, jane(t), "<p>ok</p>")

		require.ErrorIs(t, err, errs.ErrMailSend)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("transport failure", func(t *testing.T) {
		sender := new(MockMailSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("dial tcp: timeout")).Once()

		err := commands.NewShipmentNotifier(new(MockTemplateRenderer), sender, production(), logger).
			Send(t.Context(), o, jane(t), "<p>ok</p>")

		require.ErrorIs(t, err, errs.ErrMailSend)
		var sendErr *errs.MailSendError
		require.ErrorAs(t, err, &sendErr)
		assert.Equal(t, "jane@example.com", sendErr.Recipient)
	})
}

func TestShipmentNotifier_RenderAndSend(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	o := newOrder(t, rawOrder("10", "A100", "TRK"))

	t.Run("renders then sends the rendered body", func(t *testing.T) {
		renderer := new(MockTemplateRenderer)
		sender := new(MockMailSender)
		renderer.On("RenderShipment", mock.Anything, mock.Anything, jane(t), madrid()).
			Return("<p>enviado</p>", nil).Once()
		sender.On("Send", mock.Anything, mock.MatchedBy(func(m email.Message) bool {
			return m.HTMLBody == "<p>enviado</p>" && m.To[0] == "jane@example.com"
		})).Return(nil).Once()
		mock.InOrder(renderer.ExpectedCalls[0], sender.ExpectedCalls[0])

		err := commands.NewShipmentNotifier(renderer, sender, production(), logger).
			RenderAndSend(t.Context(), o, jane(t), madrid())

		require.NoError(t, err)
		renderer.AssertExpectations(t)
		sender.AssertExpectations(t)
	})

	t.Run("render failure sends nothing", func(t *testing.T) {
		renderer := new(MockTemplateRenderer)
		sender := new(MockMailSender)
		renderer.On("RenderShipment", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", nil).Once()

		err := commands.NewShipmentNotifier(renderer, sender, production(), logger).
			RenderAndSend(t.Context(), o, jane(t), madrid())

		require.ErrorIs(t, err, errs.ErrTemplateRender)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("send failure is returned", func(t *testing.T) {
		renderer := new(MockTemplateRenderer)
		sender := new(MockMailSender)
		renderer.On("RenderShipment", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("<p>ok</p>", nil).Once()
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

		err := commands.NewShipmentNotifier(renderer, sender, production(), logger).
			RenderAndSend(t.Context(), o, jane(t), madrid())

		require.ErrorIs(t, err, errs.ErrMailSend)
	})
}

func TestStateTransitioner_AdvanceToShipped(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("requests shipped state", func(t *testing.T) {
		writer := new(MockOrderStateWriter)
		writer.On("AdvanceState", mock.Anything, "10", order.Shipped).Return(nil).Once()

		err := commands.NewStateTransitioner(writer, logger).AdvanceToShipped(t.Context(), "10")

		require.NoError(t, err)
		writer.AssertExpectations(t)
	})

	t.Run("remote failure", func(t *testing.T) {
		writer := new(MockOrderStateWriter)
		writer.On("AdvanceState", mock.Anything, "10", mock.Anything).Return(errors.New("status 500")).Once()

		err := commands.NewStateTransitioner(writer, logger).AdvanceToShipped(t.Context(), "10")

		require.ErrorIs(t, err, errs.ErrStateTransition)
		var stateErr *errs.StateTransitionError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, "10", stateErr.OrderID)
		assert.Equal(t, 4, stateErr.State)
	})
}
