package commands

import (
	"context"
	"errors"
	"log/slog"

	"shipconfirm/internal/core/domain/model/customer"
	"shipconfirm/internal/core/domain/model/kernel"
	"shipconfirm/internal/core/domain/model/order"
	"shipconfirm/internal/core/domain/services"
	"shipconfirm/internal/core/ports"
	"shipconfirm/internal/pkg/errs"
)

// Entity kinds reported by errs.EntityFetchError.
const (
	EntityCustomer = "customer"
	EntityAddress  = "address"
)

// ReferenceResolver fetches the customer and delivery address an order links to.
type ReferenceResolver struct {
	fetcher ports.EntityFetcher
	logger  *slog.Logger
}

// NewReferenceResolver creates a resolver backed by fetcher.
func NewReferenceResolver(fetcher ports.EntityFetcher, logger *slog.Logger) ReferenceResolver {
	return ReferenceResolver{
		fetcher: fetcher,
		logger:  logger.With("component", "reference_resolver"),
	}
}

// Resolve returns the customer and address of o.
//
// Missing links fail with errs.MissingReferenceError before anything is
// fetched. Otherwise both entities are fetched even if the first one fails;
// every failure is reported as errs.EntityFetchError and the failures are
// joined together.
func (r ReferenceResolver) Resolve(ctx context.Context, o *order.Order) (*customer.Customer, *customer.Address, error) {
	var missing []error
	if o.CustomerLink().IsZero() {
		missing = append(missing, errs.NewMissingReferenceError(o.ID(), order.FieldCustomer))
	}
	if o.AddressLink().IsZero() {
		missing = append(missing, errs.NewMissingReferenceError(o.ID(), order.FieldAddressDelivery))
	}
	if len(missing) > 0 {
		return nil, nil, errors.Join(missing...)
	}

	c, customerErr := fetchEntity(ctx, r.fetcher, EntityCustomer, o.CustomerLink(), services.ProjectCustomer)
	a, addressErr := fetchEntity(ctx, r.fetcher, EntityAddress, o.AddressLink(), services.ProjectAddress)
	if err := errors.Join(customerErr, addressErr); err != nil {
		return nil, nil, err
	}

	r.logger.DebugContext(ctx, "References resolved",
		"order_id", o.ID(), "customer_id", c.ID(), "address_id", a.ID())
	return c, a, nil
}

func fetchEntity[T any](
	ctx context.Context,
	fetcher ports.EntityFetcher,
	kind string,
	link kernel.Link,
	project func(map[string]any) (T, error),
) (T, error) {
	var zero T

	doc, err := fetcher.FetchEntity(ctx, link)
	if err != nil {
		return zero, errs.NewEntityFetchErrorWithCause(kind, link.String(), err)
	}

	entity, err := project(doc)
	if err != nil {
		return zero, errs.NewEntityFetchErrorWithCause(kind, link.String(), err)
	}
	return entity, nil
}
