package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves every order visible to the actor, newest first.
// Admins and delivery people see their company's orders; super admins see
// all of them.
type ListOrdersQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the actor's order list.
func NewListOrdersQuery(actor kernel.Actor) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q ListOrdersQuery) Actor() kernel.Actor {
	return q.actor
}
