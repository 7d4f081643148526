package services

import (
	"fmt"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"
)

// deliveryAllowedFields is the complete set of fields a delivery person may
// submit. Everything else is reserved for admins.
var deliveryAllowedFields = map[order.Field]bool{
	order.FieldStatusCode: true,
	order.FieldLat:        true,
	order.FieldLng:        true,
}

// TransitionGuard decides whether a proposed order mutation is allowed before
// it reaches storage. It is a pure decision function over immutable inputs:
// the current order, the requesting actor, and the proposed change set. It
// performs no I/O and has no side effects.
//
// The rules are applied in a fixed sequence; the first violation wins:
//
//  1. company scoping (super admins bypass); violations surface as NotFound
//     so callers cannot probe for orders across tenants
//  2. delivery-role field whitelist: Forbidden, naming every offending field
//  3. delivery-role assignment ownership: Forbidden
//  4. terminal locks (archived always, completed except a lone completed
//     resubmission): InvalidState
//  5. requested status code must exist in the registry: InvalidInput
//  6. successor policy: InvalidState
//
// Example:
//
//	guard := services.NewTransitionGuard()
//	err := guard.Authorize(ord, currentStatus, actor, changes, requestedStatus)
//	if err != nil {
//	    return err // carries one of the errs sentinels
//	}
type TransitionGuard struct{}

// NewTransitionGuard creates a guard. The guard is stateless; a single
// instance is safe for concurrent use.
func NewTransitionGuard() *TransitionGuard {
	return &TransitionGuard{}
}

// Authorize validates a proposed mutation. currentStatus is the resolved
// status the order carries now. requestedStatus is the registry entry the
// proposed status code resolved to, or nil when the change set carries a code
// that resolved to nothing; it is ignored when no status change is proposed.
func (g *TransitionGuard) Authorize(
	ord *order.Order,
	currentStatus *status.Status,
	actor kernel.Actor,
	changes *order.ChangeSet,
	requestedStatus *status.Status,
) error {
	if err := ord.Validate(); err != nil {
		return err
	}
	if err := currentStatus.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if changes == nil {
		return errs.NewValueIsRequiredError("changes")
	}

	// Rule 1: cross-tenant access reads as "not found", never "forbidden".
	if !actor.IsSuperAdmin() && !ord.BelongsTo(actor.CompanyID()) {
		return errs.NewObjectNotFoundError("trackingId", ord.TrackingID().String())
	}

	if actor.IsDelivery() {
		// Rule 2: delivery people may only report status and location.
		if offending := disallowedFields(changes); len(offending) > 0 {
			return errs.NewForbiddenFieldsError(
				"delivery role may only change status and location", offending)
		}

		// Rule 3: and only on orders assigned to them.
		if !ord.IsAssignedTo(actor.ID()) {
			return errs.NewForbiddenError("order is assigned to a different delivery person")
		}
	}

	// Rule 4: archived and completed are terminal. The only change a completed
	// order accepts is resubmitting completed itself, which downstream treats
	// as a no-op.
	if currentStatus.Code() == status.CodeArchived {
		return errs.NewInvalidStateError(status.CodeArchived, "archived orders cannot be modified")
	}
	if currentStatus.Code() == status.CodeCompleted && !resubmitsCompleted(changes) {
		return errs.NewInvalidStateError(status.CodeCompleted, "completed orders cannot be modified")
	}

	requestedCode, hasStatusChange := changes.StatusCode()
	if !hasStatusChange {
		return nil
	}

	// Rule 5: the requested code must exist in the registry.
	if requestedStatus == nil {
		return errs.NewValueIsInvalidErrorWithCause("statusCode",
			fmt.Errorf("unknown status code %q", requestedCode))
	}

	// Rule 6: successor policy on the resolved, canonical code.
	return checkSuccessor(currentStatus.Code(), requestedStatus.Code())
}

// resubmitsCompleted reports whether the change set carries the completed
// status code and nothing else.
func resubmitsCompleted(changes *order.ChangeSet) bool {
	code, ok := changes.StatusCode()
	return ok && code == status.CodeCompleted && len(changes.Fields()) == 1
}

// disallowedFields returns every submitted field outside the delivery
// whitelist, in the change set's deterministic order.
func disallowedFields(changes *order.ChangeSet) []string {
	var offending []string
	for _, f := range changes.Fields() {
		if !deliveryAllowedFields[f] {
			offending = append(offending, string(f))
		}
	}
	return offending
}

// checkSuccessor enforces the status successor policy:
//
//   - delivered -> delivered (no-op) or completed
//   - completed -> completed only
//   - anything else -> any code except completed
//
// completed is therefore reachable only through delivered. The asymmetry
// (archived reachable from active states but not from delivered) is inherited
// behavior; see DESIGN.md before changing it.
func checkSuccessor(currentCode string, requestedCode string) error {
	switch currentCode {
	case status.CodeDelivered:
		if requestedCode != status.CodeDelivered && requestedCode != status.CodeCompleted {
			return errs.NewInvalidStateErrorWithCause(currentCode,
				"delivered orders may only advance to completed",
				fmt.Errorf("requested %q", requestedCode))
		}
	case status.CodeCompleted:
		if requestedCode != status.CodeCompleted {
			return errs.NewInvalidStateErrorWithCause(currentCode,
				"completed orders accept no further transitions",
				fmt.Errorf("requested %q", requestedCode))
		}
	default:
		if requestedCode == status.CodeCompleted {
			return errs.NewInvalidStateErrorWithCause(currentCode,
				"completed is only reachable from delivered",
				fmt.Errorf("requested %q", requestedCode))
		}
	}
	return nil
}
