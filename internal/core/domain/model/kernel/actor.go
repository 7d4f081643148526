package kernel

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// Role is the authorization role of an authenticated caller.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin manages orders and statuses within one company.
	RoleAdmin

	// RoleDelivery is a delivery person limited to status and location updates
	// on orders assigned to them.
	RoleDelivery

	// RoleSuperAdmin bypasses company scoping.
	RoleSuperAdmin
)

// getRoleStrings returns the canonical string form of every role, including
// the invalid one for display purposes.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		RoleAdmin:      "admin",
		RoleDelivery:   "delivery",
		RoleSuperAdmin: "super_admin",
	}
}

// RoleFromString parses the wire form of a role, as carried in auth tokens.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the defined values.
func (r Role) Validate() error {
	if r != RoleAdmin && r != RoleDelivery && r != RoleSuperAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// ErrActorIsNotConstructed is returned when validating a zero-value Actor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor constructor")

// Actor is the verified (actorId, role, companyId) triple supplied by the
// identity provider for every authenticated call. The domain trusts it
// completely and performs no independent credential checking.
type Actor struct { //nolint:recvcheck //using for validation
	id        UUID
	role      Role
	companyID UUID
	guard     guard.ConstructorGuard
}

// NewActor creates an Actor from a verified identity triple.
func NewActor(id UUID, role Role, companyID UUID) (Actor, error) {
	actor := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := actor.setID(id); err != nil {
		return Actor{}, err
	}
	if err := actor.setRole(role); err != nil {
		return Actor{}, err
	}
	if err := actor.setCompanyID(companyID); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// Validate reports whether the Actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// CompanyID returns the company the actor belongs to.
func (a Actor) CompanyID() UUID {
	return a.companyID
}

// IsSuperAdmin reports whether company scoping is bypassed for this actor.
func (a Actor) IsSuperAdmin() bool {
	return a.role == RoleSuperAdmin
}

// IsDelivery reports whether the actor is a delivery person.
func (a Actor) IsDelivery() bool {
	return a.role == RoleDelivery
}

func (a *Actor) setID(id UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Actor) setCompanyID(companyID UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	a.companyID = companyID
	return nil
}
