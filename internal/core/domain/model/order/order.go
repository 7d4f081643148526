package order

import (
	"errors"
	"strings"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Waypoint is a delivery endpoint: a free-text address with its coordinates.
// Orders carry two of them, pickup and dropoff.
type Waypoint struct {
	address string
	point   kernel.GeoPoint
}

// NewWaypoint creates a waypoint from an address and a validated coordinate pair.
func NewWaypoint(address string, point kernel.GeoPoint) (Waypoint, error) {
	if strings.TrimSpace(address) == "" {
		return Waypoint{}, errs.NewValueIsRequiredError("address")
	}
	if err := point.Validate(); err != nil {
		return Waypoint{}, err
	}

	return Waypoint{address: strings.TrimSpace(address), point: point}, nil
}

// Validate ensures the waypoint was created through NewWaypoint.
func (w Waypoint) Validate() error {
	if w.address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	return w.point.Validate()
}

// Address returns the free-text address.
func (w Waypoint) Address() string {
	return w.address
}

// Point returns the coordinates.
func (w Waypoint) Point() kernel.GeoPoint {
	return w.point
}

// Order is the aggregate root of a shipment record. It is identified by a
// caller-supplied tracking ID and owned by exactly one company.
//
// Order maintains these invariants:
//   - tracking ID, company, and share token are immutable after creation
//   - the current status reference always resolves to a registry entry
//     (enforced upstream: status IDs enter the aggregate only after resolution)
//   - the live location is always a full coordinate pair or absent
//   - every mutation refreshes the updated-at timestamp
//
// Transition rules live in the services package; Order itself only applies
// changes that have already been approved.
type Order struct {
	trackingID kernel.TrackingID
	companyID  kernel.UUID

	customerName  string
	customerEmail string
	customerPhone string

	pickup       Waypoint
	dropoff      Waypoint
	instructions string

	currentLocation  *kernel.GeoPoint
	deliveryPersonID *kernel.UUID

	statusID   kernel.UUID
	shareToken kernel.ShareToken

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder registers a new shipment. The share token is generated here and
// never changes; both timestamps start at now (normalized to UTC). The initial
// status ID must already be resolved against the registry by the caller.
func NewOrder(
	trackingID kernel.TrackingID,
	companyID kernel.UUID,
	customerName string,
	customerEmail string,
	customerPhone string,
	pickup Waypoint,
	dropoff Waypoint,
	instructions string,
	initialStatusID kernel.UUID,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		trackingID.Validate(),
		companyID.Validate(),
		initialStatusID.Validate(),
	); err != nil {
		return nil, err
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, errs.NewValueIsRequiredError("customerName")
	}
	if pickup.address == "" || dropoff.address == "" {
		return nil, errs.NewValueIsRequiredError("pickup and dropoff waypoints")
	}

	return &Order{
		trackingID:    trackingID,
		companyID:     companyID,
		customerName:  strings.TrimSpace(customerName),
		customerEmail: strings.TrimSpace(customerEmail),
		customerPhone: strings.TrimSpace(customerPhone),
		pickup:        pickup,
		dropoff:       dropoff,
		instructions:  strings.TrimSpace(instructions),
		statusID:      initialStatusID,
		shareToken:    kernel.NewShareToken(),
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	trackingID kernel.TrackingID,
	companyID kernel.UUID,
	customerName string,
	customerEmail string,
	customerPhone string,
	pickup Waypoint,
	dropoff Waypoint,
	instructions string,
	currentLocation *kernel.GeoPoint,
	deliveryPersonID *kernel.UUID,
	statusID kernel.UUID,
	shareToken kernel.ShareToken,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		trackingID.Validate(),
		companyID.Validate(),
		statusID.Validate(),
		shareToken.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		trackingID:       trackingID,
		companyID:        companyID,
		customerName:     customerName,
		customerEmail:    customerEmail,
		customerPhone:    customerPhone,
		pickup:           pickup,
		dropoff:          dropoff,
		instructions:     instructions,
		currentLocation:  currentLocation,
		deliveryPersonID: deliveryPersonID,
		statusID:         statusID,
		shareToken:       shareToken,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// TrackingID returns the immutable caller-supplied identifier.
func (o *Order) TrackingID() kernel.TrackingID {
	return o.trackingID
}

// CompanyID returns the owning company.
func (o *Order) CompanyID() kernel.UUID {
	return o.companyID
}

// CustomerName returns the customer contact name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerEmail returns the customer email, empty when not supplied.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// CustomerPhone returns the customer phone, empty when not supplied.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// Pickup returns the pickup waypoint.
func (o *Order) Pickup() Waypoint {
	return o.pickup
}

// Dropoff returns the dropoff waypoint.
func (o *Order) Dropoff() Waypoint {
	return o.dropoff
}

// Instructions returns the free-text delivery instructions.
func (o *Order) Instructions() string {
	return o.instructions
}

// CurrentLocation returns the last reported live location, nil when none was
// ever reported.
func (o *Order) CurrentLocation() *kernel.GeoPoint {
	return o.currentLocation
}

// DeliveryPersonID returns the assigned delivery person, nil when unassigned.
func (o *Order) DeliveryPersonID() *kernel.UUID {
	return o.deliveryPersonID
}

// StatusID returns the current status reference.
func (o *Order) StatusID() kernel.UUID {
	return o.statusID
}

// ShareToken returns the immutable public tracking token.
func (o *Order) ShareToken() kernel.ShareToken {
	return o.shareToken
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp (UTC).
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// BelongsTo reports whether the order is owned by the given company.
func (o *Order) BelongsTo(companyID kernel.UUID) bool {
	return o.companyID.IsEqual(companyID)
}

// IsAssignedTo reports whether the order is currently assigned to the given
// delivery person.
func (o *Order) IsAssignedTo(actorID kernel.UUID) bool {
	return o.deliveryPersonID != nil && o.deliveryPersonID.IsEqual(actorID)
}

// IsEqual compares two orders by tracking ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.trackingID.IsEqual(other.trackingID)
}

// Apply mutates the order with an approved change set. Only fields present in
// the change set are touched; resolvedStatusID must be non-nil exactly when the
// change set carries a status code and is trusted to match it. The updated-at
// timestamp always refreshes to now.
//
// Apply performs no rule checking. Authorization and transition validation
// happen in the services package before any change set reaches this point.
func (o *Order) Apply(changes *ChangeSet, resolvedStatusID *kernel.UUID, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if changes == nil {
		return errs.NewValueIsRequiredError("changes")
	}

	if _, ok := changes.StatusCode(); ok {
		if resolvedStatusID == nil {
			return errs.NewValueIsRequiredError("resolvedStatusID")
		}
		o.statusID = *resolvedStatusID
	}

	if point, ok := changes.Location(); ok {
		loc := point
		o.currentLocation = &loc
	}

	if v, ok := changes.CustomerName(); ok {
		if strings.TrimSpace(v) == "" {
			return errs.NewValueIsRequiredError("customerName")
		}
		o.customerName = strings.TrimSpace(v)
	}
	if v, ok := changes.CustomerEmail(); ok {
		o.customerEmail = strings.TrimSpace(v)
	}
	if v, ok := changes.CustomerPhone(); ok {
		o.customerPhone = strings.TrimSpace(v)
	}
	if v, ok := changes.Instructions(); ok {
		o.instructions = strings.TrimSpace(v)
	}
	if v, ok := changes.PickupAddress(); ok {
		if strings.TrimSpace(v) == "" {
			return errs.NewValueIsRequiredError("pickupAddress")
		}
		o.pickup.address = strings.TrimSpace(v)
	}
	if v, ok := changes.DropoffAddress(); ok {
		if strings.TrimSpace(v) == "" {
			return errs.NewValueIsRequiredError("dropoffAddress")
		}
		o.dropoff.address = strings.TrimSpace(v)
	}
	if id, ok := changes.DeliveryPerson(); ok {
		o.deliveryPersonID = id
	}

	o.updatedAt = now.UTC()
	return nil
}
