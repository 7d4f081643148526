package order

import (
	"sort"

	"shiptrack/internal/core/domain/model/kernel"
)

// Field names a mutable order attribute in a change set. The names double as
// the wire-level field names reported back in Forbidden rejections, so a
// client can match them against its own request body.
type Field string

const (
	FieldStatusCode       Field = "statusCode"
	FieldLat              Field = "lat"
	FieldLng              Field = "lng"
	FieldCustomerName     Field = "customerName"
	FieldCustomerEmail    Field = "customerEmail"
	FieldCustomerPhone    Field = "customerPhone"
	FieldPickupAddress    Field = "pickupAddress"
	FieldDropoffAddress   Field = "dropoffAddress"
	FieldInstructions     Field = "instructions"
	FieldDeliveryPersonID Field = "deliveryPersonId"
)

// ChangeSet is a sparse set of proposed order mutations. Absent fields are
// left untouched by Apply; fields explicitly set to an empty value clear the
// corresponding attribute. Coordinates can only enter as a full pair: the
// SetLocation signature takes a constructed GeoPoint, so a lone lat or lng
// never reaches the domain.
//
// A ChangeSet is built by the HTTP adapter from the request body, inspected by
// the transition guard, and finally applied to the aggregate.
type ChangeSet struct {
	changes map[Field]any
}

// NewChangeSet creates an empty change set.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{changes: make(map[Field]any)}
}

// IsEmpty reports whether no field is present.
func (c *ChangeSet) IsEmpty() bool {
	return len(c.changes) == 0
}

// Has reports whether the given field is present.
func (c *ChangeSet) Has(field Field) bool {
	_, ok := c.changes[field]
	return ok
}

// Fields returns every present field in deterministic (sorted) order, which
// keeps Forbidden rejection messages stable.
func (c *ChangeSet) Fields() []Field {
	fields := make([]Field, 0, len(c.changes))
	for f := range c.changes {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

// SetStatusCode proposes a status transition to the given code. The code is
// resolved against the registry later; unknown codes surface as InvalidInput.
func (c *ChangeSet) SetStatusCode(code string) {
	c.changes[FieldStatusCode] = code
}

// StatusCode returns the proposed status code, if present.
func (c *ChangeSet) StatusCode() (string, bool) {
	v, ok := c.changes[FieldStatusCode]
	if !ok {
		return "", false
	}
	return v.(string), true
}

// SetLocation proposes a live-location update. Taking a constructed GeoPoint
// enforces the both-or-neither coordinate rule at the type level; the pair is
// recorded as the lat and lng fields it arrived as.
func (c *ChangeSet) SetLocation(point kernel.GeoPoint) {
	c.changes[FieldLat] = point.Lat()
	c.changes[FieldLng] = point.Lng()
}

// Location returns the proposed location pair, if present.
func (c *ChangeSet) Location() (kernel.GeoPoint, bool) {
	lat, latOK := c.changes[FieldLat]
	lng, lngOK := c.changes[FieldLng]
	if !latOK || !lngOK {
		return kernel.GeoPoint{}, false
	}

	// Values entered through SetLocation, so reconstruction cannot fail.
	point, err := kernel.NewGeoPoint(lat.(float64), lng.(float64))
	if err != nil {
		return kernel.GeoPoint{}, false
	}
	return point, true
}

// SetCustomerName proposes a new customer name.
func (c *ChangeSet) SetCustomerName(name string) {
	c.changes[FieldCustomerName] = name
}

// CustomerName returns the proposed customer name, if present.
func (c *ChangeSet) CustomerName() (string, bool) {
	return c.stringField(FieldCustomerName)
}

// SetCustomerEmail proposes a new customer email. An empty value clears it.
func (c *ChangeSet) SetCustomerEmail(email string) {
	c.changes[FieldCustomerEmail] = email
}

// CustomerEmail returns the proposed customer email, if present.
func (c *ChangeSet) CustomerEmail() (string, bool) {
	return c.stringField(FieldCustomerEmail)
}

// SetCustomerPhone proposes a new customer phone. An empty value clears it.
func (c *ChangeSet) SetCustomerPhone(phone string) {
	c.changes[FieldCustomerPhone] = phone
}

// CustomerPhone returns the proposed customer phone, if present.
func (c *ChangeSet) CustomerPhone() (string, bool) {
	return c.stringField(FieldCustomerPhone)
}

// SetPickupAddress proposes a new pickup address.
func (c *ChangeSet) SetPickupAddress(address string) {
	c.changes[FieldPickupAddress] = address
}

// PickupAddress returns the proposed pickup address, if present.
func (c *ChangeSet) PickupAddress() (string, bool) {
	return c.stringField(FieldPickupAddress)
}

// SetDropoffAddress proposes a new dropoff address.
func (c *ChangeSet) SetDropoffAddress(address string) {
	c.changes[FieldDropoffAddress] = address
}

// DropoffAddress returns the proposed dropoff address, if present.
func (c *ChangeSet) DropoffAddress() (string, bool) {
	return c.stringField(FieldDropoffAddress)
}

// SetInstructions proposes new delivery instructions. An empty value clears them.
func (c *ChangeSet) SetInstructions(instructions string) {
	c.changes[FieldInstructions] = instructions
}

// Instructions returns the proposed instructions, if present.
func (c *ChangeSet) Instructions() (string, bool) {
	return c.stringField(FieldInstructions)
}

// SetDeliveryPerson proposes assigning the order to a delivery person.
func (c *ChangeSet) SetDeliveryPerson(id kernel.UUID) {
	c.changes[FieldDeliveryPersonID] = &id
}

// ClearDeliveryPerson proposes unassigning the order.
func (c *ChangeSet) ClearDeliveryPerson() {
	c.changes[FieldDeliveryPersonID] = (*kernel.UUID)(nil)
}

// DeliveryPerson returns the proposed assignment, if present. A nil UUID with
// ok=true means the assignment is being cleared.
func (c *ChangeSet) DeliveryPerson() (*kernel.UUID, bool) {
	v, ok := c.changes[FieldDeliveryPersonID]
	if !ok {
		return nil, false
	}
	return v.(*kernel.UUID), true
}

func (c *ChangeSet) stringField(field Field) (string, bool) {
	v, ok := c.changes[field]
	if !ok {
		return "", false
	}
	return v.(string), true
}
