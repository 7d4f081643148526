// Package order models the shipment aggregate: a tracking record owned by one
// company, carrying customer contact details, pickup/dropoff waypoints, an
// optional live location, an optional delivery-person assignment, and a
// reference into the status registry.
//
// Mutations arrive as sparse ChangeSets. The aggregate applies approved
// changes; deciding whether a change is allowed is the job of the transition
// guard in the services package.
package order
