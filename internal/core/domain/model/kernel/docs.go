// Package kernel contains the shared value objects of the domain model:
// identifiers (UUID, TrackingID, ShareToken), geographic coordinates
// (GeoPoint), and the authenticated Actor with its Role.
//
// All value objects are immutable and constructed through validating factory
// functions. Zero values are invalid and fail Validate, which repositories and
// commands rely on when reconstructing objects from external input.
package kernel
