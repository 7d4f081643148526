// Package status models the registry of order status codes: an ordered,
// company-agnostic catalog of lifecycle stages. Codes are normalized to
// lowercase snake_case at creation and immutable afterwards; protected system
// entries cannot be deleted. Display ordering lives in an explicit sortOrder
// attribute that transition logic never consults.
package status
