package status

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// Well-known status codes. These are seeded as system statuses on startup and
// referenced by the transition rules. Companies may add custom codes beside
// them; custom codes never participate in the special successor handling.
const (
	// CodeCreated is the initial status of every new order.
	CodeCreated = "created"

	// CodeInTransit marks an order moving between pickup and dropoff.
	CodeInTransit = "in_transit"

	// CodeOutForDelivery marks an order on its final delivery leg.
	CodeOutForDelivery = "out_for_delivery"

	// CodeDelivered marks an order handed to the customer. From here only
	// delivered (no-op) or completed are acceptable successors.
	CodeDelivered = "delivered"

	// CodeCompleted marks a finished order. Reachable only from delivered;
	// no further transitions exist.
	CodeCompleted = "completed"

	// CodeArchived is the hard terminal status. Archived orders reject every
	// mutation.
	CodeArchived = "archived"
)

var (
	// ErrStatusIsNotConstructed is returned when a Status instance was not
	// created through NewStatus or RestoreStatus.
	ErrStatusIsNotConstructed = errors.New("Status must be created via NewStatus or RestoreStatus")

	codePattern = regexp.MustCompile(`^[a-z0-9_]+$`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// NormalizeCode canonicalizes a caller-supplied status code: surrounding
// whitespace is trimmed, letters are lowercased, and interior whitespace runs
// become single underscores. "Out For Delivery" normalizes to
// "out_for_delivery". The result must be non-empty and restricted to
// lowercase letters, digits, and underscores.
func NormalizeCode(raw string) (string, error) {
	code := strings.ToLower(strings.TrimSpace(raw))
	code = whitespace.ReplaceAllString(code, "_")

	if code == "" {
		return "", errs.NewValueIsRequiredError("code")
	}
	if !codePattern.MatchString(code) {
		return "", errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("%q does not normalize to lowercase snake_case", raw))
	}

	return code, nil
}

// Status is a catalog entry in the status registry: a short canonical code, a
// human label, an optional description, and a flag protecting system entries.
//
// Invariants:
//   - code is normalized at creation and immutable afterwards
//   - system statuses can never be deleted or renamed by code
//   - sortOrder drives UI ordering only; transition logic never consults it
type Status struct {
	id          kernel.UUID
	code        string
	label       string
	description string
	isSystem    bool
	sortOrder   int

	isConstructed bool
}

// NewStatus creates a custom status. The code is normalized before storage;
// the label must be non-blank. New entries are never system statuses.
func NewStatus(id kernel.UUID, code string, label string, description string, sortOrder int) (*Status, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	normalized, err := NormalizeCode(code)
	if err != nil {
		return nil, err
	}

	s := &Status{
		id:            id,
		code:          normalized,
		sortOrder:     sortOrder,
		isConstructed: true,
	}

	if err := s.Rename(label, description); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStatus reconstructs a status from persistence without re-normalizing
// the code. The stored code is trusted; it was normalized when first created.
func RestoreStatus(
	id kernel.UUID, code string, label string, description string, isSystem bool, sortOrder int,
) (*Status, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}
	if label == "" {
		return nil, errs.NewValueIsRequiredError("label")
	}

	return &Status{
		id:            id,
		code:          code,
		label:         label,
		description:   description,
		isSystem:      isSystem,
		sortOrder:     sortOrder,
		isConstructed: true,
	}, nil
}

// Validate ensures the Status was created through a constructor.
func (s *Status) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStatusIsNotConstructed
	}
	return nil
}

// ID returns the status identifier.
func (s *Status) ID() kernel.UUID {
	return s.id
}

// Code returns the canonical status code.
func (s *Status) Code() string {
	return s.code
}

// Label returns the human-readable label.
func (s *Status) Label() string {
	return s.label
}

// Description returns the optional description.
func (s *Status) Description() string {
	return s.description
}

// IsSystem reports whether the status is a protected system entry.
func (s *Status) IsSystem() bool {
	return s.isSystem
}

// SortOrder returns the UI display position.
func (s *Status) SortOrder() int {
	return s.sortOrder
}

// Rename updates the mutable attributes: label and description.
// The code never changes after creation.
func (s *Status) Rename(label string, description string) error {
	if strings.TrimSpace(label) == "" {
		return errs.NewValueIsRequiredError("label")
	}

	s.label = strings.TrimSpace(label)
	s.description = strings.TrimSpace(description)
	return nil
}

// SetSortOrder moves the status to a new display position. Called only by the
// explicit reorder operation.
func (s *Status) SetSortOrder(sortOrder int) {
	s.sortOrder = sortOrder
}

// EnsureDeletable checks the deletion invariants: system statuses are
// protected, and a status still referenced by live orders cannot be removed.
// Historical-only references do not block deletion (see DESIGN.md).
func (s *Status) EnsureDeletable(ordersReferencing int64) error {
	if s.isSystem {
		return errs.NewForbiddenError(fmt.Sprintf("status %q is a protected system status", s.code))
	}
	if ordersReferencing > 0 {
		return errs.NewConflictErrorWithCause("code", s.code, "status is still in use",
			fmt.Errorf("%d orders currently reference this status", ordersReferencing))
	}
	return nil
}

// IsEqual compares two statuses by identifier.
func (s *Status) IsEqual(other *Status) bool {
	return other != nil && s.id.IsEqual(other.id)
}
