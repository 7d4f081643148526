package kernel

import (
	"strings"
	"unicode/utf8"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// TrackingIDMaxLength bounds the caller-supplied tracking identifier.
const TrackingIDMaxLength = 64

// ErrTrackingIDIsNotConstructed is returned when validating a zero-value TrackingID.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking ID must be created via NewTrackingID constructor")

// TrackingID is the caller-chosen, immutable identifier of an order. It is an
// opaque string as far as the domain is concerned: the only constraints are
// that it is non-blank, fits the length bound, and carries no surrounding
// whitespace. Uniqueness is enforced by storage, not here.
type TrackingID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewTrackingID creates a TrackingID from a caller-supplied string.
// Leading and trailing whitespace is trimmed before validation.
func NewTrackingID(value string) (TrackingID, error) {
	id := TrackingID{
		guard: guard.NewConstructorGuard(),
	}

	if err := id.setValue(value); err != nil {
		return TrackingID{}, err
	}

	return id, nil
}

// Validate reports whether the TrackingID was created through NewTrackingID.
func (t TrackingID) Validate() error {
	return t.guard.Validate(ErrTrackingIDIsNotConstructed)
}

// String returns the identifier value.
func (t TrackingID) String() string {
	return t.value
}

// IsEqual compares two tracking IDs by value.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

func (t *TrackingID) setValue(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("trackingId")
	}
	if utf8.RuneCountInString(trimmed) > TrackingIDMaxLength {
		return errs.NewValueIsOutOfRangeError("trackingId length",
			utf8.RuneCountInString(trimmed), 1, TrackingIDMaxLength)
	}

	t.value = trimmed
	return nil
}
