package kernel

import (
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrShareTokenIsNotConstructed is returned when validating a zero-value ShareToken.
var ErrShareTokenIsNotConstructed = errs.NewValueIsRequiredError(
	"share token must be created via NewShareToken or ShareTokenFromString")

// ShareToken is the opaque secret that enables unauthenticated public tracking
// of a single order. It is generated once at order creation and never changes.
// Tokens are random UUIDs rendered as strings, but callers must treat them as
// opaque: the only supported operations are equality and persistence.
type ShareToken struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewShareToken generates a fresh random token.
func NewShareToken() ShareToken {
	return ShareToken{
		value: uuid.NewString(),
		guard: guard.NewConstructorGuard(),
	}
}

// ShareTokenFromString reconstructs a token from persistence or a public
// tracking URL. The value must be non-empty; no format beyond that is assumed.
func ShareTokenFromString(value string) (ShareToken, error) {
	if value == "" {
		return ShareToken{}, errs.NewValueIsRequiredError("shareToken")
	}

	return ShareToken{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the ShareToken was created through a constructor.
func (s ShareToken) Validate() error {
	return s.guard.Validate(ErrShareTokenIsNotConstructed)
}

// String returns the token value.
func (s ShareToken) String() string {
	return s.value
}

// IsEqual compares two tokens by value.
func (s ShareToken) IsEqual(other ShareToken) bool {
	return s.value == other.value
}
