package kernel

import (
	"fmt"
	"strings"

	"storeadmin/internal/pkg/errs"
	"storeadmin/internal/pkg/guard"

	"github.com/google/uuid"
)

// MaxIDLength bounds identifiers accepted from the store and from HTTP paths.
const MaxIDLength = 64

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or NewRandomID")

// ID is an opaque identifier owned by the external store. The dashboard never
// interprets its contents; it only requires a non-blank, single-line value.
//
// Example:
//
//	id, err := kernel.NewID("ORD-2023-001")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id) // ORD-2023-001
type ID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewID validates s and wraps it. Surrounding whitespace is trimmed.
func NewID(s string) (ID, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	if len(v) > MaxIDLength {
		return ID{}, errs.NewValueIsOutOfRangeError("id length", len(v), 1, MaxIDLength)
	}
	if strings.ContainsAny(v, "\r\n\t") {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q contains control characters", v))
	}

	return ID{value: v, guard: guard.NewConstructorGuard()}, nil
}

// MustNewID is NewID for literals known to be valid. It panics otherwise.
func MustNewID(s string) ID {
	id, err := NewID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// NewRandomID generates an identifier of the form "<prefix>-<uuid v4>".
// Used for identifiers this system mints itself, such as notifications.
func NewRandomID(prefix string) ID {
	v := uuid.NewString()
	if prefix != "" {
		v = prefix + "-" + v
	}
	return ID{value: v, guard: guard.NewConstructorGuard()}
}

func (id ID) String() string {
	return id.value
}

// IsEqual reports whether both identifiers hold the same value.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (id ID) Validate() error {
	return id.guard.Validate(ErrIDIsNotConstructed)
}
