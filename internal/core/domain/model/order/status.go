package order

import (
	"fmt"
	"strings"

	"storeadmin/internal/pkg/errs"
)

// Status is the lifecycle tag of an order.
//
//	Pending ──> Processing ──> Shipped ──> Delivered      (positions 0..3)
//	Cancelled                                             (position -1, off the path)
//
// The arrows describe display order only. Any status may be set from any
// other; see Order.ChangeStatus.
type Status int

const (
	// Unknown is the zero value. It is never valid and exists to catch
	// uninitialized Status values.
	Unknown Status = iota

	Pending
	Processing
	Shipped
	Delivered

	// Cancelled is a terminal side-branch with no position on the progress path.
	Cancelled
)

// ProgressSteps is the number of segments on the pending→delivered path.
const ProgressSteps = 4

// NotOnPath is the Position of a status that has no place on the progress path.
const NotOnPath = -1

func getStatusCodes() map[Status]string {
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// AllStatuses returns the five valid statuses in display order.
func AllStatuses() []Status {
	return []Status{Pending, Processing, Shipped, Delivered, Cancelled}
}

// ParseStatus converts the store's wire code into a Status.
// Only the five lowercase codes are accepted; anything else is a data error.
//
// Example:
//
//	s, err := order.ParseStatus("shipped")
//	if err != nil {
//	    // the row carries a status this system does not know; do not display it
//	}
func ParseStatus(code string) (Status, error) {
	for s, c := range getStatusCodes() {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", strings.TrimSpace(code)),
	)
}

// Validate checks that s is one of the five valid statuses.
func (s Status) Validate() error {
	if _, ok := getStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire code ("pending", ...) or "unknown" for invalid values.
func (s Status) String() string {
	if c, ok := getStatusCodes()[s]; ok {
		return c
	}
	return "unknown"
}

// Position maps a status onto the progress path.
//
//	pending 0, processing 1, shipped 2, delivered 3, cancelled -1
//
// Invalid statuses also map to NotOnPath. Callers that display progress must
// validate first.
func (s Status) Position() int {
	switch s {
	case Pending:
		return 0
	case Processing:
		return 1
	case Shipped:
		return 2
	case Delivered:
		return 3
	case Unknown, Cancelled:
		return NotOnPath
	}
	return NotOnPath
}

// MarshalText encodes the wire code. Invalid statuses fail to encode.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a wire code through ParseStatus.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
