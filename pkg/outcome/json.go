package outcome

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidState is returned (wrapped) by UnmarshalJSON when the decoded
// document violates the two-variant invariant. Corruption is rejected at
// decode time, never deferred to first use.
var ErrInvalidState = errors.New("invalid outcome state")

const (
	statusSuccess = "success"
	statusFailure = "failure"
)

// outcomeJSON is the wire form of an Outcome.
//
// A success carries "status" and "value"; a failure carries "status" and
// "error". Failure errors are serialized by message: the error value
// itself does not survive a round-trip, only its text, which is restored
// as an opaque error.
type outcomeJSON struct {
	Status string          `json:"status"`
	Value  json.RawMessage `json:"value,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (o Outcome[T]) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return json.Marshal(outcomeJSON{Status: statusFailure, Error: o.err.Error()})
	}

	value, err := json.Marshal(o.value)
	if err != nil {
		return nil, fmt.Errorf("marshaling outcome value: %w", err)
	}

	return json.Marshal(outcomeJSON{Status: statusSuccess, Value: value})
}

// UnmarshalJSON implements json.Unmarshaler. The two-variant invariant is
// re-validated: a document whose status is unknown, whose failure carries
// no error message, or whose variants are mixed (a failure with a value,
// a success with an error) is rejected with ErrInvalidState.
func (o *Outcome[T]) UnmarshalJSON(data []byte) error {
	var wire outcomeJSON

	err := json.Unmarshal(data, &wire)
	if err != nil {
		return fmt.Errorf("unmarshaling outcome: %w", err)
	}

	switch wire.Status {
	case statusSuccess:
		if wire.Error != "" {
			return fmt.Errorf("%w: success with error %q", ErrInvalidState, wire.Error)
		}

		var value T
		if len(wire.Value) > 0 {
			err := json.Unmarshal(wire.Value, &value)
			if err != nil {
				return fmt.Errorf("unmarshaling outcome value: %w", err)
			}
		}

		*o = Success(value)

		return nil

	case statusFailure:
		if wire.Error == "" {
			return fmt.Errorf("%w: failure without error", ErrInvalidState)
		}

		if len(wire.Value) > 0 && string(wire.Value) != "null" {
			return fmt.Errorf("%w: failure with value", ErrInvalidState)
		}

		*o = Failure[T](errors.New(wire.Error))

		return nil

	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidState, wire.Status)
	}
}
