package veb

import (
	"fmt"

	"github.com/pkg/errors"
)

// ContractViolationError is panicked when a caller passes a key that does
// not fit within a node's universe. It is never recoverable and always
// indicates a caller bug, never container state corruption.
type ContractViolationError struct {
	Key          any
	UniverseBits int
	cause        error
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("veb: key %v does not fit in universe of width %d: %s", e.Key, e.UniverseBits, e.cause)
}

func (e *ContractViolationError) Unwrap() error { return e.cause }

func newContractViolation[K Key](key K, universeBits int) *ContractViolationError {
	cause := errors.Errorf("key exceeds maximum representable key %v", maxKey[K](universeBits))
	err := &ContractViolationError{Key: key, UniverseBits: universeBits, cause: cause}
	logger.Error().
		Interface("key", key).
		Int("universe_bits", universeBits).
		Msg("contract violation: key out of universe")
	return err
}

// InvariantViolationError is panicked when a recursive call discovers the
// tree in a state that the documented invariants (see the package's
// design notes) say cannot occur. It always indicates an implementation
// bug rather than caller error or ordinary absence of a key.
type InvariantViolationError struct {
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return "veb: invariant violation: " + e.Detail
}

func newInvariantViolation(format string, args ...any) *InvariantViolationError {
	detail := fmt.Sprintf(format, args...)
	err := &InvariantViolationError{Detail: detail}
	logger.Error().Str("detail", detail).Msg("invariant violation")
	return err
}
