// Package simerr defines the simulator's error taxonomy as wrapped
// sentinel errors, so callers can use errors.Is instead of string
// matching.
package simerr

import "errors"

var (
	// ErrUnknownOpcode is returned when a program line's first token
	// does not name one of the nine supported opcodes.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrMalformedInstruction is returned for a wrong operand shape,
	// an out-of-range CALL label, or an unparsable memory initializer.
	ErrMalformedInstruction = errors.New("malformed instruction")

	// ErrInvalidHardwareConfig is returned for a non-positive
	// reservation-station count or cycle count.
	ErrInvalidHardwareConfig = errors.New("invalid hardware configuration")

	// ErrInvalidBranchTarget is returned when a BEQ's computed
	// target_pc is negative. CALL and RET targets are not checked.
	ErrInvalidBranchTarget = errors.New("invalid branch target")

	// ErrCycleLimitExceeded is returned when the engine would advance
	// past MaxCycles.
	ErrCycleLimitExceeded = errors.New("cycle limit exceeded")
)
