package treediff

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedInput tags caller-contract violations: trees that do not
// conform to the node schema, or paths that do not resolve. These abort a
// comparison immediately and are never folded into findings.
var ErrMalformedInput = errors.New("malformed input")

// ContractError wraps the cause of a caller-contract violation.
type ContractError struct {
	cause error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%v: %v", ErrMalformedInput, e.cause)
}

func (e *ContractError) Unwrap() error { return ErrMalformedInput }

func contractErr(cause error) error {
	return &ContractError{cause: cause}
}

// NoCandidateError is returned by DiffUnits when an expected compilation
// unit has no actual unit declaring the same set of type names. It is a
// distinct caller-surfaced condition, not an ordinary finding.
type NoCandidateError struct {
	// Expected is the sorted declared-type-name set of the unpairable unit.
	Expected []string
	// Observed holds the sorted declared-type-name set of every actual
	// unit, in input order.
	Observed [][]string
}

func (e *NoCandidateError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "no compilation unit declaring types [%s] among:", strings.Join(e.Expected, ", "))
	if len(e.Observed) == 0 {
		b.WriteString(" (no actual units)")
		return b.String()
	}
	for _, names := range e.Observed {
		fmt.Fprintf(&b, " [%s]", strings.Join(names, ", "))
	}
	return b.String()
}
