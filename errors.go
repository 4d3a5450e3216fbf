package lcse

import (
	"errors"
	"fmt"
)

// Sentinel errors for lcse input validation and evaluation failures.
var (
	// ErrInvalidAlphabet indicates a malformed pair map: a duplicate close
	// target, or a token that appears as both an open and a close.
	ErrInvalidAlphabet = errors.New("lcse: invalid alphabet")

	// ErrUnknownToken indicates a token in an input buffer that is neither
	// an open nor a close of the supplied pair map.
	ErrUnknownToken = errors.New("lcse: unknown token")

	// ErrUnbalanced indicates a sub-view has no matching close for its
	// first open.
	ErrUnbalanced = errors.New("lcse: unbalanced sequence")

	// ErrResourceExhausted indicates an optional cap on memo size or
	// recursion depth was exceeded.
	ErrResourceExhausted = errors.New("lcse: resource exhausted")

	// ErrInvalidOptions indicates an invalid Options combination, e.g.
	// Affinity: Custom with a nil CustomAffinity.
	ErrInvalidOptions = errors.New("lcse: invalid options")
)

// unknownTokenError wraps ErrUnknownToken with the offending token and its
// offset within whichever buffer it came from.
type unknownTokenError struct {
	Token  Token
	Offset int
}

func (e *unknownTokenError) Error() string {
	return fmt.Sprintf("lcse: unknown token %v at offset %d", e.Token, e.Offset)
}

func (e *unknownTokenError) Unwrap() error { return ErrUnknownToken }

// unbalancedError wraps ErrUnbalanced with the start offset of the sub-view
// that failed to decompose.
type unbalancedError struct {
	Offset int
}

func (e *unbalancedError) Error() string {
	return fmt.Sprintf("lcse: unbalanced sequence at offset %d", e.Offset)
}

func (e *unbalancedError) Unwrap() error { return ErrUnbalanced }

// resourceError wraps ErrResourceExhausted with which cap was hit.
type resourceError struct {
	Reason string
}

func (e *resourceError) Error() string {
	return fmt.Sprintf("lcse: resource exhausted: %s", e.Reason)
}

func (e *resourceError) Unwrap() error { return ErrResourceExhausted }
