package xregexp

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates that an entry point received a [Pattern] that
// holds neither a pattern nor text.
//
// It is wrapped together with the name of the operation.
var ErrInvalidArgument = errors.New("invalid first argument: expected pattern or text")

func invalidArgument(op string) error {
	return fmt.Errorf("xregexp: %s: %w", op, ErrInvalidArgument)
}
