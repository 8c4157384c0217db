package actor

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates the input holds no actor blocks.
	ErrEmptyInput = errors.New("actor: input contains no actors")

	// ErrParse is the class matched by every *ParseError.
	ErrParse = errors.New("actor: parse failure")

	// ErrZeroDivisor indicates a "divisible by 0" test.
	ErrZeroDivisor = errors.New("actor: divisor must be positive")

	// ErrTargetOutOfRange indicates a throw target that names no actor.
	ErrTargetOutOfRange = errors.New("actor: throw target out of range")

	errMissingLine = errors.New("missing line")
	errBadLiteral  = errors.New("unexpected text")
	errBadNumber   = errors.New("malformed number")
	errTrailing    = errors.New("trailing lines after block")
)

// ParseError reports a block or line that does not match the grammar.
// Block is the 0-based block index (-1 when parsing a lone block) and Line
// the 1-based line within it (0 when the failure is not line specific).
type ParseError struct {
	Block    int
	Line     int
	Fragment string
	Err      error
}

func (e *ParseError) Error() string {
	where := "actor"
	if e.Block >= 0 {
		where = fmt.Sprintf("actor: block %d", e.Block)
	}
	if e.Line > 0 {
		where = fmt.Sprintf("%s line %d", where, e.Line)
	}

	return fmt.Sprintf("%s: %v: %q", where, e.Err, e.Fragment)
}

// Unwrap exposes the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
