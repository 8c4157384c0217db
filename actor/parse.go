package actor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Grammar literals. Indentation is part of each prefix.
const (
	prefixItems     = "  Starting items: "
	prefixOperation = "  Operation: "
	prefixTest      = "  Test: divisible by "
	prefixIfTrue    = "    If true: throw to "
	prefixIfFalse   = "    If false: throw to "
	opLead          = "new = old "
	itemSep         = ", "
	blockSep        = "\n\n"
	blockLines      = 6
)

// keyword pairs a header word with the noun used by the throw lines.
type keyword struct {
	header string
	throw  string
}

var (
	keywordMonkey = keyword{header: "Monkey", throw: "monkey"}
	keywordActor  = keyword{header: "Actor", throw: "actor"}
	keywords      = []keyword{keywordMonkey, keywordActor}
)

// Parse reads a single six-line actor block. A trailing newline is allowed.
// Failures are *ParseError values with Block == -1.
// Complexity: O(len(block)).
func Parse[N constraints.Unsigned](block string) (Actor[N], error) {
	return parseBlock[N](normalize(block), -1)
}

// ParseAll reads every blank-line separated block of input, in order, and
// checks that all throw targets name a parsed actor. CRLF line endings and
// surrounding blank lines are tolerated.
//
// Errors:
//   - ErrEmptyInput if input holds no blocks.
//   - *ParseError (matching ErrParse) for the first malformed block.
//
// Complexity: O(len(input)).
func ParseAll[N constraints.Unsigned](input string) ([]Actor[N], error) {
	text := strings.Trim(normalize(input), "\n")
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	blocks := strings.Split(text, blockSep)
	actors := make([]Actor[N], 0, len(blocks))
	for i, b := range blocks {
		a, err := parseBlock[N](b, i)
		if err != nil {
			return nil, err
		}
		actors = append(actors, a)
	}

	for i, a := range actors {
		if a.IfTrue >= len(actors) {
			return nil, &ParseError{Block: i, Line: 5, Fragment: strconv.Itoa(a.IfTrue), Err: ErrTargetOutOfRange}
		}
		if a.IfFalse >= len(actors) {
			return nil, &ParseError{Block: i, Line: 6, Fragment: strconv.Itoa(a.IfFalse), Err: ErrTargetOutOfRange}
		}
	}

	return actors, nil
}

func normalize(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// parseBlock walks the six lines of one block in grammar order.
func parseBlock[N constraints.Unsigned](block string, idx int) (Actor[N], error) {
	var a Actor[N]
	fail := func(line int, fragment string, err error) (Actor[N], error) {
		return Actor[N]{}, &ParseError{Block: idx, Line: line, Fragment: fragment, Err: err}
	}

	lines := strings.Split(strings.TrimSuffix(block, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return fail(0, block, ErrEmptyInput)
	}
	if len(lines) < blockLines {
		return fail(len(lines)+1, "", errMissingLine)
	}
	if len(lines) > blockLines {
		return fail(blockLines+1, lines[blockLines], errTrailing)
	}

	// 1) Header: "<Keyword> <n>:"
	kw, ok := parseHeader(lines[0])
	if !ok {
		return fail(1, lines[0], errBadLiteral)
	}

	// 2) Starting items, possibly empty.
	items, err := parseItems[N](lines[1])
	if err != nil {
		return fail(2, lines[1], err)
	}
	a.Items = items

	// 3) Operation.
	rest, ok := strings.CutPrefix(lines[2], prefixOperation)
	if !ok {
		return fail(3, lines[2], errBadLiteral)
	}
	if a.Op, err = parseOperation[N](rest); err != nil {
		return fail(3, lines[2], err)
	}

	// 4) Divisibility test.
	rest, ok = strings.CutPrefix(lines[3], prefixTest)
	if !ok {
		return fail(4, lines[3], errBadLiteral)
	}
	if a.DivisibleBy, err = parseNumber[N](rest); err != nil {
		return fail(4, lines[3], err)
	}
	if a.DivisibleBy == 0 {
		return fail(4, lines[3], ErrZeroDivisor)
	}

	// 5-6) Throw targets.
	if a.IfTrue, err = parseTarget(lines[4], prefixIfTrue, kw); err != nil {
		return fail(5, lines[4], err)
	}
	if a.IfFalse, err = parseTarget(lines[5], prefixIfFalse, kw); err != nil {
		return fail(6, lines[5], err)
	}

	return a, nil
}

func parseHeader(line string) (keyword, bool) {
	for _, kw := range keywords {
		rest, ok := strings.CutPrefix(line, kw.header+" ")
		if !ok {
			continue
		}
		num, ok := strings.CutSuffix(rest, ":")
		if !ok {
			return keyword{}, false
		}
		if _, err := strconv.ParseUint(num, 10, 64); err != nil {
			return keyword{}, false
		}
		return kw, true
	}

	return keyword{}, false
}

func parseItems[N constraints.Unsigned](line string) ([]N, error) {
	// Editors tend to strip the trailing blank of an empty list.
	if line == strings.TrimSuffix(prefixItems, " ") {
		return []N{}, nil
	}
	rest, ok := strings.CutPrefix(line, prefixItems)
	if !ok {
		return nil, errBadLiteral
	}
	if rest == "" {
		return []N{}, nil
	}

	fields := strings.Split(rest, itemSep)
	items := make([]N, 0, len(fields))
	for _, f := range fields {
		v, err := parseNumber[N](f)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}

	return items, nil
}

func parseOperation[N constraints.Unsigned](s string) (Operation[N], error) {
	var op Operation[N]
	rest, ok := strings.CutPrefix(s, opLead)
	if !ok || len(rest) < 3 || rest[1] != ' ' {
		return op, errBadLiteral
	}

	switch rest[0] {
	case '+':
		op.Operator = Add
	case '*':
		op.Operator = Mul
	default:
		return op, errBadLiteral
	}

	operand := rest[2:]
	if operand == "old" {
		op.Operand.Old = true
		return op, nil
	}
	v, err := parseNumber[N](operand)
	if err != nil {
		return op, err
	}
	op.Operand.Value = v

	return op, nil
}

func parseTarget(line, prefix string, kw keyword) (int, error) {
	rest, ok := strings.CutPrefix(line, prefix+kw.throw+" ")
	if !ok {
		return 0, errBadLiteral
	}
	v, err := strconv.ParseUint(rest, 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errBadNumber, err)
	}

	return int(v), nil
}

// parseNumber accepts plain decimal digits that fit N.
func parseNumber[N constraints.Unsigned](s string) (N, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errBadNumber, err)
	}
	n := N(v)
	if uint64(n) != v {
		return 0, fmt.Errorf("%w: %d overflows the item width", errBadNumber, v)
	}

	return n, nil
}

// IsParseError reports whether err carries a *ParseError and returns it.
func IsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
