// Package actor models the participants of a keep-away simulation and
// parses them from their fixed textual form.
//
// What:
//
//   - Actor holds an ordered inventory of worry values, an Operation
//     (new = old <+|*> <old|int>), a divisibility test and two routing targets.
//   - Parse reads one six-line block; ParseAll reads blank-line separated blocks.
//   - Format / FormatAll render actors back into the same grammar.
//
// Grammar (indentation is exact):
//
//	Monkey 0:
//	  Starting items: 79, 98
//	  Operation: new = old * 19
//	  Test: divisible by 23
//	    If true: throw to monkey 2
//	    If false: throw to monkey 3
//
// The header keyword may be "Monkey" or "Actor"; the target noun follows it
// in lower case. The number in the header is decorative: an actor's identity
// is its position in the parsed slice.
//
// Numeric domain:
//
//   - Actor, Operation and the parsers are generic over constraints.Unsigned.
//     Literals that do not fit the chosen width are parse failures.
//
// Errors:
//
//   - ErrEmptyInput: no actor blocks at all.
//   - ErrParse: matched by every *ParseError (use errors.Is).
//   - ErrZeroDivisor, ErrTargetOutOfRange: semantic failures, wrapped in a *ParseError.
package actor
