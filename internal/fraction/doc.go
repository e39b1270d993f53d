// Package fraction implements an immutable rational number type.
//
// Arithmetic (Add, Sub, Mul, Div) returns results reduced to lowest terms.
// Equality is exact by cross-multiplication. Ordering is exact as well
// (Cmp and friends); ApproxCompare keeps the float64-based comparison for
// callers that want it.
//
// # Errors
//
//   - ErrInvalidArgument: zero denominator at construction or parse time.
//   - ErrDivisionByZero:  Div by a fraction with a zero numerator.
//   - ErrSyntax:          Parse on text that is not "n/d" or "n".
package fraction
