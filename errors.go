package sudoku

import "errors"

// ErrBadInput is returned (often wrapped with more context via
// fmt.Errorf("%w: ...", ErrBadInput)) whenever a caller supplies a malformed
// board string, an out-of-range option, a non-solved config, or any other
// input this package can reject outright. It is the only error this package
// raises to callers; Infeasible/Timeout/CallbackTermination outcomes are
// reported in structured results instead, never as errors.
var ErrBadInput = errors.New("sudoku: bad input")
