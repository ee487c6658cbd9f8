package solver

import "errors"

// ErrInvariantViolation is returned when a debug-mode consistency check
// fails: an assertion failure on the consistency of board/groups/
// inferior-cells/VCs. A release build logs it via Config.Logger and
// aborts the current solve, returning Unknown, rather than panicking.
var ErrInvariantViolation = errors.New("solver: invariant violation")

// ErrPatternFileMissing signals a missing external ICE pattern file: in
// this implementation there is no external pattern file to fail to
// load (the compiled table is always present, builtin or caller-
// supplied), so this sentinel exists for API completeness and for
// callers that wire in their own pattern loader ahead of the solver.
var ErrPatternFileMissing = errors.New("solver: ICE pattern file missing, degrading to graph-theoretic rules only")
