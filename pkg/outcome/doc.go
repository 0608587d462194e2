// Package outcome provides a generic two-variant container, Outcome[T],
// that encapsulates either a successful value of type T or a failure with
// a non-nil error, together with a fluent algebra for composing fallible
// computations without threading (T, error) pairs through every step.
//
// # Overview
//
// An Outcome is an immutable value type. It is created by one of the
// constructors (Success, Failure, Of, Run, RunCatching, ...), inspected with
// IsSuccess/IsFailure, transformed with the combinators (Map, FlatMap,
// Recover, Filter, Combine, Sequence), and consumed with the eliminators
// (Fold, GetOrDefault, GetOrElse, MustGet).
//
//	o := outcome.RunCatching(func() (string, error) {
//	  return fetchRemoteValue()
//	})
//
//	msg := outcome.Fold(o,
//	  func(v string) string { return "got: " + v },
//	  func(err error) string { return "failed: " + err.Error() },
//	)
//
// # Error tiers
//
// The package distinguishes two failure tiers:
//
//   - Ordinary errors are plain error values returned by callbacks. The base
//     combinators (Map, FlatMap, Recover, Combine) convert a non-nil returned
//     error into a Failure and never recover panics.
//   - Panics are treated as catastrophic failures. Only the *Catching family
//     (RunCatching, MapCatching, FlatMapCatching, RecoverCatching) installs a
//     recover boundary; a recovered panic value that is an error is stored
//     as-is, anything else is wrapped in *PanicError.
//
// Callers therefore choose explicitly between "catch only expected failure
// modes" and "catch everything" semantics.
//
// # Concurrency
//
// Outcome values are immutable after construction; all read-only operations
// are safe for concurrent use on the same value without synchronization.
package outcome
