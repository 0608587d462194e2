package outcome

import (
	"errors"
	"fmt"
	"reflect"
)

// Static errors.
var (
	// ErrNilValue is the default failure produced by FromPointer when the
	// pointer is nil and no error supplier was given.
	ErrNilValue = errors.New("value is nil")

	// ErrAbsentValue is the default failure produced by FromOK when ok is
	// false and no error supplier was given.
	ErrAbsentValue = errors.New("value is absent")
)

// PanicError wraps a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Outcome encapsulates either a successful value of type T or a failure
// with a non-nil error. Exactly one variant is active; the zero value is a
// success holding T's zero value.
type Outcome[T any] struct {
	value T
	err   error
}

// Success returns a successful Outcome containing value. The value may be
// the zero value (including a nil pointer/interface) if T permits it.
func Success[T any](value T) Outcome[T] {
	return Outcome[T]{value: value}
}

// Failure returns a failed Outcome containing err.
//
// A nil error is a precondition violation and panics immediately: a Failure
// must always carry an accessible error value.
func Failure[T any](err error) Outcome[T] {
	if err == nil {
		panic("outcome: Failure requires a non-nil error")
	}

	return Outcome[T]{err: err}
}

// Of converts a conventional (value, error) pair into an Outcome: Failure
// if err is non-nil, Success of value otherwise.
func Of[T any](value T, err error) Outcome[T] {
	if err != nil {
		return Failure[T](err)
	}

	return Success(value)
}

// FromPointer returns Success of the pointed-to value if ptr is non-nil,
// otherwise a Failure with errFn() (or ErrNilValue when errFn is nil).
func FromPointer[T any](ptr *T, errFn func() error) Outcome[T] {
	if ptr != nil {
		return Success(*ptr)
	}

	if errFn == nil {
		return Failure[T](ErrNilValue)
	}

	return Failure[T](errFn())
}

// FromOK converts a comma-ok pair into an Outcome: Success of value if ok,
// otherwise a Failure with errFn() (or ErrAbsentValue when errFn is nil).
func FromOK[T any](value T, ok bool, errFn func() error) Outcome[T] {
	if ok {
		return Success(value)
	}

	if errFn == nil {
		return Failure[T](ErrAbsentValue)
	}

	return Failure[T](errFn())
}

// FromCondition returns Success of value if condition holds, otherwise a
// Failure with errFn().
func FromCondition[T any](condition bool, value T, errFn func() error) Outcome[T] {
	if condition {
		return Success(value)
	}

	return Failure[T](errFn())
}

// FromPredicate returns Success of value if predicate(value) holds,
// otherwise a Failure with errFn().
func FromPredicate[T any](value T, predicate func(T) bool, errFn func() error) Outcome[T] {
	return FromCondition(predicate(value), value, errFn)
}

// Run executes fn and wraps its result: Failure if fn returns a non-nil
// error, Success otherwise. Panics raised by fn propagate unimpeded; use
// RunCatching to contain them.
func Run[T any](fn func() (T, error)) Outcome[T] {
	return Of(fn())
}

// RunCatching executes fn and wraps its result like Run, additionally
// recovering any panic raised by fn. A recovered panic value that is an
// error is stored as-is; any other value is wrapped in *PanicError.
func RunCatching[T any](fn func() (T, error)) (result Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			result = Failure[T](panicToError(r))
		}
	}()

	return Of(fn())
}

// Sequence collects multiple Outcomes into a single Outcome holding all
// successful values in argument order. It short-circuits at the first
// failure, returning that failure. An empty call yields Success of an
// empty slice.
func Sequence[T any](outcomes ...Outcome[T]) Outcome[[]T] {
	values := make([]T, 0, len(outcomes))

	for _, o := range outcomes {
		if o.err != nil {
			return Failure[[]T](o.err)
		}

		values = append(values, o.value)
	}

	return Success(values)
}

// IsSuccess reports whether this Outcome represents a successful value.
func (o Outcome[T]) IsSuccess() bool {
	return o.err == nil
}

// IsFailure reports whether this Outcome represents a failure.
func (o Outcome[T]) IsFailure() bool {
	return o.err != nil
}

// Get returns the value and whether this Outcome is a success.
func (o Outcome[T]) Get() (T, bool) {
	return o.value, o.err == nil
}

// GetOrZero returns the value if success, or T's zero value if failure.
func (o Outcome[T]) GetOrZero() T {
	return o.value
}

// Err returns the error if failure, or nil if success.
func (o Outcome[T]) Err() error {
	return o.err
}

// MustGet returns the value if success or panics with the stored error if
// failure. This is the single deliberate reintroduction of panicking
// control flow, for interop at outer boundaries that expect it; the
// original error value is raised, not a wrapped copy.
func (o Outcome[T]) MustGet() T {
	if o.err != nil {
		panic(o.err)
	}

	return o.value
}

// GetOrDefault returns the value if success, or defaultValue if failure.
func (o Outcome[T]) GetOrDefault(defaultValue T) T {
	if o.err != nil {
		return defaultValue
	}

	return o.value
}

// GetOrElse returns the value if success, or fn(err) if failure.
func (o Outcome[T]) GetOrElse(fn func(error) T) T {
	if o.err != nil {
		return fn(o.err)
	}

	return o.value
}

// GetOrElseGet returns the value if success, or fn() if failure.
func (o Outcome[T]) GetOrElseGet(fn func() T) T {
	if o.err != nil {
		return fn()
	}

	return o.value
}

// Map applies transform to the value if this Outcome is a success; a
// non-nil returned error becomes a Failure. A failed Outcome passes
// through with its original error and transform is not invoked. Panics
// raised by transform propagate; use MapCatching to contain them.
func Map[T, R any](o Outcome[T], transform func(T) (R, error)) Outcome[R] {
	if o.err != nil {
		return Failure[R](o.err)
	}

	return Of(transform(o.value))
}

// MapCatching is Map with a recover boundary around transform: a panic
// raised by transform becomes a Failure instead of propagating.
func MapCatching[T, R any](o Outcome[T], transform func(T) (R, error)) (result Outcome[R]) {
	if o.err != nil {
		return Failure[R](o.err)
	}

	defer func() {
		if r := recover(); r != nil {
			result = Failure[R](panicToError(r))
		}
	}()

	return Of(transform(o.value))
}

// FlatMap applies transform to the value if this Outcome is a success and
// returns its result directly (no nesting). A failed Outcome passes
// through and transform is not invoked. Panics raised by transform
// propagate; use FlatMapCatching to contain them.
func FlatMap[T, R any](o Outcome[T], transform func(T) Outcome[R]) Outcome[R] {
	if o.err != nil {
		return Failure[R](o.err)
	}

	return transform(o.value)
}

// FlatMapCatching is FlatMap with a recover boundary around transform.
func FlatMapCatching[T, R any](o Outcome[T], transform func(T) Outcome[R]) (result Outcome[R]) {
	if o.err != nil {
		return Failure[R](o.err)
	}

	defer func() {
		if r := recover(); r != nil {
			result = Failure[R](panicToError(r))
		}
	}()

	return transform(o.value)
}

// Fold eagerly evaluates exactly one of the two handlers and returns its
// result: onSuccess with the value, or onFailure with the error.
func Fold[T, R any](o Outcome[T], onSuccess func(T) R, onFailure func(error) R) R {
	if o.err != nil {
		return onFailure(o.err)
	}

	return onSuccess(o.value)
}

// Combine merges two Outcomes with combiner if both are successes; a
// non-nil combiner error becomes a Failure. If either operand failed, the
// first failure in argument order wins (a is checked before b).
func Combine[T, U, R any](a Outcome[T], b Outcome[U], combiner func(T, U) (R, error)) Outcome[R] {
	if a.err != nil {
		return Failure[R](a.err)
	}

	if b.err != nil {
		return Failure[R](b.err)
	}

	return Of(combiner(a.value, b.value))
}

// Recover applies transform to the error if this Outcome is a failure,
// producing a new success (or a new failure if transform returns a non-nil
// error). A successful Outcome is returned unchanged and transform is not
// invoked. Panics raised by transform propagate; use RecoverCatching to
// contain them.
func (o Outcome[T]) Recover(transform func(error) (T, error)) Outcome[T] {
	if o.err == nil {
		return o
	}

	return Of(transform(o.err))
}

// RecoverCatching is Recover with a recover boundary around transform.
func (o Outcome[T]) RecoverCatching(transform func(error) (T, error)) (result Outcome[T]) {
	if o.err == nil {
		return o
	}

	defer func() {
		if r := recover(); r != nil {
			result = Failure[T](panicToError(r))
		}
	}()

	return Of(transform(o.err))
}

// Filter keeps a success whose value satisfies predicate; a success whose
// value does not becomes a Failure with errFn(). A failed Outcome passes
// through unchanged.
func (o Outcome[T]) Filter(predicate func(T) bool, errFn func() error) Outcome[T] {
	if o.err != nil {
		return o
	}

	if predicate(o.value) {
		return o
	}

	return Failure[T](errFn())
}

// OnSuccess invokes action with the value if this Outcome is a success and
// returns the Outcome unchanged.
func (o Outcome[T]) OnSuccess(action func(T)) Outcome[T] {
	if o.err == nil {
		action(o.value)
	}

	return o
}

// OnFailure invokes action with the error if this Outcome is a failure and
// returns the Outcome unchanged.
func (o Outcome[T]) OnFailure(action func(error)) Outcome[T] {
	if o.err != nil {
		action(o.err)
	}

	return o
}

// Peek is an alias of OnSuccess, for fluent logging/diagnostic chains.
func (o Outcome[T]) Peek(action func(T)) Outcome[T] {
	return o.OnSuccess(action)
}

// PeekError is an alias of OnFailure, for fluent logging/diagnostic chains.
func (o Outcome[T]) PeekError(action func(error)) Outcome[T] {
	return o.OnFailure(action)
}

// ToPointer returns a pointer to the value if success, or nil if failure.
func (o Outcome[T]) ToPointer() *T {
	if o.err != nil {
		return nil
	}

	value := o.value

	return &value
}

// ToSlice returns a zero-or-one element slice containing the value iff
// this Outcome is a success.
func (o Outcome[T]) ToSlice() []T {
	if o.err != nil {
		return nil
	}

	return []T{o.value}
}

// Equal reports whether two Outcomes are equal: both successes with deeply
// equal values, or both failures with the same error value or identical
// error messages.
func (o Outcome[T]) Equal(other Outcome[T]) bool {
	if o.IsSuccess() != other.IsSuccess() {
		return false
	}

	if o.err != nil {
		return errorsEqual(o.err, other.err)
	}

	return reflect.DeepEqual(o.value, other.value)
}

// String renders the Outcome as Success(value) or Failure(error).
func (o Outcome[T]) String() string {
	if o.err != nil {
		return fmt.Sprintf("Failure(%v)", o.err)
	}

	return fmt.Sprintf("Success(%v)", o.value)
}

func errorsEqual(a, b error) bool {
	if a == b { //nolint:errorlint // deliberate identity comparison first
		return true
	}

	return a != nil && b != nil && a.Error() == b.Error()
}

func panicToError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}

	return &PanicError{Value: recovered}
}
