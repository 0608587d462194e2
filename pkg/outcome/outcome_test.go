package outcome_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/jabrena/cursor-agents-go/pkg/outcome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errBoom     = errors.New("boom")
	errSecond   = errors.New("second failure")
	errTooSmall = errors.New("value too small")
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	o := outcome.Success(42)

	assert.True(t, o.IsSuccess())
	assert.False(t, o.IsFailure())
	assert.Equal(t, 42, o.GetOrZero())
	require.NoError(t, o.Err())
}

func TestSuccess_ZeroValue(t *testing.T) {
	t.Parallel()

	o := outcome.Success[*string](nil)

	assert.True(t, o.IsSuccess())
	assert.Nil(t, o.GetOrZero())
}

func TestFailure(t *testing.T) {
	t.Parallel()

	o := outcome.Failure[int](errBoom)

	assert.False(t, o.IsSuccess())
	assert.True(t, o.IsFailure())
	assert.Zero(t, o.GetOrZero())
	assert.Same(t, errBoom, o.Err())
}

func TestFailure_NilErrorPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "outcome: Failure requires a non-nil error", func() {
		outcome.Failure[int](nil)
	})
}

func TestTotality(t *testing.T) {
	t.Parallel()

	outcomes := []outcome.Outcome[int]{
		outcome.Success(1),
		outcome.Failure[int](errBoom),
		outcome.Of(2, nil),
		outcome.Of(0, errBoom),
	}

	for _, o := range outcomes {
		// Exactly one of the two variants is active.
		assert.NotEqual(t, o.IsSuccess(), o.IsFailure())
	}
}

func TestOf(t *testing.T) {
	t.Parallel()

	assert.True(t, outcome.Of("v", nil).IsSuccess())
	assert.True(t, outcome.Of("", errBoom).IsFailure())
}

func TestFromPointer(t *testing.T) {
	t.Parallel()

	value := 7
	o := outcome.FromPointer(&value, nil)
	require.True(t, o.IsSuccess())
	assert.Equal(t, 7, o.GetOrZero())

	o = outcome.FromPointer[int](nil, nil)
	require.True(t, o.IsFailure())
	assert.ErrorIs(t, o.Err(), outcome.ErrNilValue)

	o = outcome.FromPointer[int](nil, func() error { return errBoom })
	assert.Same(t, errBoom, o.Err())
}

func TestFromOK(t *testing.T) {
	t.Parallel()

	lookup := map[string]int{"a": 1}

	v, ok := lookup["a"]
	o := outcome.FromOK(v, ok, nil)
	require.True(t, o.IsSuccess())
	assert.Equal(t, 1, o.GetOrZero())

	v, ok = lookup["missing"]
	o = outcome.FromOK(v, ok, nil)
	require.True(t, o.IsFailure())
	assert.ErrorIs(t, o.Err(), outcome.ErrAbsentValue)
}

func TestFromCondition(t *testing.T) {
	t.Parallel()

	assert.True(t, outcome.FromCondition(true, 1, func() error { return errBoom }).IsSuccess())
	assert.Same(t, errBoom, outcome.FromCondition(false, 1, func() error { return errBoom }).Err())
}

func TestFromPredicate(t *testing.T) {
	t.Parallel()

	positive := func(v int) bool { return v > 0 }

	o := outcome.FromPredicate(5, positive, func() error { return errTooSmall })
	assert.True(t, o.IsSuccess())

	o = outcome.FromPredicate(-5, positive, func() error { return errTooSmall })
	assert.Same(t, errTooSmall, o.Err())
}

func TestRunCatching_RoundTrip(t *testing.T) {
	t.Parallel()

	o := outcome.RunCatching(func() (string, error) { return "value", nil })
	require.True(t, o.IsSuccess())
	assert.Equal(t, "value", o.GetOrZero())

	o = outcome.RunCatching(func() (string, error) { return "", errBoom })
	require.True(t, o.IsFailure())
	assert.Same(t, errBoom, o.Err())
}

func TestRunCatching_RecoversPanic(t *testing.T) {
	t.Parallel()

	o := outcome.RunCatching(func() (int, error) { panic(errBoom) })
	require.True(t, o.IsFailure())
	assert.Same(t, errBoom, o.Err())

	o = outcome.RunCatching(func() (int, error) { panic("not an error") })
	require.True(t, o.IsFailure())

	panicErr := &outcome.PanicError{}
	require.ErrorAs(t, o.Err(), &panicErr)
	assert.Equal(t, "not an error", panicErr.Value)
}

func TestRun_PanicPropagates(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		outcome.Run(func() (int, error) { panic(errBoom) })
	})
}

func TestSequence(t *testing.T) {
	t.Parallel()

	t.Run("all successes preserve order", func(t *testing.T) {
		t.Parallel()

		o := outcome.Sequence(outcome.Success(1), outcome.Success(2), outcome.Success(3))
		require.True(t, o.IsSuccess())
		assert.Equal(t, []int{1, 2, 3}, o.GetOrZero())
	})

	t.Run("first failure wins", func(t *testing.T) {
		t.Parallel()

		o := outcome.Sequence(
			outcome.Success(1),
			outcome.Failure[int](errBoom),
			outcome.Success(3),
			outcome.Failure[int](errSecond),
		)
		require.True(t, o.IsFailure())
		assert.Same(t, errBoom, o.Err())
	})

	t.Run("empty yields success of empty slice", func(t *testing.T) {
		t.Parallel()

		o := outcome.Sequence[int]()
		require.True(t, o.IsSuccess())
		assert.Empty(t, o.GetOrZero())
	})
}

func TestMustGet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", outcome.Success("x").MustGet())

	// The original error value is raised, not a wrapped copy.
	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)
		assert.Same(t, errBoom, recovered)
	}()

	outcome.Failure[string](errBoom).MustGet()
}

func TestGetOrDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, outcome.Success(1).GetOrDefault(9))
	assert.Equal(t, 9, outcome.Failure[int](errBoom).GetOrDefault(9))
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	fromErr := func(err error) string { return "recovered: " + err.Error() }

	assert.Equal(t, "v", outcome.Success("v").GetOrElse(fromErr))
	assert.Equal(t, "recovered: boom", outcome.Failure[string](errBoom).GetOrElse(fromErr))
}

func TestGetOrElseGet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "v", outcome.Success("v").GetOrElseGet(func() string { return "fallback" }))
	assert.Equal(t, "fallback", outcome.Failure[string](errBoom).GetOrElseGet(func() string { return "fallback" }))
}

func TestGet(t *testing.T) {
	t.Parallel()

	v, ok := outcome.Success(5).Get()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	v, ok = outcome.Failure[int](errBoom).Get()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("transforms success", func(t *testing.T) {
		t.Parallel()

		o := outcome.Map(outcome.Success(21), func(v int) (string, error) {
			return strconv.Itoa(v * 2), nil
		})
		require.True(t, o.IsSuccess())
		assert.Equal(t, "42", o.GetOrZero())
	})

	t.Run("returned error becomes failure", func(t *testing.T) {
		t.Parallel()

		o := outcome.Map(outcome.Success(1), func(int) (string, error) {
			return "", errBoom
		})
		require.True(t, o.IsFailure())
		assert.Same(t, errBoom, o.Err())
	})

	t.Run("failure short-circuits without invoking transform", func(t *testing.T) {
		t.Parallel()

		invoked := false
		o := outcome.Map(outcome.Failure[int](errBoom), func(int) (string, error) {
			invoked = true

			return "", nil
		})

		assert.False(t, invoked)
		assert.Same(t, errBoom, o.Err())
	})

	t.Run("panic propagates", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			outcome.Map(outcome.Success(1), func(int) (string, error) { panic(errBoom) })
		})
	})
}

func TestMapCatching(t *testing.T) {
	t.Parallel()

	// Same transform that propagates under Map yields a Failure here.
	o := outcome.MapCatching(outcome.Success(1), func(int) (string, error) { panic(errBoom) })
	require.True(t, o.IsFailure())
	assert.Same(t, errBoom, o.Err())
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	t.Run("chains successes", func(t *testing.T) {
		t.Parallel()

		o := outcome.FlatMap(outcome.Success(2), func(v int) outcome.Outcome[string] {
			return outcome.Success(strconv.Itoa(v))
		})
		require.True(t, o.IsSuccess())
		assert.Equal(t, "2", o.GetOrZero())
	})

	t.Run("returns transform failure directly", func(t *testing.T) {
		t.Parallel()

		o := outcome.FlatMap(outcome.Success(2), func(int) outcome.Outcome[string] {
			return outcome.Failure[string](errBoom)
		})
		assert.Same(t, errBoom, o.Err())
	})

	t.Run("failure short-circuits without invoking transform", func(t *testing.T) {
		t.Parallel()

		invoked := false
		o := outcome.FlatMap(outcome.Failure[int](errBoom), func(int) outcome.Outcome[string] {
			invoked = true

			return outcome.Success("")
		})

		assert.False(t, invoked)
		assert.Same(t, errBoom, o.Err())
	})
}

func TestFlatMapCatching(t *testing.T) {
	t.Parallel()

	o := outcome.FlatMapCatching(outcome.Success(1), func(int) outcome.Outcome[string] {
		panic(errBoom)
	})
	require.True(t, o.IsFailure())
	assert.Same(t, errBoom, o.Err())
}

func TestFold(t *testing.T) {
	t.Parallel()

	t.Run("invokes exactly the success branch", func(t *testing.T) {
		t.Parallel()

		successCalls, failureCalls := 0, 0
		result := outcome.Fold(outcome.Success(10),
			func(v int) int { successCalls++; return v * 2 },
			func(error) int { failureCalls++; return -1 },
		)

		assert.Equal(t, 20, result)
		assert.Equal(t, 1, successCalls)
		assert.Zero(t, failureCalls)
	})

	t.Run("invokes exactly the failure branch", func(t *testing.T) {
		t.Parallel()

		result := outcome.Fold(outcome.Failure[int](errBoom),
			func(int) string { return "ok" },
			func(err error) string { return err.Error() },
		)

		assert.Equal(t, "boom", result)
	})
}

func TestCombine(t *testing.T) {
	t.Parallel()

	concat := func(a int, b string) (string, error) { return strconv.Itoa(a) + b, nil }

	t.Run("both successes", func(t *testing.T) {
		t.Parallel()

		o := outcome.Combine(outcome.Success(1), outcome.Success("x"), concat)
		require.True(t, o.IsSuccess())
		assert.Equal(t, "1x", o.GetOrZero())
	})

	t.Run("left failure wins", func(t *testing.T) {
		t.Parallel()

		o := outcome.Combine(outcome.Failure[int](errBoom), outcome.Failure[string](errSecond), concat)
		assert.Same(t, errBoom, o.Err())
	})

	t.Run("right failure when left succeeds", func(t *testing.T) {
		t.Parallel()

		o := outcome.Combine(outcome.Success(1), outcome.Failure[string](errSecond), concat)
		assert.Same(t, errSecond, o.Err())
	})

	t.Run("combiner error becomes failure", func(t *testing.T) {
		t.Parallel()

		o := outcome.Combine(outcome.Success(1), outcome.Success("x"),
			func(int, string) (string, error) { return "", errBoom })
		assert.Same(t, errBoom, o.Err())
	})
}

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("recovers failure", func(t *testing.T) {
		t.Parallel()

		o := outcome.Failure[string](errBoom).Recover(func(err error) (string, error) {
			return "recovered from " + err.Error(), nil
		})
		require.True(t, o.IsSuccess())
		assert.Equal(t, "recovered from boom", o.GetOrZero())
	})

	t.Run("success is identity and transform not invoked", func(t *testing.T) {
		t.Parallel()

		invoked := false
		original := outcome.Success("v")
		o := original.Recover(func(error) (string, error) {
			invoked = true

			return "", nil
		})

		assert.False(t, invoked)
		assert.True(t, o.Equal(original))
	})

	t.Run("transform error becomes new failure", func(t *testing.T) {
		t.Parallel()

		o := outcome.Failure[string](errBoom).Recover(func(error) (string, error) {
			return "", errSecond
		})
		assert.Same(t, errSecond, o.Err())
	})

	t.Run("panic propagates", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			outcome.Failure[string](errBoom).Recover(func(error) (string, error) { panic(errSecond) })
		})
	})
}

func TestRecoverCatching(t *testing.T) {
	t.Parallel()

	o := outcome.Failure[string](errBoom).RecoverCatching(func(error) (string, error) {
		panic(errSecond)
	})
	require.True(t, o.IsFailure())
	assert.Same(t, errSecond, o.Err())
}

func TestFilter(t *testing.T) {
	t.Parallel()

	positive := func(v int) bool { return v > 0 }
	supply := func() error { return errTooSmall }

	assert.True(t, outcome.Success(5).Filter(positive, supply).IsSuccess())
	assert.Same(t, errTooSmall, outcome.Success(-5).Filter(positive, supply).Err())

	// Existing failures pass through unchanged.
	assert.Same(t, errBoom, outcome.Failure[int](errBoom).Filter(positive, supply).Err())
}

func TestSideEffects(t *testing.T) {
	t.Parallel()

	t.Run("OnSuccess fires only on success", func(t *testing.T) {
		t.Parallel()

		var seen []int

		o := outcome.Success(1).OnSuccess(func(v int) { seen = append(seen, v) })
		assert.Equal(t, []int{1}, seen)
		assert.True(t, o.Equal(outcome.Success(1)))

		outcome.Failure[int](errBoom).OnSuccess(func(v int) { seen = append(seen, v) })
		assert.Equal(t, []int{1}, seen)
	})

	t.Run("OnFailure fires only on failure", func(t *testing.T) {
		t.Parallel()

		var seen []error

		o := outcome.Failure[int](errBoom).OnFailure(func(err error) { seen = append(seen, err) })
		assert.Equal(t, []error{errBoom}, seen)
		assert.True(t, o.IsFailure())

		outcome.Success(1).OnFailure(func(err error) { seen = append(seen, err) })
		assert.Len(t, seen, 1)
	})

	t.Run("Peek and PeekError mirror OnSuccess and OnFailure", func(t *testing.T) {
		t.Parallel()

		peeked, peekedErrs := 0, 0

		outcome.Success(1).Peek(func(int) { peeked++ }).PeekError(func(error) { peekedErrs++ })
		outcome.Failure[int](errBoom).Peek(func(int) { peeked++ }).PeekError(func(error) { peekedErrs++ })

		assert.Equal(t, 1, peeked)
		assert.Equal(t, 1, peekedErrs)
	})
}

func TestConversions(t *testing.T) {
	t.Parallel()

	ptr := outcome.Success(5).ToPointer()
	require.NotNil(t, ptr)
	assert.Equal(t, 5, *ptr)
	assert.Nil(t, outcome.Failure[int](errBoom).ToPointer())

	assert.Equal(t, []int{5}, outcome.Success(5).ToSlice())
	assert.Nil(t, outcome.Failure[int](errBoom).ToSlice())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, outcome.Success(1).Equal(outcome.Success(1)))
	assert.False(t, outcome.Success(1).Equal(outcome.Success(2)))
	assert.False(t, outcome.Success(1).Equal(outcome.Failure[int](errBoom)))
	assert.True(t, outcome.Failure[int](errBoom).Equal(outcome.Failure[int](errBoom)))
	assert.True(t, outcome.Failure[int](errBoom).Equal(outcome.Failure[int](errors.New("boom"))))
	assert.False(t, outcome.Failure[int](errBoom).Equal(outcome.Failure[int](errSecond)))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Success(42)", outcome.Success(42).String())
	assert.Equal(t, "Failure(boom)", outcome.Failure[int](errBoom).String())
}

func TestOutcome_ConcurrentReads(t *testing.T) {
	t.Parallel()

	o := outcome.Success(42)
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()

			for j := 0; j < 100; j++ {
				_ = o.IsSuccess()
				_ = o.GetOrZero()
				_, _ = o.Get()
				_ = outcome.Fold(o, func(v int) int { return v }, func(error) int { return 0 })
			}
		}()
	}

	for i := 0; i < 8; i++ {
		<-done
	}
}
