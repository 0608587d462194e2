package outcome_test

import (
	"encoding/json"
	"testing"

	"github.com/jabrena/cursor-agents-go/pkg/outcome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON_Success(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(outcome.Success("hello"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","value":"hello"}`, string(data))
}

func TestMarshalJSON_Failure(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(outcome.Failure[string](errBoom))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"failure","error":"boom"}`, string(data))
}

func TestJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		original := outcome.Success(payload{Name: "agent", Count: 3})

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded outcome.Outcome[payload]
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.True(t, decoded.IsSuccess())
		assert.True(t, decoded.Equal(original))
	})

	t.Run("failure round-trips by message", func(t *testing.T) {
		t.Parallel()

		original := outcome.Failure[payload](errBoom)

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded outcome.Outcome[payload]
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.True(t, decoded.IsFailure())
		assert.EqualError(t, decoded.Err(), "boom")
	})

	t.Run("success with zero value", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(outcome.Success(0))
		require.NoError(t, err)

		var decoded outcome.Outcome[int]
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.True(t, decoded.IsSuccess())
		assert.Zero(t, decoded.GetOrZero())
	})
}

func TestUnmarshalJSON_RejectsCorruptState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"unknown status", `{"status":"maybe","value":1}`},
		{"missing status", `{"value":1}`},
		{"failure without error", `{"status":"failure"}`},
		{"failure with value", `{"status":"failure","error":"boom","value":1}`},
		{"success with error", `{"status":"success","value":1,"error":"boom"}`},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var decoded outcome.Outcome[int]

			err := json.Unmarshal([]byte(test.data), &decoded)
			require.Error(t, err)
			assert.ErrorIs(t, err, outcome.ErrInvalidState)
		})
	}
}
