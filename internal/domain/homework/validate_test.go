package homework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_EmptyResponses(t *testing.T) {
	for _, response := range []any{nil, false, float64(0), "", []any{}} {
		ok, err := Validate(response)
		assert.NoError(t, err, "response %#v", response)
		assert.False(t, ok, "response %#v", response)
	}
}

func TestValidate_NotMapping(t *testing.T) {
	ok, err := Validate([]any{"homeworks"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrType)
	assert.False(t, ok)
}

func TestValidate_MissingHomeworksKey(t *testing.T) {
	for _, response := range []any{
		map[string]any{},
		map[string]any{"current_date": float64(1700000000)},
	} {
		ok, err := Validate(response)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrKey)
		assert.False(t, ok)
	}
}

func TestValidate_HomeworksNotList(t *testing.T) {
	ok, err := Validate(map[string]any{"homeworks": map[string]any{"status": "approved"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrType)
	assert.False(t, ok)
}

func TestValidate_Valid(t *testing.T) {
	response := map[string]any{
		"homeworks": []any{
			map[string]any{"homework_name": "hw1", "status": "reviewing"},
		},
	}
	ok, err := Validate(response)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, Homeworks(response), 1)

	ok, err = Validate(map[string]any{"homeworks": []any{}})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, Homeworks(map[string]any{"homeworks": []any{}}))
}
