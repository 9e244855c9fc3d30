package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVariable_UnsetRead tests that reading before any Set is an error, not a default
func TestVariable_UnsetRead(t *testing.T) {
	t.Parallel()

	v := NewVariable("x")

	_, err := v.Value()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnsetVariable)
	assert.Contains(t, err.Error(), `"x"`)

	// A fresh variable is dirty until the owning context clears it.
	assert.True(t, v.Dirty())
}

// TestVariable_SetAndRead tests the set/read/markclean lifecycle
func TestVariable_SetAndRead(t *testing.T) {
	t.Parallel()

	v := NewVariable("rate")
	v.Set(3.5)
	assert.True(t, v.Dirty(), "Set must mark the variable dirty")

	val, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, 3.5, val)

	v.MarkClean()
	assert.False(t, v.Dirty())

	// MarkClean must not alter the stored value.
	val, err = v.Value()
	require.NoError(t, err)
	assert.Equal(t, 3.5, val)

	// Every assignment dirties again, even with the same value.
	v.Set(3.5)
	assert.True(t, v.Dirty())
}

// TestVariable_Overwrite tests that later assignments win
func TestVariable_Overwrite(t *testing.T) {
	t.Parallel()

	v := NewVariable("x")
	v.Set(1)
	v.Set(2)

	val, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, 2.0, val)
}

// TestVariable_Name tests the registry name accessor
func TestVariable_Name(t *testing.T) {
	t.Parallel()

	v := NewVariable("price")
	assert.Equal(t, "price", v.Name())
	assert.Equal(t, "graph.Variable(price)", v.String())
}
