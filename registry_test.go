package seedweaver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Registry(t *testing.T) {
	t.Run("should return what was inserted", func(t *testing.T) {
		refs := NewRegistry()
		refs.Insert("Alice", "1")

		id, ok := refs.Lookup("Alice")
		require.True(t, ok)
		assert.Equal(t, "1", id)
	})

	t.Run("should report a missing label", func(t *testing.T) {
		refs := NewRegistry()
		_, ok := refs.Lookup("nobody")
		assert.False(t, ok)
	})

	t.Run("should overwrite on duplicate labels, last write wins", func(t *testing.T) {
		refs := NewRegistry()
		refs.Insert("Alice", "1")
		refs.Insert("Alice", "42")

		id, ok := refs.Lookup("Alice")
		require.True(t, ok)
		assert.Equal(t, "42", id)
		assert.Equal(t, 1, refs.Len())
	})

	t.Run("should treat a nil registry as empty", func(t *testing.T) {
		var refs *Registry
		_, ok := refs.Lookup("anything")
		assert.False(t, ok)
		assert.Equal(t, 0, refs.Len())
	})
}
