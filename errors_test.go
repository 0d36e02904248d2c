package seedweaver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Errors(t *testing.T) {
	t.Run("should name the offending key in resolution errors", func(t *testing.T) {
		assert.Contains(t, NewMissingEnvError("FOX").Error(), `"FOX"`)
		assert.Contains(t, NewUnresolvedRefError("dog").Error(), `"dog"`)
		assert.Contains(t, NewUnsupportedDirectiveError("REFERENCE").Error(), `"REFERENCE"`)
	})

	t.Run("should unwrap to the underlying cause", func(t *testing.T) {
		cause := errors.New("disk on fire")

		var read *ReadError
		err := error(NewReadError("fixtures/items.yml", cause))
		require.ErrorAs(t, err, &read)
		assert.ErrorIs(t, err, cause)

		err = NewDecodeError("items.yml", cause)
		assert.ErrorIs(t, err, cause)

		err = NewCallbackError("items.yml", "Melon", cause)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("should carry file and label context for session errors", func(t *testing.T) {
		callback := NewCallbackError("orders.yml", "Order1", errors.New("boom"))
		assert.Contains(t, callback.Error(), "orders.yml")
		assert.Contains(t, callback.Error(), `"Order1"`)

		notFound := &RecordNotFoundError{Filename: "items.yml", Label: "Durian"}
		assert.Contains(t, notFound.Error(), "items.yml")
		assert.Contains(t, notFound.Error(), `"Durian"`)
	})
}
