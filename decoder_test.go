package seedweaver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_YAMLRecords(t *testing.T) {
	t.Run("should decode records in document order", func(t *testing.T) {
		text := "Melon:\n  name: melon\n  price: 500.0\nOrange:\n  name: orange\n  price: 200.0\nApple:\n  name: apple\n  price: 100.0\n"

		records, err := YAMLRecords[Item](text)
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, "Melon", records[0].Label)
		assert.Equal(t, "melon", records[0].Value.Name)
		assert.Equal(t, 500.0, records[0].Value.Price)

		assert.Equal(t, "Orange", records[1].Label)
		assert.Equal(t, "Apple", records[2].Label)
	})

	t.Run("should return nothing for an empty document", func(t *testing.T) {
		records, err := YAMLRecords[Item]("")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("should reject a top-level sequence", func(t *testing.T) {
		_, err := YAMLRecords[Item]("- name: melon\n  price: 500.0\n")
		assert.Error(t, err)
	})

	t.Run("should surface type mismatches from the underlying decoder", func(t *testing.T) {
		_, err := YAMLRecords[Item]("Melon:\n  name: melon\n  price: not-a-number\n")
		assert.Error(t, err)
	})
}
