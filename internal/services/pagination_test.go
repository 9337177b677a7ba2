package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	items := make([]int, DefaultPagingLimit+1)

	t.Run("first page with more", func(t *testing.T) {
		page := NewPagination(0, items)
		assert.Len(t, page.Items, DefaultPagingLimit)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, DefaultPagingLimit, page.NextOffset)
		assert.Equal(t, 2, page.NextPage)
		assert.Equal(t, -1, page.PrevOffset)
	})

	t.Run("last page", func(t *testing.T) {
		page := NewPagination(DefaultPagingLimit, items[:3])
		assert.Len(t, page.Items, 3)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, -1, page.NextOffset)
		assert.Equal(t, 0, page.PrevOffset)
		assert.Equal(t, 1, page.PrevPage)
	})
}

func TestParseCollection(t *testing.T) {
	for _, collection := range Collections {
		parsed, err := ParseCollection(string(collection))
		assert.NoError(t, err)
		assert.Equal(t, collection, parsed)
	}

	_, err := ParseCollection("users; DROP TABLE entries")
	assert.Error(t, err)
}

func TestJSONB(t *testing.T) {
	var links []string
	column := asJSON(&links)

	assert.NoError(t, column.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, []string{"a", "b"}, links)

	value, err := column.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["a","b"]`, value)

	assert.NoError(t, column.Scan(nil))
	assert.Nil(t, links)
	assert.Error(t, column.Scan(42))
}
