package seed

import (
	"os"
	"path/filepath"
	"testing"

	"bookcatalog/internal/book"
	"bookcatalog/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	data, err := Default()
	require.NoError(t, err)

	require.Len(t, data.Books, 5)
	assert.Equal(t, book.Book{ID: 1, Title: "The Falling Apart", Author: "Emily Thompson", ISBN: "123456789"}, data.Books[0])
	assert.Equal(t, "789012345", data.Books[4].ISBN)

	assert.Equal(t, []user.User{
		{Username: "user1", Password: "password1"},
		{Username: "user2", Password: "password2"},
	}, data.Users)
}

func TestDefault_BuildsStores(t *testing.T) {
	data, err := Default()
	require.NoError(t, err)

	_, err = book.NewMemoryRepo(data.Books)
	assert.NoError(t, err)
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses default", func(t *testing.T) {
		data, err := Load("")
		require.NoError(t, err)
		assert.Len(t, data.Books, 5)
	})

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
books:
  - id: 7
    title: Go in Practice
    author: Someone
    isbn: "111"
`), 0o600))

		data, err := Load(path)
		require.NoError(t, err)
		require.Len(t, data.Books, 1)
		assert.Equal(t, "111", data.Books[0].ISBN)
		assert.Empty(t, data.Users)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "read seed file")
	})
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":     "books:\n  - id: 1\n    tittle: typo\n",
		"user w/o secret": "users:\n  - username: eve\n",
		"not yaml":        "books: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}
