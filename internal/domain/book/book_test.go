package book

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	b, err := NewBook("  The Go Programming Language ", "Donovan, Kernighan", "978-0-13-419044-0", 5)
	require.NoError(t, err)

	assert.Equal(t, "The Go Programming Language", b.Title())
	assert.Equal(t, "Donovan, Kernighan", b.Author())
	assert.Equal(t, "9780134190440", b.ISBN())
	assert.Equal(t, 5, b.TotalCopies())
}

func TestNewBook_Validation(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		author string
		isbn   string
		copies int
	}{
		{"empty title", "", "Author", "", 1},
		{"title too long", strings.Repeat("x", maxTitleLength+1), "Author", "", 1},
		{"empty author", "Title", "", "", 1},
		{"bad isbn length", "Title", "Author", "12345", 1},
		{"bad isbn characters", "Title", "Author", "97801341904AB", 1},
		{"negative copies", "Title", "Author", "", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBook(tt.title, tt.author, tt.isbn, tt.copies)
			assert.Error(t, err)
		})
	}
}

func TestNewBook_ISBN10CheckDigit(t *testing.T) {
	b, err := NewBook("Title", "Author", "0-13-468599-X", 1)
	require.NoError(t, err)
	assert.Equal(t, "013468599X", b.ISBN())
}

func TestBook_UpdateDetails(t *testing.T) {
	b, err := NewBook("Old", "Old Author", "", 3)
	require.NoError(t, err)
	version := b.Version()

	require.NoError(t, b.UpdateDetails("New", "New Author", "9780134190440"))
	assert.Equal(t, "New", b.Title())
	assert.Equal(t, "9780134190440", b.ISBN())
	assert.Equal(t, version+1, b.Version())
	assert.Equal(t, 3, b.TotalCopies())

	assert.Error(t, b.UpdateDetails("", "Author", ""))
}

func TestBook_SetTotalCopies(t *testing.T) {
	b, err := NewBook("Title", "Author", "", 3)
	require.NoError(t, err)

	require.NoError(t, b.SetTotalCopies(0))
	assert.Equal(t, 0, b.TotalCopies())
	assert.Error(t, b.SetTotalCopies(-1))
}
