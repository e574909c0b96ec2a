package book

import (
	"errors"
	"strings"
	"time"
)

const (
	maxTitleLength  = 200
	maxAuthorLength = 100
)

// Book is a catalog entry. Physical copies are tracked separately as a
// resource pool keyed by the book's ID.
type Book struct {
	id          uint
	title       string
	author      string
	isbn        string
	totalCopies int
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBook(title, author, isbn string, totalCopies int) (*Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	isbn = normalizeISBN(isbn)

	if title == "" || len(title) > maxTitleLength {
		return nil, errors.New("title must be between 1 and 200 characters")
	}
	if author == "" || len(author) > maxAuthorLength {
		return nil, errors.New("author must be between 1 and 100 characters")
	}
	if isbn != "" && !isValidISBN(isbn) {
		return nil, errors.New("invalid ISBN, expected 10 or 13 digits")
	}
	if totalCopies < 0 {
		return nil, errors.New("total copies cannot be negative")
	}

	now := time.Now()
	return &Book{
		title:       title,
		author:      author,
		isbn:        isbn,
		totalCopies: totalCopies,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBook(id uint, title, author, isbn string, totalCopies, version int, createdAt, updatedAt time.Time) *Book {
	return &Book{
		id:          id,
		title:       title,
		author:      author,
		isbn:        isbn,
		totalCopies: totalCopies,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Book) ID() uint             { return b.id }
func (b *Book) Title() string        { return b.title }
func (b *Book) Author() string       { return b.author }
func (b *Book) ISBN() string         { return b.isbn }
func (b *Book) TotalCopies() int     { return b.totalCopies }
func (b *Book) Version() int         { return b.version }
func (b *Book) CreatedAt() time.Time { return b.createdAt }
func (b *Book) UpdatedAt() time.Time { return b.updatedAt }

func (b *Book) SetID(id uint) error {
	if b.id != 0 {
		return errors.New("book ID already set")
	}
	if id == 0 {
		return errors.New("book ID cannot be zero")
	}
	b.id = id
	return nil
}

// UpdateDetails changes the catalog fields. Copy counts are changed
// through SetTotalCopies so the resource pool can follow.
func (b *Book) UpdateDetails(title, author, isbn string) error {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	isbn = normalizeISBN(isbn)

	if title == "" || len(title) > maxTitleLength {
		return errors.New("title must be between 1 and 200 characters")
	}
	if author == "" || len(author) > maxAuthorLength {
		return errors.New("author must be between 1 and 100 characters")
	}
	if isbn != "" && !isValidISBN(isbn) {
		return errors.New("invalid ISBN, expected 10 or 13 digits")
	}

	b.title = title
	b.author = author
	b.isbn = isbn
	b.version++
	b.updatedAt = time.Now()
	return nil
}

func (b *Book) SetTotalCopies(total int) error {
	if total < 0 {
		return errors.New("total copies cannot be negative")
	}
	b.totalCopies = total
	b.version++
	b.updatedAt = time.Now()
	return nil
}

// IsValidISBN reports whether the string is a plausible ISBN-10 or
// ISBN-13 after stripping separators.
func IsValidISBN(isbn string) bool {
	return isValidISBN(normalizeISBN(isbn))
}

func normalizeISBN(isbn string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return -1
		}
		return r
	}, isbn)
}

func isValidISBN(isbn string) bool {
	if len(isbn) != 10 && len(isbn) != 13 {
		return false
	}
	for i, r := range isbn {
		if r >= '0' && r <= '9' {
			continue
		}
		// ISBN-10 allows a trailing X check digit.
		if len(isbn) == 10 && i == 9 && (r == 'X' || r == 'x') {
			continue
		}
		return false
	}
	return true
}
