package book

import (
	"context"

	"studium/internal/shared/utils"
)

// Repository defines persistence operations for the book catalog.
type Repository interface {
	Save(ctx context.Context, b *Book) error
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Book, error)

	// List returns catalog entries ordered by title, optionally
	// filtered by a case-insensitive title or author substring.
	List(ctx context.Context, search string, pagination utils.Pagination) ([]*Book, int64, error)

	// ListAll returns the full catalog ordered by title.
	ListAll(ctx context.Context) ([]*Book, error)
}
