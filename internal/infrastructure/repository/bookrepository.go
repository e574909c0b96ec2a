package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"studium/internal/domain/book"
	"studium/internal/infrastructure/persistence/mappers"
	"studium/internal/infrastructure/persistence/models"
	"studium/internal/shared/db"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

// BookRepository implements the book repository interface backed by MySQL
type BookRepository struct {
	db     *gorm.DB
	mapper mappers.BookMapper
	logger logger.Interface
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *gorm.DB, logger logger.Interface) book.Repository {
	return &BookRepository{
		db:     db,
		mapper: mappers.NewBookMapper(),
		logger: logger,
	}
}

// Save creates a new book and sets the generated ID on the entity
func (r *BookRepository) Save(ctx context.Context, entity *book.Book) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create book", "isbn", model.ISBN, "error", err)
		return err
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set book ID: %w", err)
	}

	return nil
}

// Update persists changes to an existing book
func (r *BookRepository) Update(ctx context.Context, entity *book.Book) error {
	model := r.mapper.ToModel(entity)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.BookModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"title":        model.Title,
			"author":       model.Author,
			"isbn":         model.ISBN,
			"total_copies": model.TotalCopies,
			"version":      model.Version + 1,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update book", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("book was modified by another operation")
	}

	return nil
}

// Delete removes a book from the catalog
func (r *BookRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.BookModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete book", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("book not found")
	}

	return nil
}

// GetByID retrieves a book by ID
func (r *BookRepository) GetByID(ctx context.Context, id uint) (*book.Book, error) {
	var model models.BookModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("book not found")
		}
		r.logger.Errorw("failed to get book by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves catalog entries ordered by title with optional search
func (r *BookRepository) List(ctx context.Context, search string, pagination utils.Pagination) ([]*book.Book, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.BookModel{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR author LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count books", "error", err)
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	var bookModels []*models.BookModel
	if err := query.
		Order("title ASC").
		Offset(pagination.Offset()).
		Limit(pagination.PageSize).
		Find(&bookModels).Error; err != nil {
		r.logger.Errorw("failed to list books", "error", err)
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}

	entities, err := r.mapper.ToEntities(bookModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

// ListAll retrieves the full catalog ordered by title.
func (r *BookRepository) ListAll(ctx context.Context) ([]*book.Book, error) {
	var bookModels []*models.BookModel
	if err := db.GetTxFromContext(ctx, r.db).
		Order("title ASC").
		Find(&bookModels).Error; err != nil {
		r.logger.Errorw("failed to list all books", "error", err)
		return nil, fmt.Errorf("failed to list all books: %w", err)
	}

	return r.mapper.ToEntities(bookModels)
}
