package mappers

import (
	"studium/internal/domain/book"
	"studium/internal/infrastructure/persistence/models"
)

// BookMapper handles the conversion between domain entities and persistence models
type BookMapper interface {
	ToEntity(model *models.BookModel) (*book.Book, error)
	ToModel(entity *book.Book) *models.BookModel
	ToEntities(models []*models.BookModel) ([]*book.Book, error)
}

type bookMapper struct{}

// NewBookMapper creates a new book mapper
func NewBookMapper() BookMapper {
	return &bookMapper{}
}

func (m *bookMapper) ToEntity(model *models.BookModel) (*book.Book, error) {
	if model == nil {
		return nil, nil
	}

	return book.ReconstructBook(
		model.ID,
		model.Title,
		model.Author,
		model.ISBN,
		model.TotalCopies,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *bookMapper) ToModel(entity *book.Book) *models.BookModel {
	if entity == nil {
		return nil
	}

	return &models.BookModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Author:      entity.Author(),
		ISBN:        entity.ISBN(),
		TotalCopies: entity.TotalCopies(),
		Version:     entity.Version(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *bookMapper) ToEntities(bookModels []*models.BookModel) ([]*book.Book, error) {
	entities := make([]*book.Book, 0, len(bookModels))
	for _, model := range bookModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
