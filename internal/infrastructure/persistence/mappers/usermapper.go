package mappers

import (
	"fmt"

	"studium/internal/domain/user"
	vo "studium/internal/domain/user/valueobjects"
	"studium/internal/infrastructure/persistence/models"
	"studium/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.UserModel) (*user.User, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *user.User) *models.UserModel

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type userMapper struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	status, err := vo.NewUserStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create status value object: %w", err)
	}

	role := authorization.ParseUserRole(model.Role)

	return user.ReconstructUser(
		model.ID,
		model.Name,
		email,
		model.PasswordHash,
		role,
		status,
		model.ApprovedBy,
		model.ApprovedAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *userMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		Name:         entity.Name(),
		Email:        entity.Email().String(),
		PasswordHash: entity.PasswordHash(),
		Role:         entity.Role().String(),
		Status:       entity.Status().String(),
		ApprovedBy:   entity.ApprovedBy(),
		ApprovedAt:   entity.ApprovedAt(),
		Version:      entity.Version(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *userMapper) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
