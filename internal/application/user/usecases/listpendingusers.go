package usecases

import (
	"context"
	"time"

	"studium/internal/domain/user"
	vo "studium/internal/domain/user/valueobjects"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

type ListPendingUsersQuery struct {
	Pagination utils.Pagination
}

type PendingUserDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type ListPendingUsersResult struct {
	Users []*PendingUserDTO
	Total int64
}

type ListPendingUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListPendingUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListPendingUsersUseCase {
	return &ListPendingUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListPendingUsersUseCase) Execute(ctx context.Context, query ListPendingUsersQuery) (*ListPendingUsersResult, error) {
	users, total, err := uc.userRepo.ListByStatus(ctx, vo.StatusPending, query.Pagination)
	if err != nil {
		uc.logger.Errorw("failed to list pending users", "error", err)
		return nil, err
	}

	dtos := make([]*PendingUserDTO, 0, len(users))
	for _, account := range users {
		dtos = append(dtos, &PendingUserDTO{
			ID:        account.ID(),
			Name:      account.Name(),
			Email:     account.Email().String(),
			Role:      account.Role().String(),
			CreatedAt: account.CreatedAt(),
		})
	}

	return &ListPendingUsersResult{
		Users: dtos,
		Total: total,
	}, nil
}
