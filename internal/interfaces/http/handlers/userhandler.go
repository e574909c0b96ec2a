package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studium/internal/application/user/usecases"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

// UserHandler serves the admin account lifecycle endpoints.
type UserHandler struct {
	listPendingUseCase usecases.ListPendingUsersExecutor
	approveUseCase     usecases.ApproveUserExecutor
	suspendUseCase     usecases.SuspendUserExecutor
	logger             logger.Interface
}

func NewUserHandler(
	listPendingUC usecases.ListPendingUsersExecutor,
	approveUC usecases.ApproveUserExecutor,
	suspendUC usecases.SuspendUserExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		listPendingUseCase: listPendingUC,
		approveUseCase:     approveUC,
		suspendUseCase:     suspendUC,
		logger:             logger,
	}
}

func (h *UserHandler) ListPending(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listPendingUseCase.Execute(c.Request.Context(), usecases.ListPendingUsersQuery{
		Pagination: pagination,
	})
	if err != nil {
		h.logger.Errorw("failed to list pending users", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, pagination.Page, pagination.PageSize)
}

func (h *UserHandler) Approve(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	approverID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.approveUseCase.Execute(c.Request.Context(), usecases.ApproveUserCommand{
		UserID:     userID,
		ApproverID: approverID,
	})
	if err != nil {
		h.logger.Errorw("failed to approve user", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user approved", gin.H{
		"user_id":     result.UserID,
		"status":      result.Status,
		"approved_at": result.ApprovedAt,
	})
}

func (h *UserHandler) Suspend(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.suspendUseCase.Execute(c.Request.Context(), usecases.SuspendUserCommand{
		UserID:  userID,
		ActorID: actorID,
	})
	if err != nil {
		h.logger.Errorw("failed to suspend user", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user suspended", gin.H{
		"user_id": result.UserID,
		"status":  result.Status,
	})
}
