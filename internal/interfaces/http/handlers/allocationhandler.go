package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studium/internal/application/workflow/usecases"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

// AllocationHandler serves active loans and enrollments.
type AllocationHandler struct {
	listUseCase        usecases.ListAllocationsExecutor
	listOverdueUseCase usecases.ListOverdueAllocationsExecutor
	releaseUseCase     usecases.ReleaseAllocationExecutor
	extendUseCase      usecases.ExtendAllocationExecutor
	logger             logger.Interface
}

func NewAllocationHandler(
	listUC usecases.ListAllocationsExecutor,
	listOverdueUC usecases.ListOverdueAllocationsExecutor,
	releaseUC usecases.ReleaseAllocationExecutor,
	extendUC usecases.ExtendAllocationExecutor,
	logger logger.Interface,
) *AllocationHandler {
	return &AllocationHandler{
		listUseCase:        listUC,
		listOverdueUseCase: listOverdueUC,
		releaseUseCase:     releaseUC,
		extendUseCase:      extendUC,
		logger:             logger,
	}
}

// List returns the caller's own allocations. Staff may pass all=true to
// see every active allocation.
func (h *AllocationHandler) List(c *gin.Context) {
	actorID, role, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	holderID := actorID
	if role.IsStaff() && c.Query("all") == "true" {
		holderID = 0
	}

	pagination := utils.ParsePagination(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListAllocationsQuery{
		HolderID:   holderID,
		Pagination: pagination,
	})
	if err != nil {
		h.logger.Errorw("failed to list allocations", "error", err, "holder_id", holderID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Allocations, result.Total, pagination.Page, pagination.PageSize)
}

func (h *AllocationHandler) ListOverdue(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listOverdueUseCase.Execute(c.Request.Context(), usecases.ListOverdueAllocationsQuery{
		AsOf:       time.Now().UTC(),
		Pagination: pagination,
	})
	if err != nil {
		h.logger.Errorw("failed to list overdue allocations", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Allocations, result.Total, pagination.Page, pagination.PageSize)
}

func (h *AllocationHandler) Release(c *gin.Context) {
	allocationID, err := utils.ParseIDParam(c, "id", "allocation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, role, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.releaseUseCase.Execute(c.Request.Context(), usecases.ReleaseAllocationCommand{
		AllocationID: allocationID,
		ActorID:      actorID,
		ActorRole:    role,
	})
	if err != nil {
		h.logger.Warnw("failed to release allocation", "error", err, "allocation_id", allocationID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "allocation released"
	if result.AlreadyReleased {
		message = "allocation was already released"
	}

	utils.SuccessResponse(c, http.StatusOK, message, gin.H{
		"allocation_id": result.AllocationID,
		"status":        result.Status,
		"released_at":   result.ReleasedAt,
	})
}

func (h *AllocationHandler) Extend(c *gin.Context) {
	allocationID, err := utils.ParseIDParam(c, "id", "allocation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, role, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.extendUseCase.Execute(c.Request.Context(), usecases.ExtendAllocationCommand{
		AllocationID: allocationID,
		ActorID:      actorID,
		ActorRole:    role,
	})
	if err != nil {
		h.logger.Warnw("failed to extend allocation", "error", err, "allocation_id", allocationID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "loan extended", gin.H{
		"allocation_id": result.AllocationID,
		"due_at":        result.DueAt,
		"extensions":    result.Extensions,
	})
}
