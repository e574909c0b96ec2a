package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studium/internal/application/workflow/usecases"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

// RequestHandler serves the request ledger: submission by requesters and
// decisions by staff.
type RequestHandler struct {
	submitUseCase      usecases.SubmitRequestExecutor
	approveUseCase     usecases.ApproveRequestExecutor
	rejectUseCase      usecases.RejectRequestExecutor
	listMineUseCase    usecases.ListMyRequestsExecutor
	listPendingUseCase usecases.ListPendingRequestsExecutor
	logger             logger.Interface
}

func NewRequestHandler(
	submitUC usecases.SubmitRequestExecutor,
	approveUC usecases.ApproveRequestExecutor,
	rejectUC usecases.RejectRequestExecutor,
	listMineUC usecases.ListMyRequestsExecutor,
	listPendingUC usecases.ListPendingRequestsExecutor,
	logger logger.Interface,
) *RequestHandler {
	return &RequestHandler{
		submitUseCase:      submitUC,
		approveUseCase:     approveUC,
		rejectUseCase:      rejectUC,
		listMineUseCase:    listMineUC,
		listPendingUseCase: listPendingUC,
		logger:             logger,
	}
}

type SubmitRequestRequest struct {
	ResourceID uint   `json:"resource_id" binding:"required"`
	Days       int    `json:"days" binding:"omitempty,min=1,max=365"`
	Note       string `json:"note" binding:"max=500"`
}

type DecisionRequest struct {
	Note string `json:"note" binding:"max=500"`
}

func (h *RequestHandler) Submit(c *gin.Context) {
	var req SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	requesterID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitUseCase.Execute(c.Request.Context(), usecases.SubmitRequestCommand{
		ResourceID:    req.ResourceID,
		RequesterID:   requesterID,
		RequestedDays: req.Days,
		Note:          req.Note,
	})
	if err != nil {
		h.logger.Warnw("failed to submit request", "error", err,
			"resource_id", req.ResourceID, "requester_id", requesterID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"request_id": result.RequestID,
		"status":     result.Status,
		"created_at": result.CreatedAt,
	}, "request submitted")
}

func (h *RequestHandler) Approve(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Decision note body is optional.
	var req DecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	approverID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.approveUseCase.Execute(c.Request.Context(), usecases.ApproveRequestCommand{
		RequestID:  requestID,
		ApproverID: approverID,
		Note:       req.Note,
	})
	if err != nil {
		h.logger.Warnw("failed to approve request", "error", err, "request_id", requestID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "request approved", gin.H{
		"request_id":    result.RequestID,
		"allocation_id": result.AllocationID,
		"status":        result.Status,
		"due_at":        result.DueAt,
	})
}

func (h *RequestHandler) Reject(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Decision note body is optional.
	var req DecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	rejecterID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.rejectUseCase.Execute(c.Request.Context(), usecases.RejectRequestCommand{
		RequestID:  requestID,
		RejecterID: rejecterID,
		Note:       req.Note,
	})
	if err != nil {
		h.logger.Warnw("failed to reject request", "error", err, "request_id", requestID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "request rejected", gin.H{
		"request_id": result.RequestID,
		"status":     result.Status,
		"decided_at": result.DecidedAt,
	})
}

func (h *RequestHandler) ListMine(c *gin.Context) {
	requesterID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.listMineUseCase.Execute(c.Request.Context(), usecases.ListMyRequestsQuery{
		RequesterID: requesterID,
		Pagination:  pagination,
	})
	if err != nil {
		h.logger.Errorw("failed to list requests", "error", err, "requester_id", requesterID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Requests, result.Total, pagination.Page, pagination.PageSize)
}

func (h *RequestHandler) ListPending(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listPendingUseCase.Execute(c.Request.Context(), usecases.ListPendingRequestsQuery{
		Pagination: pagination,
	})
	if err != nil {
		h.logger.Errorw("failed to list pending requests", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Requests, result.Total, pagination.Page, pagination.PageSize)
}
