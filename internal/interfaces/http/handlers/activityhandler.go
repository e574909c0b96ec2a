package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"studium/internal/application/activity/usecases"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

// ActivityHandler serves the admin activity feed.
type ActivityHandler struct {
	listUseCase usecases.ListActivitiesExecutor
	logger      logger.Interface
}

func NewActivityHandler(listUC usecases.ListActivitiesExecutor, logger logger.Interface) *ActivityHandler {
	return &ActivityHandler{
		listUseCase: listUC,
		logger:      logger,
	}
}

func (h *ActivityHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	var actorID uint
	if raw := c.Query("actor_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			actorID = uint(id)
		}
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListActivitiesQuery{
		ActorID:    actorID,
		Pagination: pagination,
	})
	if err != nil {
		h.logger.Errorw("failed to list activities", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Activities, result.Total, pagination.Page, pagination.PageSize)
}
