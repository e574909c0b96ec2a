package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studium/internal/application/catalog/dto"
	"studium/internal/application/catalog/usecases"
	workflowUsecases "studium/internal/application/workflow/usecases"
	resourcevo "studium/internal/domain/resource/valueobjects"
	"studium/internal/shared/authorization"
	"studium/internal/shared/constants"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

// ClassHandler serves class administration, listing, and feedback.
type ClassHandler struct {
	createUseCase       usecases.CreateClassExecutor
	updateUseCase       usecases.UpdateClassExecutor
	deleteUseCase       usecases.DeleteClassExecutor
	getUseCase          usecases.GetClassExecutor
	listUseCase         usecases.ListClassesExecutor
	addFeedbackUseCase  usecases.AddFeedbackExecutor
	listFeedbackUseCase usecases.ListFeedbackExecutor
	availabilityUseCase workflowUsecases.GetAvailabilityExecutor
	logger              logger.Interface
}

func NewClassHandler(
	createUC usecases.CreateClassExecutor,
	updateUC usecases.UpdateClassExecutor,
	deleteUC usecases.DeleteClassExecutor,
	getUC usecases.GetClassExecutor,
	listUC usecases.ListClassesExecutor,
	addFeedbackUC usecases.AddFeedbackExecutor,
	listFeedbackUC usecases.ListFeedbackExecutor,
	availabilityUC workflowUsecases.GetAvailabilityExecutor,
	logger logger.Interface,
) *ClassHandler {
	return &ClassHandler{
		createUseCase:       createUC,
		updateUseCase:       updateUC,
		deleteUseCase:       deleteUC,
		getUseCase:          getUC,
		listUseCase:         listUC,
		addFeedbackUseCase:  addFeedbackUC,
		listFeedbackUseCase: listFeedbackUC,
		availabilityUseCase: availabilityUC,
		logger:              logger,
	}
}

type ScheduleSlotRequest struct {
	DayOfWeek   int `json:"day_of_week" binding:"min=0,max=6"`
	StartMinute int `json:"start_minute" binding:"min=0,max=1439"`
	EndMinute   int `json:"end_minute" binding:"min=1,max=1440"`
}

type CreateClassRequest struct {
	Title       string                `json:"title" binding:"required,min=1,max=255"`
	Description string                `json:"description" binding:"max=2000"`
	TeacherID   uint                  `json:"teacher_id"`
	Capacity    int                   `json:"capacity" binding:"required,min=1"`
	Schedule    []ScheduleSlotRequest `json:"schedule" binding:"required,min=1,dive"`
}

type UpdateClassRequest struct {
	Title       string                `json:"title" binding:"required,min=1,max=255"`
	Description string                `json:"description" binding:"max=2000"`
	Capacity    int                   `json:"capacity" binding:"required,min=1"`
	Schedule    []ScheduleSlotRequest `json:"schedule" binding:"required,min=1,dive"`
}

type AddFeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

func scheduleDTOs(slots []ScheduleSlotRequest) []dto.ScheduleSlotDTO {
	out := make([]dto.ScheduleSlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, dto.ScheduleSlotDTO{
			DayOfWeek:   s.DayOfWeek,
			StartMinute: s.StartMinute,
			EndMinute:   s.EndMinute,
		})
	}
	return out
}

func actorFromContext(c *gin.Context) (uint, authorization.UserRole, error) {
	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		return 0, "", err
	}
	role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
	return actorID, role, nil
}

func (h *ClassHandler) Create(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, role, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Teachers always create classes for themselves; only admins may
	// assign another teacher.
	teacherID := req.TeacherID
	if teacherID == 0 || !role.IsAdmin() {
		teacherID = actorID
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateClassCommand{
		Title:       req.Title,
		Description: req.Description,
		TeacherID:   teacherID,
		Capacity:    req.Capacity,
		Schedule:    scheduleDTOs(req.Schedule),
	})
	if err != nil {
		h.logger.Errorw("failed to create class", "error", err, "title", req.Title)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"class_id":    result.ClassID,
		"resource_id": result.ResourceID,
	}, "class created")
}

func (h *ClassHandler) Update(c *gin.Context) {
	classID, err := utils.ParseIDParam(c, "id", "class")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, role, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateClassCommand{
		ClassID:     classID,
		ActorID:     actorID,
		ActorRole:   role,
		Title:       req.Title,
		Description: req.Description,
		Capacity:    req.Capacity,
		Schedule:    scheduleDTOs(req.Schedule),
	})
	if err != nil {
		h.logger.Errorw("failed to update class", "error", err, "class_id", classID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "class updated", gin.H{
		"class_id":        result.ClassID,
		"capacity":        result.Capacity,
		"available_seats": result.AvailableSeats,
	})
}

func (h *ClassHandler) Delete(c *gin.Context) {
	classID, err := utils.ParseIDParam(c, "id", "class")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, role, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteClassCommand{
		ClassID:   classID,
		ActorID:   actorID,
		ActorRole: role,
	})
	if err != nil {
		h.logger.Errorw("failed to delete class", "error", err, "class_id", classID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "class deleted", gin.H{
		"class_id":          result.ClassID,
		"rejected_requests": result.RejectedRequests,
	})
}

func (h *ClassHandler) Get(c *gin.Context) {
	classID, err := utils.ParseIDParam(c, "id", "class")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetClassQuery{ClassID: classID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"class":           result.Class,
		"resource_id":     result.ResourceID,
		"available_seats": result.AvailableSeats,
	})
}

func (h *ClassHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	var teacherID uint
	if raw := c.Query("teacher_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			teacherID = uint(id)
		}
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListClassesQuery{
		Search:     c.Query("search"),
		TeacherID:  teacherID,
		Pagination: pagination,
	})
	if err != nil {
		h.logger.Errorw("failed to list classes", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Classes, result.Total, pagination.Page, pagination.PageSize)
}

func (h *ClassHandler) AddFeedback(c *gin.Context) {
	classID, err := utils.ParseIDParam(c, "id", "class")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	studentID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addFeedbackUseCase.Execute(c.Request.Context(), usecases.AddFeedbackCommand{
		ClassID:   classID,
		StudentID: studentID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		h.logger.Warnw("failed to add feedback", "error", err, "class_id", classID, "student_id", studentID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"feedback_id": result.FeedbackID,
		"created_at":  result.CreatedAt,
	}, "feedback recorded")
}

func (h *ClassHandler) ListFeedback(c *gin.Context) {
	classID, err := utils.ParseIDParam(c, "id", "class")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.listFeedbackUseCase.Execute(c.Request.Context(), usecases.ListFeedbackQuery{
		ClassID:    classID,
		Pagination: pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Feedback, result.Total, pagination.Page, pagination.PageSize)
}

// Availability reads the seat pool counters for one class.
func (h *ClassHandler) Availability(c *gin.Context) {
	classID, err := utils.ParseIDParam(c, "id", "class")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	availability, err := h.availabilityUseCase.Execute(c.Request.Context(), workflowUsecases.GetAvailabilityQuery{
		Kind:  resourcevo.KindClassSeats.String(),
		RefID: classID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", availability)
}
