package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studium/internal/application/catalog/usecases"
	workflowUsecases "studium/internal/application/workflow/usecases"
	resourcevo "studium/internal/domain/resource/valueobjects"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

// BookHandler serves the book catalog endpoints. Each title is backed by
// a copy pool; availability is read through the pool, never recomputed
// from allocations.
type BookHandler struct {
	createUseCase       usecases.CreateBookExecutor
	updateUseCase       usecases.UpdateBookExecutor
	deleteUseCase       usecases.DeleteBookExecutor
	getUseCase          usecases.GetBookExecutor
	listUseCase         usecases.ListBooksExecutor
	exportUseCase       usecases.ExportBooksExecutor
	availabilityUseCase workflowUsecases.GetAvailabilityExecutor
	logger              logger.Interface
}

func NewBookHandler(
	createUC usecases.CreateBookExecutor,
	updateUC usecases.UpdateBookExecutor,
	deleteUC usecases.DeleteBookExecutor,
	getUC usecases.GetBookExecutor,
	listUC usecases.ListBooksExecutor,
	exportUC usecases.ExportBooksExecutor,
	availabilityUC workflowUsecases.GetAvailabilityExecutor,
	logger logger.Interface,
) *BookHandler {
	return &BookHandler{
		createUseCase:       createUC,
		updateUseCase:       updateUC,
		deleteUseCase:       deleteUC,
		getUseCase:          getUC,
		listUseCase:         listUC,
		exportUseCase:       exportUC,
		availabilityUseCase: availabilityUC,
		logger:              logger,
	}
}

type CreateBookRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Author      string `json:"author" binding:"required,min=1,max=255"`
	ISBN        string `json:"isbn" binding:"required,isbn"`
	TotalCopies int    `json:"total_copies" binding:"required,min=1"`
}

type UpdateBookRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Author      string `json:"author" binding:"required,min=1,max=255"`
	ISBN        string `json:"isbn" binding:"required,isbn"`
	TotalCopies int    `json:"total_copies" binding:"required,min=1"`
}

func (h *BookHandler) Create(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateBookCommand{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		TotalCopies: req.TotalCopies,
	})
	if err != nil {
		h.logger.Errorw("failed to create book", "error", err, "title", req.Title)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"book_id":     result.BookID,
		"resource_id": result.ResourceID,
	}, "book created")
}

func (h *BookHandler) Update(c *gin.Context) {
	bookID, err := utils.ParseIDParam(c, "id", "book")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateBookCommand{
		BookID:      bookID,
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		TotalCopies: req.TotalCopies,
	})
	if err != nil {
		h.logger.Errorw("failed to update book", "error", err, "book_id", bookID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "book updated", gin.H{
		"book_id":         result.BookID,
		"total_copies":    result.TotalCopies,
		"available_units": result.AvailableUnits,
	})
}

func (h *BookHandler) Delete(c *gin.Context) {
	bookID, err := utils.ParseIDParam(c, "id", "book")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteBookCommand{
		BookID:  bookID,
		ActorID: actorID,
	})
	if err != nil {
		h.logger.Errorw("failed to delete book", "error", err, "book_id", bookID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "book deleted", gin.H{
		"book_id":           result.BookID,
		"rejected_requests": result.RejectedRequests,
	})
}

func (h *BookHandler) Get(c *gin.Context) {
	bookID, err := utils.ParseIDParam(c, "id", "book")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetBookQuery{BookID: bookID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"book":            result.Book,
		"resource_id":     result.ResourceID,
		"available_units": result.AvailableUnits,
	})
}

func (h *BookHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListBooksQuery{
		Search:     c.Query("search"),
		Pagination: pagination,
	})
	if err != nil {
		h.logger.Errorw("failed to list books", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Books, result.Total, pagination.Page, pagination.PageSize)
}

// Export streams the full catalog in the requested format. Defaults to
// YAML when no format is given.
func (h *BookHandler) Export(c *gin.Context) {
	result, err := h.exportUseCase.Execute(c.Request.Context(), usecases.ExportBooksQuery{
		Format: c.Query("format"),
	})
	if err != nil {
		h.logger.Errorw("failed to export catalog", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Data(http.StatusOK, result.ContentType, []byte(result.Content))
}

// Availability reads the copy pool counters for one title.
func (h *BookHandler) Availability(c *gin.Context) {
	bookID, err := utils.ParseIDParam(c, "id", "book")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	availability, err := h.availabilityUseCase.Execute(c.Request.Context(), workflowUsecases.GetAvailabilityQuery{
		Kind:  resourcevo.KindBookCopies.String(),
		RefID: bookID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", availability)
}
