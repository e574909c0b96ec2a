package http

import (
	"gorm.io/gorm"

	activityUsecases "studium/internal/application/activity/usecases"
	catalogUsecases "studium/internal/application/catalog/usecases"
	userUsecases "studium/internal/application/user/usecases"
	workflowUsecases "studium/internal/application/workflow/usecases"
	"studium/internal/domain/activity"
	"studium/internal/domain/allocation"
	"studium/internal/domain/book"
	"studium/internal/domain/class"
	"studium/internal/domain/request"
	"studium/internal/domain/resource"
	"studium/internal/domain/shared/events"
	"studium/internal/domain/user"
	"studium/internal/infrastructure/auth"
	"studium/internal/infrastructure/config"
	"studium/internal/infrastructure/repository"
	"studium/internal/interfaces/http/handlers"
	shareddb "studium/internal/shared/db"
	"studium/internal/shared/logger"
)

type repositories struct {
	userRepo       user.Repository
	bookRepo       book.Repository
	classRepo      class.Repository
	feedbackRepo   class.FeedbackRepository
	resourceRepo   resource.Repository
	requestRepo    request.Repository
	allocationRepo allocation.Repository
	activityRepo   activity.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:       repository.NewUserRepository(db, log),
		bookRepo:       repository.NewBookRepository(db, log),
		classRepo:      repository.NewClassRepository(db, log),
		feedbackRepo:   repository.NewFeedbackRepository(db, log),
		resourceRepo:   repository.NewResourceRepository(db, log),
		requestRepo:    repository.NewRequestRepository(db, log),
		allocationRepo: repository.NewAllocationRepository(db, log),
		activityRepo:   repository.NewActivityRepository(db, log),
	}
}

type useCases struct {
	registerUser     *userUsecases.RegisterUserUseCase
	login            *userUsecases.LoginUseCase
	listPendingUsers *userUsecases.ListPendingUsersUseCase
	approveUser      *userUsecases.ApproveUserUseCase
	suspendUser      *userUsecases.SuspendUserUseCase

	createBook  *catalogUsecases.CreateBookUseCase
	updateBook  *catalogUsecases.UpdateBookUseCase
	deleteBook  *catalogUsecases.DeleteBookUseCase
	getBook     *catalogUsecases.GetBookUseCase
	listBooks   *catalogUsecases.ListBooksUseCase
	exportBooks *catalogUsecases.ExportBooksUseCase

	createClass  *catalogUsecases.CreateClassUseCase
	updateClass  *catalogUsecases.UpdateClassUseCase
	deleteClass  *catalogUsecases.DeleteClassUseCase
	getClass     *catalogUsecases.GetClassUseCase
	listClasses  *catalogUsecases.ListClassesUseCase
	addFeedback  *catalogUsecases.AddFeedbackUseCase
	listFeedback *catalogUsecases.ListFeedbackUseCase

	submitRequest       *workflowUsecases.SubmitRequestUseCase
	approveRequest      *workflowUsecases.ApproveRequestUseCase
	rejectRequest       *workflowUsecases.RejectRequestUseCase
	listMyRequests      *workflowUsecases.ListMyRequestsUseCase
	listPendingRequests *workflowUsecases.ListPendingRequestsUseCase
	listAllocations     *workflowUsecases.ListAllocationsUseCase
	listOverdue         *workflowUsecases.ListOverdueAllocationsUseCase
	releaseAllocation   *workflowUsecases.ReleaseAllocationUseCase
	extendAllocation    *workflowUsecases.ExtendAllocationUseCase
	getAvailability     *workflowUsecases.GetAvailabilityUseCase

	listActivities *activityUsecases.ListActivitiesUseCase
}

func newUseCases(
	repos *repositories,
	txMgr *shareddb.TransactionManager,
	dispatcher events.EventDispatcher,
	jwtService *auth.JWTService,
	cfg *config.Config,
	log logger.Interface,
) *useCases {
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	return &useCases{
		registerUser:     userUsecases.NewRegisterUserUseCase(repos.userRepo, hasher, dispatcher, log),
		login:            userUsecases.NewLoginUseCase(repos.userRepo, hasher, jwtService, log),
		listPendingUsers: userUsecases.NewListPendingUsersUseCase(repos.userRepo, log),
		approveUser:      userUsecases.NewApproveUserUseCase(repos.userRepo, dispatcher, log),
		suspendUser:      userUsecases.NewSuspendUserUseCase(repos.userRepo, dispatcher, log),

		createBook:  catalogUsecases.NewCreateBookUseCase(repos.bookRepo, repos.resourceRepo, log),
		updateBook:  catalogUsecases.NewUpdateBookUseCase(repos.bookRepo, repos.resourceRepo, log),
		deleteBook:  catalogUsecases.NewDeleteBookUseCase(repos.bookRepo, repos.resourceRepo, repos.requestRepo, txMgr, log),
		getBook:     catalogUsecases.NewGetBookUseCase(repos.bookRepo, repos.resourceRepo, log),
		listBooks:   catalogUsecases.NewListBooksUseCase(repos.bookRepo, log),
		exportBooks: catalogUsecases.NewExportBooksUseCase(repos.bookRepo, log),

		createClass:  catalogUsecases.NewCreateClassUseCase(repos.classRepo, repos.resourceRepo, log),
		updateClass:  catalogUsecases.NewUpdateClassUseCase(repos.classRepo, repos.resourceRepo, log),
		deleteClass:  catalogUsecases.NewDeleteClassUseCase(repos.classRepo, repos.resourceRepo, repos.requestRepo, txMgr, log),
		getClass:     catalogUsecases.NewGetClassUseCase(repos.classRepo, repos.resourceRepo, log),
		listClasses:  catalogUsecases.NewListClassesUseCase(repos.classRepo, log),
		addFeedback:  catalogUsecases.NewAddFeedbackUseCase(repos.classRepo, repos.feedbackRepo, repos.resourceRepo, repos.allocationRepo, log),
		listFeedback: catalogUsecases.NewListFeedbackUseCase(repos.feedbackRepo, log),

		submitRequest:       workflowUsecases.NewSubmitRequestUseCase(repos.requestRepo, repos.resourceRepo, dispatcher, &cfg.Workflow, log),
		approveRequest:      workflowUsecases.NewApproveRequestUseCase(repos.requestRepo, repos.allocationRepo, repos.resourceRepo, dispatcher, txMgr, &cfg.Workflow, log),
		rejectRequest:       workflowUsecases.NewRejectRequestUseCase(repos.requestRepo, repos.resourceRepo, dispatcher, log),
		listMyRequests:      workflowUsecases.NewListMyRequestsUseCase(repos.requestRepo, log),
		listPendingRequests: workflowUsecases.NewListPendingRequestsUseCase(repos.requestRepo, log),
		listAllocations:     workflowUsecases.NewListAllocationsUseCase(repos.allocationRepo, log),
		listOverdue:         workflowUsecases.NewListOverdueAllocationsUseCase(repos.allocationRepo, log),
		releaseAllocation:   workflowUsecases.NewReleaseAllocationUseCase(repos.allocationRepo, repos.resourceRepo, dispatcher, txMgr, log),
		extendAllocation:    workflowUsecases.NewExtendAllocationUseCase(repos.allocationRepo, dispatcher, &cfg.Workflow, log),
		getAvailability:     workflowUsecases.NewGetAvailabilityUseCase(repos.resourceRepo, log),

		listActivities: activityUsecases.NewListActivitiesUseCase(repos.activityRepo, log),
	}
}

type allHandlers struct {
	auth       *handlers.AuthHandler
	user       *handlers.UserHandler
	book       *handlers.BookHandler
	class      *handlers.ClassHandler
	request    *handlers.RequestHandler
	allocation *handlers.AllocationHandler
	activity   *handlers.ActivityHandler
}

func newHandlers(ucs *useCases, log logger.Interface) *allHandlers {
	return &allHandlers{
		auth: handlers.NewAuthHandler(ucs.registerUser, ucs.login, log),
		user: handlers.NewUserHandler(ucs.listPendingUsers, ucs.approveUser, ucs.suspendUser, log),
		book: handlers.NewBookHandler(
			ucs.createBook, ucs.updateBook, ucs.deleteBook,
			ucs.getBook, ucs.listBooks, ucs.exportBooks, ucs.getAvailability, log,
		),
		class: handlers.NewClassHandler(
			ucs.createClass, ucs.updateClass, ucs.deleteClass,
			ucs.getClass, ucs.listClasses,
			ucs.addFeedback, ucs.listFeedback, ucs.getAvailability, log,
		),
		request: handlers.NewRequestHandler(
			ucs.submitRequest, ucs.approveRequest, ucs.rejectRequest,
			ucs.listMyRequests, ucs.listPendingRequests, log,
		),
		allocation: handlers.NewAllocationHandler(
			ucs.listAllocations, ucs.listOverdue,
			ucs.releaseAllocation, ucs.extendAllocation, log,
		),
		activity: handlers.NewActivityHandler(ucs.listActivities, log),
	}
}
