package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	activityApp "studium/internal/application/activity"
	"studium/internal/domain/shared/events"
	"studium/internal/infrastructure/auth"
	"studium/internal/infrastructure/config"
	"studium/internal/infrastructure/ratelimit"
	"studium/internal/interfaces/http/handlers"
	"studium/internal/interfaces/http/middleware"
	"studium/internal/interfaces/http/routes"
	shareddb "studium/internal/shared/db"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

// Router wires repositories, use cases, handlers, and middleware into a
// gin engine. The activity projector is registered on the dispatcher
// here so every workflow transition reaches the feed.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	log            logger.Interface
	hdlrs          *allHandlers
	authMiddleware *middleware.AuthMiddleware
	loginLimiter   *middleware.LoginRateLimiter
}

func NewRouter(
	db *gorm.DB,
	redisClient *redis.Client,
	dispatcher events.EventDispatcher,
	cfg *config.Config,
	log logger.Interface,
) (*Router, error) {
	if err := handlers.RegisterCustomValidations(); err != nil {
		return nil, err
	}

	repos := newRepositories(db, log)
	txMgr := shareddb.NewTransactionManager(db)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	ucs := newUseCases(repos, txMgr, dispatcher, jwtService, cfg, log)

	projector := activityApp.NewProjector(repos.activityRepo, log)
	if err := projector.Register(dispatcher); err != nil {
		return nil, err
	}

	loginLimiter := ratelimit.NewRedisLoginLimiter(redisClient, ratelimit.Limits{
		PerMinute: 10,
		PerHour:   60,
	})

	return &Router{
		engine:         gin.New(),
		cfg:            cfg,
		log:            log,
		hdlrs:          newHandlers(ucs, log),
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		loginLimiter:   middleware.NewLoginRateLimiter(loginLimiter, log),
	}, nil
}

// SetupRoutes installs middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestLogger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/healthz", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: r.hdlrs.auth,
		RateLimiter: r.loginLimiter,
	})

	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:    r.hdlrs.user,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupCatalogRoutes(api, &routes.CatalogRouteConfig{
		BookHandler:    r.hdlrs.book,
		ClassHandler:   r.hdlrs.class,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupWorkflowRoutes(api, &routes.WorkflowRouteConfig{
		RequestHandler:    r.hdlrs.request,
		AllocationHandler: r.hdlrs.allocation,
		AuthMiddleware:    r.authMiddleware,
	})

	routes.SetupActivityRoutes(api, &routes.ActivityRouteConfig{
		ActivityHandler: r.hdlrs.activity,
		AuthMiddleware:  r.authMiddleware,
	})
}

// Engine exposes the configured gin engine to the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
