package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/dtroode/scribehub/internal/api/http/handler"
	"github.com/dtroode/scribehub/internal/api/http/middleware"
	"github.com/dtroode/scribehub/internal/api/http/validate"
	"github.com/dtroode/scribehub/internal/logger"
	"github.com/dtroode/scribehub/internal/model"
	"github.com/dtroode/scribehub/internal/service"
)

// Router wires services to the HTTP route table.
type Router struct {
	authService    *service.Auth
	profileService *service.Profile
	feedService    *service.Feed
	repoService    *service.Repos
	tokenService   *service.TokenService
	pinger         model.Pinger
	contextManager model.ContextManager
	logger         *logger.Logger
}

func New(
	authService *service.Auth,
	profileService *service.Profile,
	feedService *service.Feed,
	repoService *service.Repos,
	tokenService *service.TokenService,
	pinger model.Pinger,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		profileService: profileService,
		feedService:    feedService,
		repoService:    repoService,
		tokenService:   tokenService,
		pinger:         pinger,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the echo instance with middleware and every route.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validate.New()
	e.HTTPErrorHandler = handler.NewErrorHandler(r.logger)

	logging := middleware.NewLogging(r.logger)
	e.Use(logging.Handle)
	e.Use(echoMiddleware.Recover())

	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	health := handler.NewHealth(r.pinger, r.logger)
	e.GET("/", health.Root)
	e.GET("/health", health.Live)
	e.GET("/ready", health.Ready)

	api := e.Group("/api")
	r.registerAuthRoutes(api, authenticate.Handle)
	r.registerProfileRoutes(api, authenticate.Handle)
	r.registerPostRoutes(api, authenticate.Handle)

	return e
}

func (r *Router) registerAuthRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	h := handler.NewAuth(r.authService, r.contextManager, r.logger)

	api.POST("/accounts", h.Register)
	api.POST("/auth", h.Login)
	api.GET("/auth", h.Me, auth)
	api.DELETE("/profiles", h.Delete, auth)
}

func (r *Router) registerProfileRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	h := handler.NewProfile(r.profileService, r.repoService, r.contextManager, r.logger)

	api.GET("/profiles", h.List)
	api.GET("/profiles/by-user/:id", h.ByAccount)
	api.GET("/profiles/github/:username", h.GithubRepos)

	profiles := api.Group("/profiles", auth)
	profiles.GET("/me", h.Mine)
	profiles.POST("", h.Upsert)
	profiles.PUT("/publications", h.AddPublication)
	profiles.PUT("/career", h.AddCareer)
	profiles.PUT("/education", h.AddEducation)
	profiles.DELETE("/publications/:id", h.RemoveSubItem(model.SubItemPublication))
	profiles.DELETE("/career/:id", h.RemoveSubItem(model.SubItemCareer))
	profiles.DELETE("/education/:id", h.RemoveSubItem(model.SubItemEducation))
}

func (r *Router) registerPostRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	h := handler.NewPost(r.feedService, r.contextManager, r.logger)

	posts := api.Group("/posts", auth)
	posts.POST("", h.Create)
	posts.GET("", h.List)
	posts.GET("/:id", h.Get)
	posts.DELETE("/:id", h.Delete)
	posts.PUT("/like/:id", h.Like)
	posts.PUT("/unlike/:id", h.Unlike)
	posts.POST("/comment/:id", h.AddComment)
	posts.DELETE("/comment/:id/:commentId", h.RemoveComment)
}

