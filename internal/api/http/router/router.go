package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dkulagin/bookmarkd/internal/api/http/handler"
	"github.com/dkulagin/bookmarkd/internal/api/http/middleware"
	"github.com/dkulagin/bookmarkd/internal/logger"
	"github.com/dkulagin/bookmarkd/internal/model"
	"github.com/dkulagin/bookmarkd/internal/service"
)

// Router wires handlers and middleware into a fiber application. The auth
// routes are open; everything else runs behind the authenticate middleware.
type Router struct {
	authService     *service.Auth
	bookmarkService *service.Bookmark
	tokenService    *service.TokenService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	bookmarkService *service.Bookmark,
	tokenService *service.TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:     authService,
		bookmarkService: bookmarkService,
		tokenService:    tokenService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

// Register builds the fiber app with all routes and middleware.
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "bookmarkd",
		DisableStartupMessage: true,
		ErrorHandler:          handler.NewErrorHandler(r.logger),
	})

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	app.Use(logging.Handle)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("api is running")
	})

	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	auth := app.Group("/auth")
	auth.Post("/signup", authHandler.SignUp)
	auth.Post("/signin", authHandler.SignIn)

	users := app.Group("/users", authenticate.Handle)
	users.Get("/me", authHandler.Me)

	bookmarkHandler := handler.NewBookmark(r.bookmarkService, r.contextManager, r.logger)
	bookmarks := app.Group("/bookmarks", authenticate.Handle)
	bookmarks.Get("/", bookmarkHandler.List)
	bookmarks.Post("/", bookmarkHandler.Create)
	bookmarks.Get("/:id", bookmarkHandler.Get)
	bookmarks.Patch("/:id", bookmarkHandler.Update)
	bookmarks.Delete("/:id", bookmarkHandler.Delete)

	return app
}
