package handlers

import (
	"net/http"

	"Bloglist/internal/config"
	"Bloglist/internal/middleware"
	"Bloglist/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	blogService *service.BlogService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	blogHandler := NewBlogHandler(blogService, logger)

	// Auth routes
	r.Post("/api/login", userHandler.Login)

	// User routes
	r.Get("/api/users", userHandler.List)
	r.Post("/api/users", userHandler.Register)
	r.Get("/api/users/{id}", userHandler.Get)

	// Blog routes
	r.Get("/api/blogs", blogHandler.List)
	r.Post("/api/blogs", blogHandler.Create)
	r.Put("/api/blogs/{id}", blogHandler.Update)
	r.Delete("/api/blogs/{id}", blogHandler.Delete)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "unknown endpoint")
	})

	return &Handler{Router: r}
}
