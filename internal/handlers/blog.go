package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"Bloglist/internal/middleware"
	"Bloglist/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BlogHandler обрабатывает CRUD-операции над блогами.
type BlogHandler struct {
	BlogService *service.BlogService
	Logger      *zap.SugaredLogger
}

// NewBlogHandler создаёт хендлер blogs
func NewBlogHandler(blogService *service.BlogService, logger *zap.SugaredLogger) *BlogHandler {
	return &BlogHandler{BlogService: blogService, Logger: logger}
}

// CreateBlogRequest — тело POST /api/blogs.
// Likes — указатель: отсутствие поля даёт значение по умолчанию 0.
type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes,omitempty"`
}

// UpdateBlogRequest — тело PUT /api/blogs/{id}: любое подмножество полей.
type UpdateBlogRequest struct {
	Title  *string `json:"title,omitempty"`
	Author *string `json:"author,omitempty"`
	URL    *string `json:"url,omitempty"`
	Likes  *int    `json:"likes,omitempty"`
}

// List выдаёт все блоги
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.BlogService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List blogs: service error", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blogs)
}

// Create сохраняет новый блог от имени аутентифицированного пользователя
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token missing or invalid")
		return
	}

	var req CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create blog: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	blog, err := h.BlogService.Create(r.Context(), service.CreateBlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}, userID)
	if err != nil {
		if !service.IsValidation(err) {
			h.Logger.Errorw("Create blog: service error", "user_id", userID, "error", err)
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, blog)
}

// Update заменяет переданные поля блога (обычно likes)
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update blog: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	blog, err := h.BlogService.Update(r.Context(), id, service.UpdateBlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, blog)
}

// Delete удаляет блог; разрешено только владельцу
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token missing or invalid")
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.BlogService.Delete(r.Context(), id, userID); err != nil {
		if !errors.Is(err, service.ErrNotFound) && !errors.Is(err, service.ErrForbidden) {
			h.Logger.Errorw("Delete blog: service error", "id", id, "user_id", userID, "error", err)
		}
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
