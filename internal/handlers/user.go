package handlers

import (
	"encoding/json"
	"net/http"

	"Bloglist/internal/auth"
	"Bloglist/internal/config"
	"Bloglist/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, логин и выдачу пользователей.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер users
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

// RegisterRequest — тело POST /api/users.
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest — тело POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse — ответ успешного логина.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
	ID       string `json:"id"`
}

// Register регистрация нового пользователя
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Username, req.Name, req.Password)
	if err != nil {
		if !service.IsValidation(err) {
			h.Logger.Errorw("Register: service error", "username", req.Username, "error", err)
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login проверяет учётные данные и выдаёт bearer-токен
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := auth.IssueToken(user.Username, user.ID, h.Config.AuthSecret, h.Config.TokenTTL)
	if err != nil {
		h.Logger.Errorw("Login: issuing token", "username", user.Username, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
		ID:       user.ID,
	})
}

// List выдаёт всех пользователей (без хешей паролей)
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List users: service error", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Get выдаёт пользователя по id
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.UserService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
