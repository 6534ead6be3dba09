package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"Bloglist/internal/model"
	"Bloglist/internal/repo"
)

// UserService инкапсулирует бизнес-логику работы с пользователями:
// валидацию регистрации, хеширование пароля и проверку учётных данных.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя. Порядок проверок:
// имя пользователя, отображаемое имя, пароль, уникальность.
// Пароль сохраняется только в виде bcrypt-хеша.
func (s *UserService) Register(ctx context.Context, username, name, password string) (*model.User, error) {
	if len(username) < 3 {
		return nil, ErrUsernameTooShort
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}
	if len(password) < 3 {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
		BlogIDs:      []string{},
	}
	return s.repo.CreateUser(ctx, user)
}

// Login проверяет учётные данные и возвращает пользователя.
// Неизвестное имя и неверный пароль неразличимы для клиента.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// List возвращает всех пользователей.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

// Get возвращает пользователя по идентификатору.
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
