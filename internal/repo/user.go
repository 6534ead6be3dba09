package repo

import (
	"context"

	"gorm.io/gorm"

	"Bloglist/internal/model"
)

// UserRepository определяет контракт доступа к пользователям для слоя сервиса.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его с заполненным ID.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByUsername ищет пользователя по имени.
	// Если пользователь не найден, возвращает gorm.ErrRecordNotFound.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// GetUserByID ищет пользователя по идентификатору.
	GetUserByID(ctx context.Context, id string) (*model.User, error)

	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
