package repo

import (
	"context"

	"gorm.io/gorm"

	"Bloglist/internal/model"
)

// BlogRepository определяет контракт доступа к блогам для слоя сервиса.
type BlogRepository interface {
	// ListBlogs возвращает все блоги с подгруженным владельцем.
	ListBlogs(ctx context.Context) ([]model.Blog, error)

	// GetBlogByID ищет блог по идентификатору.
	// Если блог не найден, возвращает gorm.ErrRecordNotFound.
	GetBlogByID(ctx context.Context, id string) (*model.Blog, error)

	// CreateBlog сохраняет блог и добавляет его id в список блогов владельца.
	// Обе записи выполняются в одной транзакции: частичная запись невозможна.
	CreateBlog(ctx context.Context, blog *model.Blog) (*model.Blog, error)

	// UpdateBlog обновляет подмножество полей блога и возвращает обновлённый документ.
	UpdateBlog(ctx context.Context, id string, updates map[string]any) (*model.Blog, error)

	// DeleteBlog удаляет блог и вычищает его id из списка блогов владельца.
	DeleteBlog(ctx context.Context, blog *model.Blog) error
}

type blogRepo struct {
	db *gorm.DB
}

// NewBlogRepository создаёт реализацию репозитория для Blog.
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepo{db: db}
}

func (r *blogRepo) ListBlogs(ctx context.Context) ([]model.Blog, error) {
	var blogs []model.Blog
	if err := r.db.WithContext(ctx).Preload("User").Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepo) GetBlogByID(ctx context.Context, id string) (*model.Blog, error) {
	var blog model.Blog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepo) CreateBlog(ctx context.Context, blog *model.Blog) (*model.Blog, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(blog).Error; err != nil {
			return err
		}
		if blog.UserID == "" {
			return nil
		}

		var owner model.User
		if err := tx.Where("id = ?", blog.UserID).First(&owner).Error; err != nil {
			return err
		}
		owner.BlogIDs = append(owner.BlogIDs, blog.ID)
		return tx.Save(&owner).Error
	})
	if err != nil {
		return nil, err
	}
	return blog, nil
}

func (r *blogRepo) UpdateBlog(ctx context.Context, id string, updates map[string]any) (*model.Blog, error) {
	db := r.db.WithContext(ctx)

	res := db.Model(&model.Blog{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var blog model.Blog
	if err := db.Where("id = ?", id).First(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepo) DeleteBlog(ctx context.Context, blog *model.Blog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", blog.ID).Delete(&model.Blog{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if blog.UserID == "" {
			return nil
		}

		// чистим обратную ссылку у владельца, чтобы не оставлять висячий id
		var owner model.User
		if err := tx.Where("id = ?", blog.UserID).First(&owner).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		kept := owner.BlogIDs[:0]
		for _, bid := range owner.BlogIDs {
			if bid != blog.ID {
				kept = append(kept, bid)
			}
		}
		owner.BlogIDs = kept
		return tx.Save(&owner).Error
	})
}
