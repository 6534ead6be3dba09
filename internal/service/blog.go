package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"Bloglist/internal/model"
	"Bloglist/internal/repo"
)

// BlogService инкапсулирует бизнес-логику работы с блогами:
// валидацию создания, проверку владельца при удалении, частичное обновление.
type BlogService struct {
	repo repo.BlogRepository
}

func NewBlogService(r repo.BlogRepository) *BlogService {
	return &BlogService{repo: r}
}

// CreateBlogInput — типизированный вход создания блога.
// Likes — указатель, чтобы отличать "не передано" от нуля.
type CreateBlogInput struct {
	Title  string
	Author string
	URL    string
	Likes  *int
}

// UpdateBlogInput — частичное обновление: nil-поля не трогаются.
type UpdateBlogInput struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int
}

// List возвращает все блоги с владельцами.
func (s *BlogService) List(ctx context.Context) ([]model.Blog, error) {
	return s.repo.ListBlogs(ctx)
}

// Create сохраняет блог от имени ownerID. Требуются title и url,
// likes по умолчанию 0. Вставка блога и дополнение списка блогов
// владельца выполняются репозиторием в одной транзакции.
func (s *BlogService) Create(ctx context.Context, in CreateBlogInput, ownerID string) (*model.Blog, error) {
	if ownerID == "" {
		return nil, ErrNoIdentity
	}
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.URL == "" {
		return nil, ErrURLRequired
	}

	likes := 0
	if in.Likes != nil {
		likes = *in.Likes
	}

	blog := &model.Blog{
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  likes,
		UserID: ownerID,
	}
	return s.repo.CreateBlog(ctx, blog)
}

// Update заменяет переданное подмножество полей и возвращает обновлённый блог.
func (s *BlogService) Update(ctx context.Context, id string, in UpdateBlogInput) (*model.Blog, error) {
	updates := map[string]any{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Author != nil {
		updates["author"] = *in.Author
	}
	if in.URL != nil {
		updates["url"] = *in.URL
	}
	if in.Likes != nil {
		updates["likes"] = *in.Likes
	}

	if len(updates) == 0 {
		blog, err := s.repo.GetBlogByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return blog, nil
	}

	blog, err := s.repo.UpdateBlog(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return blog, nil
}

// Delete удаляет блог по id. Удалять блог может только его владелец.
func (s *BlogService) Delete(ctx context.Context, id, requesterID string) error {
	if requesterID == "" {
		return ErrNoIdentity
	}

	blog, err := s.repo.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if blog.UserID != "" && blog.UserID != requesterID {
		return ErrForbidden
	}

	return s.repo.DeleteBlog(ctx, blog)
}
