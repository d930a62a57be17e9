package service

import (
	"context"
	"io"
	"log"

	"socialnet/internal/models"
	"socialnet/internal/repository"
	"socialnet/internal/storage"
)

// MediaUpload - необязательный медиафайл из multipart-формы
type MediaUpload struct {
	FileName string
	File     io.Reader
	Size     int64
}

type PostService interface {
	CreatePost(ctx context.Context, actorID int64, text string, media *MediaUpload) (int64, error)
	GetFeed(ctx context.Context) ([]models.FeedPost, error)
	UpdatePost(ctx context.Context, actorID, postID int64, text string, media *MediaUpload) error
	DeletePost(ctx context.Context, actorID, postID int64) error
	ToggleLike(ctx context.Context, actorID, postID int64) (bool, int64, error)
}

type postService struct {
	postRepo repository.PostRepository
	likeRepo repository.LikeRepository
	storage  storage.Storage
}

func NewPostService(postRepo repository.PostRepository, likeRepo repository.LikeRepository, storage storage.Storage) PostService {
	return &postService{
		postRepo: postRepo,
		likeRepo: likeRepo,
		storage:  storage,
	}
}

// authorizeOwner выполняет проверки доступа в фиксированном порядке:
// аутентификация, существование, владение. Отсутствующий пост никогда не
// отвечает "доступ запрещен".
func (p *postService) authorizeOwner(ctx context.Context, actorID, postID int64) (*models.Post, error) {
	if actorID == 0 {
		return nil, ErrUnauthenticated
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.UserID != actorID {
		return nil, ErrForbidden
	}

	return post, nil
}

func (p *postService) CreatePost(ctx context.Context, actorID int64, text string, media *MediaUpload) (int64, error) {
	if actorID == 0 {
		return 0, ErrUnauthenticated
	}

	var mediaPath *string
	if media != nil {
		path, err := p.storage.UploadMedia(ctx, media.FileName, media.File, media.Size)
		if err != nil {
			return 0, err
		}
		mediaPath = &path
	}

	post := &models.Post{
		UserID: actorID,
		Text:   text,
		Media:  mediaPath,
	}

	return p.postRepo.Create(ctx, post)
}

func (p *postService) GetFeed(ctx context.Context) ([]models.FeedPost, error) {
	return p.postRepo.GetFeed(ctx)
}

func (p *postService) UpdatePost(ctx context.Context, actorID, postID int64, text string, media *MediaUpload) error {
	post, err := p.authorizeOwner(ctx, actorID, postID)
	if err != nil {
		return err
	}

	var mediaPath *string
	if media != nil {
		path, err := p.storage.UploadMedia(ctx, media.FileName, media.File, media.Size)
		if err != nil {
			return err
		}
		mediaPath = &path

		// старый файл больше не нужен
		if post.Media != nil {
			if err := p.storage.DeleteMedia(ctx, *post.Media); err != nil {
				log.Printf("Предупреждение: не удалось удалить старый медиафайл: %v", err)
			}
		}
	}

	return p.postRepo.Update(ctx, postID, text, mediaPath)
}

func (p *postService) DeletePost(ctx context.Context, actorID, postID int64) error {
	post, err := p.authorizeOwner(ctx, actorID, postID)
	if err != nil {
		return err
	}

	err = p.postRepo.Delete(ctx, postID)
	if err != nil {
		return err
	}

	if post.Media != nil {
		if err := p.storage.DeleteMedia(ctx, *post.Media); err != nil {
			log.Printf("Предупреждение: не удалось удалить медиафайл поста: %v", err)
		}
	}

	return nil
}

func (p *postService) ToggleLike(ctx context.Context, actorID, postID int64) (bool, int64, error) {
	// лайк не требует владения, достаточно аутентификации
	if actorID == 0 {
		return false, 0, ErrUnauthenticated
	}

	liked, err := p.likeRepo.TogglePostLike(ctx, postID, actorID)
	if err != nil {
		return false, 0, err
	}

	count, err := p.likeRepo.CountForPost(ctx, postID)
	if err != nil {
		return false, 0, err
	}

	return liked, count, nil
}
