package service

import (
	"context"

	"socialnet/internal/models"
	"socialnet/internal/repository"
)

type CommentService interface {
	CreateComment(ctx context.Context, actorID, postID int64, text string) (int64, error)
	ListComments(ctx context.Context, postID int64) ([]models.FeedComment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentService) CreateComment(ctx context.Context, actorID, postID int64, text string) (int64, error) {
	if actorID == 0 {
		return 0, ErrUnauthenticated
	}

	// комментировать можно любой существующий пост, владение не проверяется
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return 0, err
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: actorID,
		Text:   text,
	}

	return s.commentRepo.Create(ctx, comment)
}

func (s *commentService) ListComments(ctx context.Context, postID int64) ([]models.FeedComment, error) {
	return s.commentRepo.GetByPostID(ctx, postID)
}
