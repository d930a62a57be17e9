package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"socialnet/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	query := `
		INSERT INTO comments (post_id, user_id, text)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var commentID int64
	err := r.db.GetContext(ctx, &commentID, query, comment.PostID, comment.UserID, comment.Text)
	if err != nil {
		return 0, fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	comment.ID = commentID
	return commentID, nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID int64) ([]models.FeedComment, error) {
	// счетчик лайков комментария считается при чтении, мутирующего
	// эндпоинта для comment_likes нет
	query := `
		SELECT
			c.id,
			c.post_id,
			c.user_id,
			c.text AS content,
			u.username,
			(SELECT COUNT(*) FROM comment_likes WHERE comment_id = c.id) AS likes_count
		FROM comments c
		LEFT JOIN users u ON c.user_id = u.id
		WHERE c.post_id = $1
		ORDER BY c.id ASC
	`

	comments := []models.FeedComment{}
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}
