package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"socialnet/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) (int64, error) {
	query := `
		INSERT INTO posts (user_id, text, media)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var postID int64
	err := r.db.GetContext(ctx, &postID, query, post.UserID, post.Text, post.Media)
	if err != nil {
		return 0, fmt.Errorf("ошибка при создании поста: %w", err)
	}

	post.ID = postID
	return postID, nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetFeed(ctx context.Context) ([]models.FeedPost, error) {
	// likes_count всегда считается при чтении, отдельного поля нет
	query := `
		SELECT
			p.id,
			p.user_id,
			p.text AS content,
			p.media,
			u.username,
			(SELECT COUNT(*) FROM post_likes WHERE post_id = p.id) AS likes_count
		FROM posts p
		LEFT JOIN users u ON p.user_id = u.id
		ORDER BY p.id DESC
	`

	posts := []models.FeedPost{}
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты постов: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, postID int64, text string, media *string) error {
	// media обновляется только если загружен новый файл
	query := `UPDATE posts SET text = $1 WHERE id = $2`
	args := []interface{}{text, postID}

	if media != nil {
		query = `UPDATE posts SET text = $1, media = $2 WHERE id = $3`
		args = []interface{}{text, *media, postID}
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID int64) error {
	// зависимые строки и сам пост удаляются в одной транзакции,
	// частичное применение недопустимо
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM comment_likes WHERE comment_id IN (SELECT id FROM comments WHERE post_id = $1)`,
		postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении лайков комментариев: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM post_likes WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении лайков поста: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментариев поста: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}
