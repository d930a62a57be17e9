package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// TogglePostLike переключает лайк пары (post, user). Возвращает true, если
// лайк поставлен, false - если снят. Вставка идет через ON CONFLICT DO
// NOTHING, поэтому два конкурентных вызова не создадут дубликат строки.
func (r *likeRepository) TogglePostLike(ctx context.Context, postID, userID int64) (bool, error) {
	insertQuery := `
		INSERT INTO post_likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, insertQuery, postID, userID)
	if err != nil {
		// нарушение внешнего ключа означает отсутствующий пост
		if isForeignKeyViolation(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("ошибка при добавлении лайка: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке вставленных строк: %w", err)
	}

	if rowsAffected == 1 {
		return true, nil
	}

	// лайк уже был - снимаем
	deleteQuery := `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`

	_, err = r.db.ExecContext(ctx, deleteQuery, postID, userID)
	if err != nil {
		return false, fmt.Errorf("ошибка при снятии лайка: %w", err)
	}

	return false, nil
}

func (r *likeRepository) CountForPost(ctx context.Context, postID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM post_likes WHERE post_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете лайков: %w", err)
	}

	return count, nil
}
