package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"socialnet/internal/models"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, fromID, toID int64, content string) (int64, error) {
	query := `
		INSERT INTO messages (from_id, to_id, content)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var messageID int64
	err := r.db.GetContext(ctx, &messageID, query, fromID, toID, content)
	if err != nil {
		return 0, fmt.Errorf("ошибка при отправке сообщения: %w", err)
	}

	return messageID, nil
}

func (r *messageRepository) GetConversation(ctx context.Context, userID, otherID int64) ([]models.Message, error) {
	// переписка - сообщения неупорядоченной пары {userID, otherID},
	// хронологический порядок по id
	query := `
		SELECT
			m.id,
			m.from_id,
			m.to_id,
			m.content,
			m.created_at,
			sender.username AS from_username,
			receiver.username AS to_username
		FROM messages m
		LEFT JOIN users sender ON m.from_id = sender.id
		LEFT JOIN users receiver ON m.to_id = receiver.id
		WHERE (m.from_id = $1 AND m.to_id = $2)
		   OR (m.from_id = $2 AND m.to_id = $1)
		ORDER BY m.id ASC
	`

	messages := []models.Message{}
	err := r.db.SelectContext(ctx, &messages, query, userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении переписки: %w", err)
	}

	return messages, nil
}
