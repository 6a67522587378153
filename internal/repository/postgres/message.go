package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vetco-health/vetco-api/internal/model"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) *messageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	query := `
		INSERT INTO messages (
			id, sender_id, recipient_id, content, read,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	message.ID = uuid.New()
	message.CreatedAt = time.Now()
	message.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		message.ID,
		message.SenderID,
		message.RecipientID,
		message.Content,
		message.Read,
		message.CreatedAt,
		message.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *messageRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.Message, error) {
	query := `
		SELECT id, sender_id, recipient_id, content, read,
			   created_at, updated_at
		FROM messages
		WHERE sender_id = $1 OR recipient_id = $1
		ORDER BY created_at DESC
	`
	var messages []*model.Message
	err := r.db.SelectContext(ctx, &messages, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// ListRecent returns the latest message per conversation partner,
// newest conversations first.
func (r *messageRepository) ListRecent(ctx context.Context, userID uuid.UUID) ([]*model.Message, error) {
	query := `
		SELECT id, sender_id, recipient_id, content, read,
			   created_at, updated_at
		FROM (
			SELECT DISTINCT ON (partner_id) *
			FROM (
				SELECT m.*,
					   CASE WHEN m.sender_id = $1 THEN m.recipient_id
							ELSE m.sender_id END AS partner_id
				FROM messages m
				WHERE m.sender_id = $1 OR m.recipient_id = $1
			) c
			ORDER BY partner_id, created_at DESC
		) latest
		ORDER BY created_at DESC
	`
	var messages []*model.Message
	err := r.db.SelectContext(ctx, &messages, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent messages: %w", err)
	}
	return messages, nil
}

func (r *messageRepository) ListConversation(ctx context.Context, userID, otherUserID uuid.UUID) ([]*model.Message, error) {
	query := `
		SELECT id, sender_id, recipient_id, content, read,
			   created_at, updated_at
		FROM messages
		WHERE (sender_id = $1 AND recipient_id = $2)
		   OR (sender_id = $2 AND recipient_id = $1)
		ORDER BY created_at ASC
	`
	var messages []*model.Message
	err := r.db.SelectContext(ctx, &messages, query, userID, otherUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}
	return messages, nil
}

func (r *messageRepository) MarkConversationRead(ctx context.Context, recipientID, senderID uuid.UUID) error {
	query := `
		UPDATE messages
		SET read = TRUE, updated_at = $3
		WHERE recipient_id = $1 AND sender_id = $2 AND read = FALSE
	`
	_, err := r.db.ExecContext(ctx, query, recipientID, senderID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}
	return nil
}
