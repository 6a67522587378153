package message

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vetco-health/vetco-api/internal/model"
	"github.com/vetco-health/vetco-api/internal/repository"
	"github.com/vetco-health/vetco-api/internal/service/event"
)

type Service struct {
	repo   repository.MessageRepository
	events event.Emitter
}

func NewService(repo repository.MessageRepository, events event.Emitter) *Service {
	return &Service{repo: repo, events: events}
}

func (s *Service) Send(ctx context.Context, senderID uuid.UUID, req *model.SendMessageRequest) (*model.Message, error) {
	message := &model.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Content:     req.Content,
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	if err := s.events.Emit(ctx, event.TypeMessageCreated, message); err != nil {
		log.Warn().Err(err).Str("message_id", message.ID.String()).Msg("failed to emit message event")
	}

	return message, nil
}

// ListForUser returns every message the user sent or received, newest first.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.Message, error) {
	return s.repo.ListForUser(ctx, userID)
}

// ListRecent returns the latest message per conversation partner.
func (s *Service) ListRecent(ctx context.Context, userID uuid.UUID) ([]*model.Message, error) {
	return s.repo.ListRecent(ctx, userID)
}

// Chat returns the full conversation between two users in chronological
// order and marks messages addressed to the caller as read.
func (s *Service) Chat(ctx context.Context, userID, otherUserID uuid.UUID) ([]*model.Message, error) {
	messages, err := s.repo.ListConversation(ctx, userID, otherUserID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.MarkConversationRead(ctx, userID, otherUserID); err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to mark conversation read")
	}

	return messages, nil
}
