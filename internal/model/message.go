package model

import (
	"github.com/google/uuid"
)

// Message is a direct message between two users.
type Message struct {
	Base
	SenderID    uuid.UUID `json:"sender" db:"sender_id"`
	RecipientID uuid.UUID `json:"recipient" db:"recipient_id"`
	Content     string    `json:"content" db:"content"`
	Read        bool      `json:"read" db:"read"`
}

// SendMessageRequest represents message send/reply parameters
type SendMessageRequest struct {
	RecipientID uuid.UUID `json:"recipient" binding:"required"`
	Content     string    `json:"content" binding:"required"`
}
