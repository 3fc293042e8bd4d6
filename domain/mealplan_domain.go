package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSendMessage      = "message sent successfully"
	MessageSuccessGetConversations = "conversations retrieved successfully"
	MessageSuccessGetMessages      = "messages retrieved successfully"

	MessageFailedSendMessage      = "failed to send message"
	MessageFailedGetConversations = "failed to retrieve conversations"
	MessageFailedGetMessages      = "failed to retrieve messages"

	ErrConversationNotFound     = errors.New("conversation not found")
	ErrUnauthorizedConversation = errors.New("unauthorized access to conversation")

	// Returned when the AI webhook is not configured or yields nothing usable.
	FallbackAIReply = "I apologize, I couldn't generate a response. Please try again."
)

const (
	SenderUser = "user"
	SenderAI   = "ai"
)

type (
	SendMessageRequest struct {
		ConversationID string `json:"conversation_id" validate:"omitempty,uuid"`
		Message        string `json:"message" validate:"required"`
	}

	SendMessageResponse struct {
		ConversationID string `json:"conversation_id"`
		Reply          string `json:"reply"`
	}

	ConversationResponse struct {
		ConversationID string    `json:"conversation_id"`
		Title          string    `json:"title"`
		CreatedAt      time.Time `json:"created_at"`
	}

	MessageResponse struct {
		MessageID string    `json:"message_id"`
		Sender    string    `json:"sender"`
		Content   string    `json:"content"`
		CreatedAt time.Time `json:"created_at"`
	}
)
