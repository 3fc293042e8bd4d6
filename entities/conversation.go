package entities

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	ConversationID uuid.UUID `gorm:"column:conversation_id;type:uuid;primary_key;default:uuid_generate_v4()" json:"conversation_id"`
	UserID         uuid.UUID `gorm:"column:user_id" json:"user_id"`
	Title          string    `gorm:"column:title" json:"title"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamp" json:"created_at"`

	User     *User      `gorm:"foreignKey:UserID"`
	Messages []*Message `gorm:"foreignKey:ConversationID"`
}

func (Conversation) TableName() string {
	return "conversations"
}

type Message struct {
	MessageID      uuid.UUID `gorm:"column:message_id;type:uuid;primary_key;default:uuid_generate_v4()" json:"message_id"`
	ConversationID uuid.UUID `gorm:"column:conversation_id" json:"conversation_id"`
	Sender         string    `gorm:"column:sender" json:"sender"` // "user" or "ai"
	Content        string    `gorm:"column:content;type:text" json:"content"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamp" json:"created_at"`

	Conversation *Conversation `gorm:"foreignKey:ConversationID"`
}

func (Message) TableName() string {
	return "messages"
}
