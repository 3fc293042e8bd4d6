package mealplan

import (
	"context"

	"EcoBite-Backend/entities"

	"gorm.io/gorm"
)

type (
	MealPlanRepository interface {
		CreateConversation(ctx context.Context, conversation *entities.Conversation) error
		GetConversationByID(ctx context.Context, id string) (*entities.Conversation, error)
		GetConversationsByUser(ctx context.Context, userID string) ([]*entities.Conversation, error)
		AddMessage(ctx context.Context, message *entities.Message) error
		GetMessagesByConversation(ctx context.Context, conversationID string) ([]*entities.Message, error)
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) CreateConversation(ctx context.Context, conversation *entities.Conversation) error {
	return r.db.WithContext(ctx).Create(conversation).Error
}

func (r *mealPlanRepository) GetConversationByID(ctx context.Context, id string) (*entities.Conversation, error) {
	var conversation entities.Conversation
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", id).
		First(&conversation).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *mealPlanRepository) GetConversationsByUser(ctx context.Context, userID string) ([]*entities.Conversation, error) {
	var conversations []*entities.Conversation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&conversations).Error; err != nil {
		return nil, err
	}
	return conversations, nil
}

func (r *mealPlanRepository) AddMessage(ctx context.Context, message *entities.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *mealPlanRepository) GetMessagesByConversation(ctx context.Context, conversationID string) ([]*entities.Message, error) {
	var messages []*entities.Message
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at asc").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
