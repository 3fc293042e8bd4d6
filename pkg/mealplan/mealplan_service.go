package mealplan

import (
	"context"
	"errors"
	"log"
	"time"

	"EcoBite-Backend/domain"
	"EcoBite-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealPlanService interface {
		SendMessage(ctx context.Context, req domain.SendMessageRequest, userID string) (domain.SendMessageResponse, error)
		GetConversations(ctx context.Context, userID string) ([]domain.ConversationResponse, error)
		GetMessages(ctx context.Context, conversationID string, userID string) ([]domain.MessageResponse, error)
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
		aiClient           AIClient
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository, aiClient AIClient) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
		aiClient:           aiClient,
	}
}

const conversationTitleMax = 60

func conversationTitle(message string) string {
	runes := []rune(message)
	if len(runes) <= conversationTitleMax {
		return message
	}
	return string(runes[:conversationTitleMax]) + "..."
}

// SendMessage stores the user's message, asks the AI webhook for a reply and
// stores that too. A webhook failure degrades to a canned reply instead of an
// error so the chat keeps working offline.
func (s *mealPlanService) SendMessage(ctx context.Context, req domain.SendMessageRequest, userID string) (domain.SendMessageResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SendMessageResponse{}, domain.ErrParseUUID
	}

	var conversation *entities.Conversation
	if req.ConversationID == "" {
		conversation = &entities.Conversation{
			ConversationID: uuid.New(),
			UserID:         userUUID,
			Title:          conversationTitle(req.Message),
			CreatedAt:      time.Now(),
		}
		if err := s.mealPlanRepository.CreateConversation(ctx, conversation); err != nil {
			return domain.SendMessageResponse{}, err
		}
	} else {
		conversation, err = s.mealPlanRepository.GetConversationByID(ctx, req.ConversationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.SendMessageResponse{}, domain.ErrConversationNotFound
			}
			return domain.SendMessageResponse{}, err
		}
		if conversation.UserID.String() != userID {
			return domain.SendMessageResponse{}, domain.ErrUnauthorizedConversation
		}
	}

	userMessage := &entities.Message{
		MessageID:      uuid.New(),
		ConversationID: conversation.ConversationID,
		Sender:         domain.SenderUser,
		Content:        req.Message,
		CreatedAt:      time.Now(),
	}
	if err := s.mealPlanRepository.AddMessage(ctx, userMessage); err != nil {
		return domain.SendMessageResponse{}, err
	}

	reply, err := s.aiClient.Ask(conversation.ConversationID.String(), req.Message)
	if err != nil || reply == "" {
		if err != nil {
			log.Printf("ai webhook call failed: %v", err)
		}
		reply = domain.FallbackAIReply
	}

	aiMessage := &entities.Message{
		MessageID:      uuid.New(),
		ConversationID: conversation.ConversationID,
		Sender:         domain.SenderAI,
		Content:        reply,
		CreatedAt:      time.Now(),
	}
	if err := s.mealPlanRepository.AddMessage(ctx, aiMessage); err != nil {
		return domain.SendMessageResponse{}, err
	}

	return domain.SendMessageResponse{
		ConversationID: conversation.ConversationID.String(),
		Reply:          reply,
	}, nil
}

func (s *mealPlanService) GetConversations(ctx context.Context, userID string) ([]domain.ConversationResponse, error) {
	conversations, err := s.mealPlanRepository.GetConversationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ConversationResponse, 0, len(conversations))
	for _, c := range conversations {
		response = append(response, domain.ConversationResponse{
			ConversationID: c.ConversationID.String(),
			Title:          c.Title,
			CreatedAt:      c.CreatedAt,
		})
	}
	return response, nil
}

func (s *mealPlanService) GetMessages(ctx context.Context, conversationID string, userID string) ([]domain.MessageResponse, error) {
	conversation, err := s.mealPlanRepository.GetConversationByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, err
	}

	if conversation.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedConversation
	}

	messages, err := s.mealPlanRepository.GetMessagesByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MessageResponse, 0, len(messages))
	for _, m := range messages {
		response = append(response, domain.MessageResponse{
			MessageID: m.MessageID.String(),
			Sender:    m.Sender,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return response, nil
}
