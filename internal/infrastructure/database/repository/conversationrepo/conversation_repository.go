package conversationrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"lingkod-server/services/assistant-api/internal/domain/conversation"
	"lingkod-server/services/assistant-api/internal/infrastructure/database/dbschema"
	"lingkod-server/services/assistant-api/internal/utils/functional"
	"lingkod-server/services/assistant-api/internal/utils/platformerrors"
)

type ConversationGormRepository struct {
	db *gorm.DB
}

var _ conversation.Repository = (*ConversationGormRepository)(nil)

func NewConversationGormRepository(db *gorm.DB) conversation.Repository {
	return &ConversationGormRepository{db}
}

// Create implements conversation.Repository.
func (repo *ConversationGormRepository) Create(ctx context.Context, conv *conversation.Conversation) error {
	model := dbschema.NewSchemaConversation(conv)
	if err := repo.db.WithContext(ctx).Create(model).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create conversation")
	}
	conv.ID = model.ID
	conv.CreatedAt = model.CreatedAt
	conv.UpdatedAt = model.UpdatedAt
	return nil
}

// FindActiveBySession implements conversation.Repository.
func (repo *ConversationGormRepository) FindActiveBySession(ctx context.Context, sessionID string) (*conversation.Conversation, error) {
	var model dbschema.Conversation
	err := repo.db.WithContext(ctx).
		Where("session_id = ? AND is_active = ?", sessionID, true).
		Order("created_at DESC").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find active conversation")
	}
	return model.EtoD(), nil
}

// End implements conversation.Repository.
func (repo *ConversationGormRepository) End(ctx context.Context, id uint, endedAt time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&dbschema.Conversation{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "ended_at": endedAt}).Error
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to end conversation")
	}
	return nil
}

// AppendMessage implements conversation.Repository.
func (repo *ConversationGormRepository) AppendMessage(ctx context.Context, msg *conversation.Message) error {
	model := dbschema.NewSchemaMessage(msg)
	if err := repo.db.WithContext(ctx).Create(model).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to append message")
	}
	msg.ID = model.ID
	msg.CreatedAt = model.CreatedAt
	return nil
}

// RecentMessages implements conversation.Repository. Messages come back oldest
// first.
func (repo *ConversationGormRepository) RecentMessages(ctx context.Context, conversationID uint, limit int) ([]*conversation.Message, error) {
	var models []dbschema.Message
	err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to load recent messages")
	}

	// Reverse to chronological order.
	for i, j := 0, len(models)-1; i < j; i, j = i+1, j-1 {
		models[i], models[j] = models[j], models[i]
	}

	msgs := functional.Map(models, func(m dbschema.Message) *conversation.Message {
		return m.EtoD()
	})
	return msgs, nil
}
