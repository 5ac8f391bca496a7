package conversation

import (
	"context"
	"time"

	"lingkod-server/services/assistant-api/internal/utils/idgen"
	"lingkod-server/services/assistant-api/internal/utils/platformerrors"
	"lingkod-server/services/assistant-api/internal/utils/stringutils"
)

const maxTitleLength = 80

// Service handles business logic for conversations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetOrCreate resolves the session's active conversation, creating one when
// none exists. Two concurrent calls for a fresh session can race and leave a
// duplicate conversation row; that is accepted rather than serializing every
// turn behind a lock.
func (s *Service) GetOrCreate(ctx context.Context, sessionID string, userID *uint, firstQuery string) (*Conversation, error) {
	existing, err := s.repo.FindActiveBySession(ctx, sessionID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to look up active conversation")
	}
	if existing != nil {
		return existing, nil
	}

	publicID, err := idgen.GenerateSecureID("conv", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to generate conversation ID")
	}

	now := time.Now()
	conv := &Conversation{
		PublicID:  publicID,
		SessionID: sessionID,
		UserID:    userID,
		IsActive:  true,
		StartedAt: now,
	}
	if title := stringutils.GenerateTitle(firstQuery, maxTitleLength); title != "" {
		conv.Title = &title
	}

	if err := s.repo.Create(ctx, conv); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create conversation")
	}
	return conv, nil
}

// AppendMessage appends one immutable turn half to a conversation.
func (s *Service) AppendMessage(ctx context.Context, conversationID uint, role Role, text, method string, linkedFAQID *uint) (*Message, error) {
	publicID, err := idgen.GenerateSecureID("msg", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to generate message ID")
	}

	msg := &Message{
		PublicID:       publicID,
		ConversationID: conversationID,
		Role:           role,
		Text:           text,
		Method:         method,
		LinkedFAQID:    linkedFAQID,
	}
	if err := s.repo.AppendMessage(ctx, msg); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to append message")
	}
	return msg, nil
}

// RecentTurns returns the newest messages of a conversation, oldest first.
func (s *Service) RecentTurns(ctx context.Context, conversationID uint, limit int) ([]*Message, error) {
	msgs, err := s.repo.RecentMessages(ctx, conversationID, limit)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load recent messages")
	}
	return msgs, nil
}

// EndSession closes the session's active conversation. Ending a session with
// no active conversation is a no-op.
func (s *Service) EndSession(ctx context.Context, sessionID string) error {
	conv, err := s.repo.FindActiveBySession(ctx, sessionID)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to look up active conversation")
	}
	if conv == nil {
		return nil
	}
	if err := s.repo.End(ctx, conv.ID, time.Now()); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to end conversation")
	}
	return nil
}
