// Package conversation persists session-scoped user/bot message turns.
package conversation

import (
	"context"
	"time"
)

// ===============================================
// Conversation Types
// ===============================================

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Conversation is a session-scoped sequence of turns. At most one active
// conversation exists per session ID; a session is closed explicitly.
type Conversation struct {
	ID        uint
	PublicID  string
	SessionID string
	UserID    *uint
	Title     *string
	IsActive  bool
	StartedAt time.Time
	EndedAt   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is one turn half. User messages store sanitized text; bot messages
// store the raw answer (templated or already filtered upstream) plus the
// resolution method that produced it. Messages are never mutated after
// creation.
type Message struct {
	ID             uint
	PublicID       string
	ConversationID uint
	Role           Role
	Text           string
	Method         string
	LinkedFAQID    *uint
	CreatedAt      time.Time
}

// ===============================================
// Conversation Repository
// ===============================================

type Repository interface {
	Create(ctx context.Context, conv *Conversation) error
	// FindActiveBySession returns (nil, nil) when the session has no active
	// conversation.
	FindActiveBySession(ctx context.Context, sessionID string) (*Conversation, error)
	End(ctx context.Context, id uint, endedAt time.Time) error
	AppendMessage(ctx context.Context, msg *Message) error
	RecentMessages(ctx context.Context, conversationID uint, limit int) ([]*Message, error)
}
