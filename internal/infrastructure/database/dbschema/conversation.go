package dbschema

import (
	"time"

	"lingkod-server/services/assistant-api/internal/domain/conversation"
	"lingkod-server/services/assistant-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Conversation{})
	database.RegisterSchemaForAutoMigrate(Message{})
}

// Conversation represents the database schema for conversations
type Conversation struct {
	BaseModel
	PublicID  string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	SessionID string     `gorm:"type:varchar(128);index:idx_conversation_session_active;not null"`
	UserID    *uint      `gorm:"index"`
	Title     *string    `gorm:"type:varchar(256)"`
	IsActive  bool       `gorm:"index:idx_conversation_session_active;not null;default:true"`
	StartedAt time.Time  `gorm:"not null"`
	EndedAt   *time.Time `gorm:"type:timestamp"`

	Messages []Message `gorm:"foreignKey:ConversationID"`
}

// Message represents the database schema for conversation messages
type Message struct {
	BaseModel
	PublicID       string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	ConversationID uint    `gorm:"index:idx_message_conversation_created;not null"`
	Role           string  `gorm:"type:varchar(10);not null"`
	Text           string  `gorm:"type:text;not null"`
	Method         *string `gorm:"type:varchar(30)"`
	LinkedFAQID    *uint   `gorm:"index"`
}

// NewSchemaConversation creates a database schema from a domain conversation
func NewSchemaConversation(c *conversation.Conversation) *Conversation {
	return &Conversation{
		BaseModel: BaseModel{
			ID:        c.ID,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		},
		PublicID:  c.PublicID,
		SessionID: c.SessionID,
		UserID:    c.UserID,
		Title:     c.Title,
		IsActive:  c.IsActive,
		StartedAt: c.StartedAt,
		EndedAt:   c.EndedAt,
	}
}

// EtoD converts database schema to domain conversation (Entity to Domain)
func (c *Conversation) EtoD() *conversation.Conversation {
	return &conversation.Conversation{
		ID:        c.ID,
		PublicID:  c.PublicID,
		SessionID: c.SessionID,
		UserID:    c.UserID,
		Title:     c.Title,
		IsActive:  c.IsActive,
		StartedAt: c.StartedAt,
		EndedAt:   c.EndedAt,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewSchemaMessage creates a database schema from a domain message
func NewSchemaMessage(m *conversation.Message) *Message {
	msg := &Message{
		BaseModel: BaseModel{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
		},
		PublicID:       m.PublicID,
		ConversationID: m.ConversationID,
		Role:           string(m.Role),
		Text:           m.Text,
		LinkedFAQID:    m.LinkedFAQID,
	}
	if m.Method != "" {
		method := m.Method
		msg.Method = &method
	}
	return msg
}

// EtoD converts database schema to domain message (Entity to Domain)
func (m *Message) EtoD() *conversation.Message {
	msg := &conversation.Message{
		ID:             m.ID,
		PublicID:       m.PublicID,
		ConversationID: m.ConversationID,
		Role:           conversation.Role(m.Role),
		Text:           m.Text,
		LinkedFAQID:    m.LinkedFAQID,
		CreatedAt:      m.CreatedAt,
	}
	if m.Method != nil {
		msg.Method = *m.Method
	}
	return msg
}
