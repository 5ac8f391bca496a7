package dbschema

import (
	"database/sql/driver"
	"encoding/json"

	"lingkod-server/services/assistant-api/internal/domain/faq"
	"lingkod-server/services/assistant-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(FAQEntry{})
}

// FAQEntry represents the database schema for knowledge base entries
type FAQEntry struct {
	BaseModel
	CategoryID      uint            `gorm:"index;not null;default:0"`
	Question        string          `gorm:"type:text;not null"`
	Answer          string          `gorm:"type:text;not null"`
	Keywords        JSONStringSlice `gorm:"type:jsonb"`
	ViewCount       int64           `gorm:"not null;default:0;index"`
	HelpfulCount    int64           `gorm:"not null;default:0"`
	NotHelpfulCount int64           `gorm:"not null;default:0"`
	DisplayOrder    int             `gorm:"not null;default:0;index"`
}

// JSONStringSlice is a custom type for []string stored as JSON
type JSONStringSlice []string

func (j JSONStringSlice) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONStringSlice) Scan(value any) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, j)
}

// NewSchemaFAQEntry creates a database schema from a domain entry
func NewSchemaFAQEntry(e *faq.Entry) *FAQEntry {
	return &FAQEntry{
		BaseModel: BaseModel{
			ID:        e.ID,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		},
		CategoryID:      e.CategoryID,
		Question:        e.Question,
		Answer:          e.Answer,
		Keywords:        JSONStringSlice(e.Keywords),
		ViewCount:       e.ViewCount,
		HelpfulCount:    e.HelpfulCount,
		NotHelpfulCount: e.NotHelpfulCount,
		DisplayOrder:    e.DisplayOrder,
	}
}

// EtoD converts database schema to domain entry (Entity to Domain)
func (f *FAQEntry) EtoD() faq.Entry {
	return faq.Entry{
		ID:              f.ID,
		CategoryID:      f.CategoryID,
		Question:        f.Question,
		Answer:          f.Answer,
		Keywords:        []string(f.Keywords),
		ViewCount:       f.ViewCount,
		HelpfulCount:    f.HelpfulCount,
		NotHelpfulCount: f.NotHelpfulCount,
		DisplayOrder:    f.DisplayOrder,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}
