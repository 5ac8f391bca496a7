package dbschema

import (
	"time"

	"github.com/shopspring/decimal"

	"lingkod-server/services/assistant-api/internal/domain/catalog"
	"lingkod-server/services/assistant-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(DocumentType{})
	database.RegisterSchemaForAutoMigrate(SpecialCategory{})
	database.RegisterSchemaForAutoMigrate(Announcement{})
}

// DocumentType represents the database schema for requestable documents
type DocumentType struct {
	BaseModel
	Title       string          `gorm:"type:varchar(128);not null"`
	Description string          `gorm:"type:text"`
	Fee         decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
}

// SpecialCategory represents the database schema for assistance categories
type SpecialCategory struct {
	BaseModel
	Name        string `gorm:"type:varchar(128);not null"`
	Description string `gorm:"type:text"`
}

// Announcement represents the database schema for published notices
type Announcement struct {
	BaseModel
	Title       string    `gorm:"type:varchar(256);not null"`
	Type        string    `gorm:"type:varchar(50);not null;default:'general'"`
	Content     string    `gorm:"type:text;not null"`
	PublishedAt time.Time `gorm:"index;not null"`
}

// EtoD converts database schema to domain document type (Entity to Domain)
func (d *DocumentType) EtoD() catalog.DocumentType {
	return catalog.DocumentType{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Fee:         d.Fee,
	}
}

// EtoD converts database schema to domain special category (Entity to Domain)
func (s *SpecialCategory) EtoD() catalog.SpecialCategory {
	return catalog.SpecialCategory{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
	}
}

// EtoD converts database schema to domain announcement (Entity to Domain)
func (a *Announcement) EtoD() catalog.Announcement {
	return catalog.Announcement{
		ID:          a.ID,
		Title:       a.Title,
		Type:        a.Type,
		Content:     a.Content,
		PublishedAt: a.PublishedAt,
	}
}
