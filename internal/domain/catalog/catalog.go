// Package catalog exposes read-only reference data: requestable document
// types with fees, special assistance categories, and published announcements.
package catalog

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ===============================================
// Catalog Types
// ===============================================

// DocumentType is a requestable document with its processing fee.
type DocumentType struct {
	ID          uint
	Title       string
	Description string
	Fee         decimal.Decimal
}

// SpecialCategory is an assistance program category (senior citizen, PWD,
// solo parent and similar).
type SpecialCategory struct {
	ID          uint
	Name        string
	Description string
}

// Announcement is a published community notice.
type Announcement struct {
	ID          uint
	Title       string
	Type        string
	Content     string
	PublishedAt time.Time
}

// ===============================================
// Catalog Lookup
// ===============================================

// Lookup reads live reference data. Callers treat every method as best-effort
// and degrade on error.
type Lookup interface {
	ListDocumentTypes(ctx context.Context) ([]DocumentType, error)
	ListSpecialCategories(ctx context.Context) ([]SpecialCategory, error)
	ListRecentAnnouncements(ctx context.Context, limit int) ([]Announcement, error)
}
