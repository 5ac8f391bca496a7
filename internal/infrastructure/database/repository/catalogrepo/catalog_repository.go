package catalogrepo

import (
	"context"

	"gorm.io/gorm"

	"lingkod-server/services/assistant-api/internal/domain/catalog"
	"lingkod-server/services/assistant-api/internal/infrastructure/database/dbschema"
	"lingkod-server/services/assistant-api/internal/utils/functional"
	"lingkod-server/services/assistant-api/internal/utils/platformerrors"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

var _ catalog.Lookup = (*CatalogGormRepository)(nil)

func NewCatalogGormRepository(db *gorm.DB) catalog.Lookup {
	return &CatalogGormRepository{db}
}

// ListDocumentTypes implements catalog.Lookup.
func (repo *CatalogGormRepository) ListDocumentTypes(ctx context.Context) ([]catalog.DocumentType, error) {
	var models []dbschema.DocumentType
	err := repo.db.WithContext(ctx).
		Order("title ASC").
		Find(&models).Error
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list document types")
	}

	return functional.Map(models, func(m dbschema.DocumentType) catalog.DocumentType {
		return m.EtoD()
	}), nil
}

// ListSpecialCategories implements catalog.Lookup.
func (repo *CatalogGormRepository) ListSpecialCategories(ctx context.Context) ([]catalog.SpecialCategory, error) {
	var models []dbschema.SpecialCategory
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list special categories")
	}

	return functional.Map(models, func(m dbschema.SpecialCategory) catalog.SpecialCategory {
		return m.EtoD()
	}), nil
}

// ListRecentAnnouncements implements catalog.Lookup.
func (repo *CatalogGormRepository) ListRecentAnnouncements(ctx context.Context, limit int) ([]catalog.Announcement, error) {
	var models []dbschema.Announcement
	err := repo.db.WithContext(ctx).
		Order("published_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list announcements")
	}

	return functional.Map(models, func(m dbschema.Announcement) catalog.Announcement {
		return m.EtoD()
	}), nil
}
