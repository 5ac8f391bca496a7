package faqrepo

import (
	"context"

	"gorm.io/gorm"

	"lingkod-server/services/assistant-api/internal/domain/faq"
	"lingkod-server/services/assistant-api/internal/infrastructure/database/dbschema"
	"lingkod-server/services/assistant-api/internal/utils/functional"
	"lingkod-server/services/assistant-api/internal/utils/platformerrors"
)

const lexicalLimit = 10

// Weighted full-text rank (question A, keywords B, answer C mapped to 3/2/1)
// OR'd with a plain substring fallback to cover tokenizer misses.
const rankedSearchSQL = `
SELECT f.*,
       ts_rank('{0,1,2,3}',
               setweight(to_tsvector('simple', f.question), 'A') ||
               setweight(to_tsvector('simple', coalesce(f.keywords::text, '')), 'B') ||
               setweight(to_tsvector('simple', f.answer), 'C'),
               plainto_tsquery('simple', @query)) AS relevance
FROM assistant_api.faq_entries f
WHERE setweight(to_tsvector('simple', f.question), 'A') ||
      setweight(to_tsvector('simple', coalesce(f.keywords::text, '')), 'B') ||
      setweight(to_tsvector('simple', f.answer), 'C')
      @@ plainto_tsquery('simple', @query)
   OR f.question ILIKE @like
   OR f.answer ILIKE @like
   OR f.keywords::text ILIKE @like
ORDER BY relevance DESC, f.view_count DESC
LIMIT @limit`

type FAQGormRepository struct {
	db *gorm.DB
}

var _ faq.Repository = (*FAQGormRepository)(nil)

func NewFAQGormRepository(db *gorm.DB) faq.Repository {
	return &FAQGormRepository{db}
}

type rankedRow struct {
	dbschema.FAQEntry
	Relevance float64
}

// RankedSearch implements faq.Repository.
func (repo *FAQGormRepository) RankedSearch(ctx context.Context, text string) ([]faq.Hit, error) {
	var rows []rankedRow
	err := repo.db.WithContext(ctx).
		Raw(rankedSearchSQL,
			map[string]any{"query": text, "like": "%" + text + "%", "limit": lexicalLimit}).
		Scan(&rows).Error
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to run ranked search")
	}

	hits := functional.Map(rows, func(row rankedRow) faq.Hit {
		return faq.Hit{Entry: row.FAQEntry.EtoD(), Method: faq.MethodLexical}
	})
	return hits, nil
}

// ListAll implements faq.Repository.
func (repo *FAQGormRepository) ListAll(ctx context.Context) ([]faq.Entry, error) {
	var models []dbschema.FAQEntry
	err := repo.db.WithContext(ctx).
		Order("display_order ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list faq entries")
	}

	entries := functional.Map(models, func(m dbschema.FAQEntry) faq.Entry {
		return m.EtoD()
	})
	return entries, nil
}

// IncrementViewCount implements faq.Repository.
func (repo *FAQGormRepository) IncrementViewCount(ctx context.Context, id uint) error {
	err := repo.db.WithContext(ctx).
		Model(&dbschema.FAQEntry{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to increment view count")
	}
	return nil
}

// RecordFeedback implements faq.Repository.
func (repo *FAQGormRepository) RecordFeedback(ctx context.Context, id uint, helpful bool) error {
	column := "not_helpful_count"
	if helpful {
		column = "helpful_count"
	}

	err := repo.db.WithContext(ctx).
		Model(&dbschema.FAQEntry{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to record feedback")
	}
	return nil
}
