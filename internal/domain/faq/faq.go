// Package faq holds the knowledge-base entries and the two-tier search over them.
package faq

import (
	"context"
	"time"
)

// ===============================================
// FAQ Types
// ===============================================

// Method identifies which search tier produced a hit.
type Method string

const (
	MethodLexical Method = "lexical"
	MethodFuzzy   Method = "fuzzy"
)

// Confidence bands a hit by fuzzy score. Lexical hits carry no comparable
// score and default to medium.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Entry is a stored question/answer/keywords record with popularity counters.
type Entry struct {
	ID              uint
	CategoryID      uint
	Question        string
	Answer          string
	Keywords        []string
	ViewCount       int64
	HelpfulCount    int64
	NotHelpfulCount int64
	DisplayOrder    int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Hit is an entry plus the tier that produced it. Score is only meaningful for
// fuzzy hits: 0 is a perfect match, 1 the worst accepted one.
type Hit struct {
	Entry  Entry
	Score  float64
	Method Method
}

// Confidence bands the hit: fuzzy score below 0.2 is high, above 0.6 low,
// anything else medium.
func (h Hit) Confidence() Confidence {
	if h.Method != MethodFuzzy {
		return ConfidenceMedium
	}
	switch {
	case h.Score < 0.2:
		return ConfidenceHigh
	case h.Score > 0.6:
		return ConfidenceLow
	default:
		return ConfidenceMedium
	}
}

// ===============================================
// FAQ Repository
// ===============================================

type Repository interface {
	// RankedSearch runs the weighted lexical tier, capped at 10 rows ordered
	// by relevance then popularity.
	RankedSearch(ctx context.Context, text string) ([]Hit, error)
	ListAll(ctx context.Context) ([]Entry, error)
	// IncrementViewCount is best-effort; callers must not block on it.
	IncrementViewCount(ctx context.Context, id uint) error
	RecordFeedback(ctx context.Context, id uint, helpful bool) error
}
