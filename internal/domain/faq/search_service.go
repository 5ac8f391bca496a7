package faq

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// SearchService resolves a query against the knowledge base with a strict
// two-tier strategy: the ranked lexical tier first, the fuzzy tier only when
// the lexical tier returned nothing. Neither tier ever propagates an error;
// failures degrade to an empty result set.
type SearchService struct {
	repo Repository
	log  zerolog.Logger

	mu       sync.RWMutex
	snapshot []Entry
}

func NewSearchService(repo Repository, log zerolog.Logger) *SearchService {
	return &SearchService{repo: repo, log: log}
}

// Resolve returns ranked hits for the query, tagged with the tier that
// produced them. An empty slice means neither tier matched.
func (s *SearchService) Resolve(ctx context.Context, query string) []Hit {
	hits, err := s.repo.RankedSearch(ctx, query)
	if err != nil {
		// Lexical tier degrades to empty, the fuzzy tier still runs.
		s.log.Warn().Err(err).Str("query", query).Msg("lexical search failed, degrading to fuzzy tier")
		hits = nil
	}
	if len(hits) > 0 {
		return hits
	}

	entries := s.entries(ctx)
	if len(entries) == 0 {
		return nil
	}
	return fuzzySearch(entries, query)
}

// Refresh reloads the in-memory entry snapshot used by the fuzzy tier.
// Called once at startup and then on a schedule.
func (s *SearchService) Refresh(ctx context.Context) error {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snapshot = entries
	s.mu.Unlock()

	s.log.Debug().Int("entries", len(entries)).Msg("faq snapshot refreshed")
	return nil
}

// TopEntries returns up to n entries for prompt context, preferring the most
// viewed ones.
func (s *SearchService) TopEntries(ctx context.Context, n int) []Entry {
	entries := s.entries(ctx)
	if len(entries) == 0 || n <= 0 {
		return nil
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ViewCount > sorted[j].ViewCount })

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// SimilarHelpful returns up to n entries similar to the query whose helpful
// votes outweigh the unhelpful ones.
func (s *SearchService) SimilarHelpful(ctx context.Context, query string, n int) []Entry {
	entries := s.entries(ctx)
	if len(entries) == 0 || n <= 0 {
		return nil
	}

	similar := make([]Entry, 0, n)
	for _, hit := range fuzzySearch(entries, query) {
		if hit.Entry.HelpfulCount <= hit.Entry.NotHelpfulCount {
			continue
		}
		similar = append(similar, hit.Entry)
		if len(similar) == n {
			break
		}
	}
	return similar
}

// Feedback records a helpful / not-helpful vote on an entry.
func (s *SearchService) Feedback(ctx context.Context, id uint, helpful bool) error {
	return s.repo.RecordFeedback(ctx, id, helpful)
}

// entries returns the cached snapshot, falling back to a direct load when the
// cache is cold. A load failure degrades to nil.
func (s *SearchService) entries(ctx context.Context) []Entry {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()
	if snapshot != nil {
		return snapshot
	}

	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("faq list failed, fuzzy tier degraded to empty")
		return nil
	}

	s.mu.Lock()
	s.snapshot = entries
	s.mu.Unlock()
	return entries
}
