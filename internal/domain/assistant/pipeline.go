package assistant

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"lingkod-server/services/assistant-api/internal/domain/catalog"
	"lingkod-server/services/assistant-api/internal/domain/conversation"
	"lingkod-server/services/assistant-api/internal/domain/faq"
	"lingkod-server/services/assistant-api/internal/domain/privacy"
	"lingkod-server/services/assistant-api/internal/infrastructure/inference"
	"lingkod-server/services/assistant-api/internal/utils/platformerrors"
)

const (
	maxSuggestions   = 3
	viewCountTimeout = 5 * time.Second
)

// QueryInput is one resident utterance bound to a session.
type QueryInput struct {
	Query     string
	SessionID string
	UserID    *uint
}

// Pipeline resolves a query through the fixed priority order: privacy guard,
// knowledge base search, AI chain, static fallback. Every invocation persists
// exactly one sanitized user message and one raw bot message; persistence
// failures are logged but never block the answer.
type Pipeline struct {
	search        *faq.SearchService
	faqRepo       faq.Repository
	conversations *conversation.Service
	chain         *inference.Chain
	fallback      *FallbackResponder
	catalog       catalog.Lookup
	log           zerolog.Logger
}

func NewPipeline(
	search *faq.SearchService,
	faqRepo faq.Repository,
	conversations *conversation.Service,
	chain *inference.Chain,
	fallback *FallbackResponder,
	lookup catalog.Lookup,
	log zerolog.Logger,
) *Pipeline {
	return &Pipeline{
		search:        search,
		faqRepo:       faqRepo,
		conversations: conversations,
		chain:         chain,
		fallback:      fallback,
		catalog:       lookup,
		log:           log,
	}
}

// ProcessQuery is the caller-facing entry point. The only caller-visible
// error is validation of the input itself; every internal failure degrades to
// a lower-priority successful answer.
func (p *Pipeline) ProcessQuery(ctx context.Context, in QueryInput) (*ResolvedResponse, error) {
	raw := strings.TrimSpace(in.Query)
	sessionID := strings.TrimSpace(in.SessionID)
	if raw == "" || sessionID == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "query and sessionId are required", nil, "")
	}

	sanitized := privacy.Sanitize(raw)
	conv := p.resolveConversation(ctx, sessionID, in.UserID, sanitized)

	resp, linkedFAQID := p.resolve(ctx, raw, sanitized, conv)

	p.persistTurn(ctx, conv, sanitized, resp, linkedFAQID)
	return resp, nil
}

// resolve walks the terminal states in priority order.
func (p *Pipeline) resolve(ctx context.Context, raw, sanitized string, conv *conversation.Conversation) (*ResolvedResponse, *uint) {
	if privacy.IsPIIRequest(raw) {
		return &ResolvedResponse{
			Type:   ResponsePrivacyProtection,
			Answer: piiRequestDisclaimer,
			Source: "privacy_guard",
			Method: methodBlocked,
		}, nil
	}

	if privacy.HasSelfDisclosure(raw) {
		return &ResolvedResponse{
			Type:   ResponsePrivacyProtection,
			Answer: selfDisclosureWarning,
			Source: "privacy_guard",
			Method: methodPersonalDataBlocked,
		}, nil
	}

	if hits := p.search.Resolve(ctx, sanitized); len(hits) > 0 {
		return p.faqResponse(ctx, hits)
	}

	if !p.chain.Empty() {
		contextText := BuildContext(p.gatherContext(ctx, sanitized, conv))
		if result, err := p.chain.Generate(ctx, sanitized, contextText); err == nil {
			return &ResolvedResponse{
				Type:        ResponseAI,
				Answer:      privacy.SanitizeOutbound(result.Text),
				Source:      result.Provider,
				Method:      "ai",
				AIGenerated: true,
				Metadata: map[string]any{
					"provider":   result.Provider,
					"disclaimer": aiDisclaimer,
				},
			}, nil
		}
		// ErrChainExhausted (or any chain failure) falls through to the
		// static tier; it is never surfaced to the caller.
	}

	return p.fallback.Respond(ctx, sanitized), nil
}

func (p *Pipeline) faqResponse(ctx context.Context, hits []faq.Hit) (*ResolvedResponse, *uint) {
	best := hits[0]

	suggestions := make([]Suggestion, 0, maxSuggestions)
	for _, hit := range hits[1:] {
		suggestions = append(suggestions, Suggestion{Question: hit.Entry.Question, FAQID: hit.Entry.ID})
		if len(suggestions) == maxSuggestions {
			break
		}
	}

	p.bumpViewCount(ctx, best.Entry.ID)

	linkedID := best.Entry.ID
	return &ResolvedResponse{
		Type:        ResponseFAQ,
		Answer:      best.Entry.Answer,
		Source:      "knowledge_base",
		Method:      string(best.Method),
		Confidence:  string(best.Confidence()),
		Suggestions: suggestions,
	}, &linkedID
}

// bumpViewCount is fire-and-forget: it must never block or fail the response.
func (p *Pipeline) bumpViewCount(ctx context.Context, id uint) {
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(bgCtx, viewCountTimeout)
		defer cancel()
		if err := p.faqRepo.IncrementViewCount(ctx, id); err != nil {
			p.log.Warn().Err(err).Uint("faq_id", id).Msg("view count increment failed")
		}
	}()
}

// gatherContext collects the bundle inputs, each best-effort.
func (p *Pipeline) gatherContext(ctx context.Context, sanitized string, conv *conversation.Conversation) ContextInput {
	in := ContextInput{
		Query:     sanitized,
		FAQs:      p.search.TopEntries(ctx, maxContextFAQs),
		SimilarQA: p.search.SimilarHelpful(ctx, sanitized, maxSimilarQA),
	}

	if fees, err := p.catalog.ListDocumentTypes(ctx); err == nil {
		in.Fees = fees
	} else {
		p.log.Warn().Err(err).Msg("fee lookup failed, section omitted")
	}

	if categories, err := p.catalog.ListSpecialCategories(ctx); err == nil {
		for _, c := range categories {
			in.RecordSummaries = append(in.RecordSummaries, c.Name+": "+c.Description)
		}
	} else {
		p.log.Warn().Err(err).Msg("special category lookup failed, section omitted")
	}

	if mentionsAnnouncements(sanitized) {
		if anns, err := p.catalog.ListRecentAnnouncements(ctx, maxAnnouncements); err == nil {
			in.Announcements = anns
		} else {
			p.log.Warn().Err(err).Msg("announcement lookup failed, section omitted")
		}
	}

	if conv != nil {
		if turns, err := p.conversations.RecentTurns(ctx, conv.ID, maxRecentTurns); err == nil {
			in.RecentTurns = turns
		} else {
			p.log.Warn().Err(err).Msg("recent turns lookup failed, section omitted")
		}
	}

	return in
}

// resolveConversation runs the idempotent get-or-create. Failure degrades to a
// nil conversation: the answer is still produced, the turn just is not stored.
func (p *Pipeline) resolveConversation(ctx context.Context, sessionID string, userID *uint, firstQuery string) *conversation.Conversation {
	conv, err := p.conversations.GetOrCreate(ctx, sessionID, userID, firstQuery)
	if err != nil {
		p.log.Error().Err(err).Str("session_id", sessionID).Msg("conversation resolution failed, turn will not be persisted")
		return nil
	}
	return conv
}

// persistTurn appends the sanitized user message and the raw bot message.
func (p *Pipeline) persistTurn(ctx context.Context, conv *conversation.Conversation, sanitized string, resp *ResolvedResponse, linkedFAQID *uint) {
	if conv == nil {
		return
	}

	if _, err := p.conversations.AppendMessage(ctx, conv.ID, conversation.RoleUser, sanitized, "", nil); err != nil {
		p.log.Error().Err(err).Uint("conversation_id", conv.ID).Msg("user message persistence failed")
	}
	if _, err := p.conversations.AppendMessage(ctx, conv.ID, conversation.RoleBot, resp.Answer, resp.Method, linkedFAQID); err != nil {
		p.log.Error().Err(err).Uint("conversation_id", conv.ID).Msg("bot message persistence failed")
	}
}
