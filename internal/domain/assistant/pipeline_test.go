package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"lingkod-server/services/assistant-api/internal/domain/conversation"
	"lingkod-server/services/assistant-api/internal/domain/faq"
	"lingkod-server/services/assistant-api/internal/infrastructure/inference"
	"lingkod-server/services/assistant-api/internal/utils/platformerrors"
)

type stubFAQRepo struct {
	hits      []faq.Hit
	rankedErr error
	entries   []faq.Entry
	listErr   error
}

func (s *stubFAQRepo) RankedSearch(ctx context.Context, text string) ([]faq.Hit, error) {
	return s.hits, s.rankedErr
}

func (s *stubFAQRepo) ListAll(ctx context.Context) ([]faq.Entry, error) {
	return s.entries, s.listErr
}

func (s *stubFAQRepo) IncrementViewCount(ctx context.Context, id uint) error { return nil }

func (s *stubFAQRepo) RecordFeedback(ctx context.Context, id uint, helpful bool) error { return nil }

type stubConvRepo struct {
	nextID   uint
	active   map[string]*conversation.Conversation
	messages []*conversation.Message
}

func newStubConvRepo() *stubConvRepo {
	return &stubConvRepo{active: make(map[string]*conversation.Conversation)}
}

func (s *stubConvRepo) Create(ctx context.Context, conv *conversation.Conversation) error {
	s.nextID++
	conv.ID = s.nextID
	s.active[conv.SessionID] = conv
	return nil
}

func (s *stubConvRepo) FindActiveBySession(ctx context.Context, sessionID string) (*conversation.Conversation, error) {
	return s.active[sessionID], nil
}

func (s *stubConvRepo) End(ctx context.Context, id uint, endedAt time.Time) error {
	for sess, conv := range s.active {
		if conv.ID == id {
			delete(s.active, sess)
		}
	}
	return nil
}

func (s *stubConvRepo) AppendMessage(ctx context.Context, msg *conversation.Message) error {
	msg.ID = uint(len(s.messages) + 1)
	s.messages = append(s.messages, msg)
	return nil
}

func (s *stubConvRepo) RecentMessages(ctx context.Context, conversationID uint, limit int) ([]*conversation.Message, error) {
	var out []*conversation.Message
	for _, m := range s.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

type scriptedProvider struct {
	name string
	text string
	err  error
}

func (p *scriptedProvider) Name() string { return p.name }

func (p *scriptedProvider) Generate(ctx context.Context, query, contextText string) (string, error) {
	return p.text, p.err
}

func newTestPipeline(faqRepo *stubFAQRepo, convRepo *stubConvRepo, providers ...inference.Provider) *Pipeline {
	log := zerolog.Nop()
	search := faq.NewSearchService(faqRepo, log)
	convs := conversation.NewService(convRepo)
	chain := inference.NewChain(providers, time.Second, log)
	lookup := &stubCatalog{}
	return NewPipeline(search, faqRepo, convs, chain, NewFallbackResponder(lookup, log), lookup, log)
}

func TestProcessQuery_ValidationError(t *testing.T) {
	p := newTestPipeline(&stubFAQRepo{}, newStubConvRepo())

	_, err := p.ProcessQuery(context.Background(), QueryInput{Query: "  ", SessionID: "sess-1"})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Fatalf("ProcessQuery() error = %v, want validation error", err)
	}

	_, err = p.ProcessQuery(context.Background(), QueryInput{Query: "hello", SessionID: ""})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Fatalf("ProcessQuery() error = %v, want validation error", err)
	}
}

func TestProcessQuery_PIIRequestBeatsSearchHit(t *testing.T) {
	faqRepo := &stubFAQRepo{
		hits: []faq.Hit{{Entry: faq.Entry{ID: 1, Question: "contact info", Answer: "call the office"}, Method: faq.MethodLexical}},
	}
	p := newTestPipeline(faqRepo, newStubConvRepo())

	resp, err := p.ProcessQuery(context.Background(), QueryInput{
		Query:     "what is the phone number of Juan",
		SessionID: "sess-1",
	})
	if err != nil {
		t.Fatalf("ProcessQuery() error = %v", err)
	}
	if resp.Type != ResponsePrivacyProtection || resp.Method != "blocked" {
		t.Errorf("resolved to %q/%q, want privacy_protection/blocked even with a search hit", resp.Type, resp.Method)
	}
}

func TestProcessQuery_SelfDisclosureBlocked(t *testing.T) {
	convRepo := newStubConvRepo()
	p := newTestPipeline(&stubFAQRepo{}, convRepo)

	resp, err := p.ProcessQuery(context.Background(), QueryInput{
		Query:     "my number is 09171234567, please call me",
		SessionID: "sess-1",
	})
	if err != nil {
		t.Fatalf("ProcessQuery() error = %v", err)
	}
	if resp.Type != ResponsePrivacyProtection || resp.Method != "personal_data_blocked" {
		t.Errorf("resolved to %q/%q, want privacy_protection/personal_data_blocked", resp.Type, resp.Method)
	}

	// The stored user message must carry the redacted text, never the number.
	if len(convRepo.messages) != 2 {
		t.Fatalf("persisted %d messages, want 2", len(convRepo.messages))
	}
	userMsg := convRepo.messages[0]
	if strings.Contains(userMsg.Text, "09171234567") {
		t.Errorf("user message leaked the phone number: %q", userMsg.Text)
	}
	if !strings.Contains(userMsg.Text, "[PHONE_REDACTED]") {
		t.Errorf("user message not redacted: %q", userMsg.Text)
	}
}

func TestProcessQuery_SearchHit(t *testing.T) {
	faqRepo := &stubFAQRepo{
		hits: []faq.Hit{
			{Entry: faq.Entry{ID: 1, Question: "What are the office hours?", Answer: "8 AM to 5 PM, weekdays."}, Method: faq.MethodLexical},
			{Entry: faq.Entry{ID: 2, Question: "Where is the barangay hall?"}, Method: faq.MethodLexical},
			{Entry: faq.Entry{ID: 3, Question: "What documents can I request?"}, Method: faq.MethodLexical},
			{Entry: faq.Entry{ID: 4, Question: "How do I file a blotter report?"}, Method: faq.MethodLexical},
			{Entry: faq.Entry{ID: 5, Question: "How much is a clearance?"}, Method: faq.MethodLexical},
		},
	}
	convRepo := newStubConvRepo()
	p := newTestPipeline(faqRepo, convRepo)

	resp, err := p.ProcessQuery(context.Background(), QueryInput{Query: "office hours", SessionID: "sess-1"})
	if err != nil {
		t.Fatalf("ProcessQuery() error = %v", err)
	}
	if resp.Type != ResponseFAQ || resp.Method != "lexical" {
		t.Errorf("resolved to %q/%q, want faq/lexical", resp.Type, resp.Method)
	}
	if resp.Confidence != "medium" {
		t.Errorf("confidence = %q, want medium for lexical", resp.Confidence)
	}
	if len(resp.Suggestions) != 3 {
		t.Errorf("suggestions = %d, want capped at 3", len(resp.Suggestions))
	}

	botMsg := convRepo.messages[1]
	if botMsg.LinkedFAQID == nil || *botMsg.LinkedFAQID != 1 {
		t.Errorf("bot message linked FAQ = %v, want 1", botMsg.LinkedFAQID)
	}
}

func TestProcessQuery_AITier(t *testing.T) {
	provider := &scriptedProvider{name: "groq", text: "Please ask Mr. Santos at the records desk."}
	p := newTestPipeline(&stubFAQRepo{}, newStubConvRepo(), provider)

	resp, err := p.ProcessQuery(context.Background(), QueryInput{
		Query:     "paano kumuha ng building permit sa munisipyo",
		SessionID: "sess-1",
	})
	if err != nil {
		t.Fatalf("ProcessQuery() error = %v", err)
	}
	if resp.Type != ResponseAI || !resp.AIGenerated {
		t.Errorf("resolved to %q (aiGenerated=%v), want ai", resp.Type, resp.AIGenerated)
	}
	if resp.Metadata["provider"] != "groq" {
		t.Errorf("metadata provider = %v, want groq", resp.Metadata["provider"])
	}
	// Outbound sanitation strips the honorific name.
	if strings.Contains(resp.Answer, "Santos") {
		t.Errorf("outbound answer leaked a name: %q", resp.Answer)
	}
}

func TestProcessQuery_ChainExhaustedFallsBack(t *testing.T) {
	provider := &scriptedProvider{name: "groq", err: errors.New("rate limited")}
	p := newTestPipeline(&stubFAQRepo{}, newStubConvRepo(), provider)

	resp, err := p.ProcessQuery(context.Background(), QueryInput{
		Query:     "paano kumuha ng building permit sa munisipyo",
		SessionID: "sess-1",
	})
	if err != nil {
		t.Fatalf("ProcessQuery() error = %v", err)
	}
	if resp.Type != ResponseFallback {
		t.Errorf("resolved to %q, want fallback after chain exhaustion", resp.Type)
	}
}

func TestProcessQuery_HelloResolvesToGreetingFallback(t *testing.T) {
	p := newTestPipeline(&stubFAQRepo{}, newStubConvRepo())

	resp, err := p.ProcessQuery(context.Background(), QueryInput{Query: "hello", SessionID: "sess-1"})
	if err != nil {
		t.Fatalf("ProcessQuery() error = %v", err)
	}
	if resp.Type != ResponseFallback {
		t.Errorf("resolved to %q, want fallback", resp.Type)
	}
	if len(resp.Suggestions) < 2 {
		t.Errorf("greeting carries %d suggestions, want >= 2", len(resp.Suggestions))
	}
}

func TestProcessQuery_ConversationContinuity(t *testing.T) {
	convRepo := newStubConvRepo()
	p := newTestPipeline(&stubFAQRepo{}, convRepo)

	for _, q := range []string{"hello", "what documents can I request"} {
		if _, err := p.ProcessQuery(context.Background(), QueryInput{Query: q, SessionID: "sess-1"}); err != nil {
			t.Fatalf("ProcessQuery(%q) error = %v", q, err)
		}
	}

	if len(convRepo.active) != 1 {
		t.Fatalf("have %d active conversations, want 1", len(convRepo.active))
	}
	if len(convRepo.messages) != 4 {
		t.Fatalf("persisted %d messages, want 4 (two user/bot pairs)", len(convRepo.messages))
	}
	first := convRepo.messages[0].ConversationID
	for i, m := range convRepo.messages {
		if m.ConversationID != first {
			t.Errorf("message %d on conversation %d, want %d", i, m.ConversationID, first)
		}
	}
}
