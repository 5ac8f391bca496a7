package assistant

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"lingkod-server/services/assistant-api/internal/domain/catalog"
)

// Intent keyword tables, checked first-match-wins in declaration order.
var (
	greetingKeywords = []string{
		"hello", "hi ", "hey", "kumusta", "kamusta", "magandang umaga",
		"magandang hapon", "magandang gabi", "good morning", "good afternoon",
		"good evening",
	}
	documentKeywords = []string{
		"document", "certificate", "clearance", "permit", "cedula", "indigency",
		"magkano", "fee", "fees", "bayad", "requirements", "request",
	}
	assistanceKeywords = []string{
		"senior", "pwd", "solo parent", "ayuda", "tulong", "assistance",
		"scholarship", "medical", "aid",
	}
	contactKeywords = []string{
		"contact", "hours", "open", "schedule", "oras", "bukas", "telepono",
		"hotline", "location", "saan ang barangay", "office",
	}
)

// FallbackResponder is the terminal backstop: a static intent classifier with
// live catalog lookups where they help. It never returns an error.
type FallbackResponder struct {
	catalog catalog.Lookup
	log     zerolog.Logger
}

func NewFallbackResponder(lookup catalog.Lookup, log zerolog.Logger) *FallbackResponder {
	return &FallbackResponder{catalog: lookup, log: log}
}

// Respond classifies the sanitized query and returns a canned (or live-data)
// answer. Lookup failures degrade to the generic default.
func (f *FallbackResponder) Respond(ctx context.Context, query string) *ResolvedResponse {
	lowered := strings.ToLower(" " + query + " ")

	switch {
	case matchesAny(lowered, greetingKeywords):
		return f.greeting()
	case matchesAny(lowered, documentKeywords):
		return f.documents(ctx)
	case matchesAny(lowered, assistanceKeywords):
		return f.assistance(ctx)
	case matchesAny(lowered, contactKeywords):
		return f.contact()
	default:
		return f.generic()
	}
}

func matchesAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func (f *FallbackResponder) greeting() *ResolvedResponse {
	return &ResolvedResponse{
		Type:   ResponseFallback,
		Answer: "Hello! I'm the barangay assistant. I can help with document requests, fees, assistance programs, and office information. What would you like to know?",
		Source: "static",
		Suggestions: []Suggestion{
			{Question: "What documents can I request?"},
			{Question: "What are the office hours?"},
			{Question: "What assistance programs are available?"},
		},
	}
}

func (f *FallbackResponder) documents(ctx context.Context) *ResolvedResponse {
	docs, err := f.catalog.ListDocumentTypes(ctx)
	if err != nil || len(docs) == 0 {
		if err != nil {
			f.log.Warn().Err(err).Msg("document type lookup failed, using generic fallback")
		}
		return f.generic()
	}

	var b strings.Builder
	b.WriteString("You can request the following documents:\n")
	for _, d := range docs {
		b.WriteString("- " + d.Title + " (PHP " + d.Fee.StringFixed(2) + ")\n")
	}
	b.WriteString("Bring one valid ID when you visit the barangay hall.")

	return &ResolvedResponse{
		Type:   ResponseFallback,
		Answer: b.String(),
		Source: "catalog",
		Suggestions: []Suggestion{
			{Question: "What are the requirements for a barangay clearance?"},
			{Question: "What are the office hours?"},
		},
	}
}

func (f *FallbackResponder) assistance(ctx context.Context) *ResolvedResponse {
	categories, err := f.catalog.ListSpecialCategories(ctx)
	if err != nil || len(categories) == 0 {
		if err != nil {
			f.log.Warn().Err(err).Msg("special category lookup failed, using generic fallback")
		}
		return f.generic()
	}

	var b strings.Builder
	b.WriteString("The barangay has assistance programs for:\n")
	for _, c := range categories {
		b.WriteString("- " + c.Name + ": " + c.Description + "\n")
	}
	b.WriteString("Visit the barangay hall to check your eligibility.")

	return &ResolvedResponse{
		Type:   ResponseFallback,
		Answer: b.String(),
		Source: "catalog",
		Suggestions: []Suggestion{
			{Question: "How do I register for an assistance program?"},
			{Question: "What documents do I need to bring?"},
		},
	}
}

func (f *FallbackResponder) contact() *ResolvedResponse {
	return &ResolvedResponse{
		Type:   ResponseFallback,
		Answer: "The barangay hall is open Monday to Friday, 8:00 AM to 5:00 PM. You can visit in person or reach the office through its official hotline and social media page.",
		Source: "static",
		Suggestions: []Suggestion{
			{Question: "What documents can I request?"},
			{Question: "What assistance programs are available?"},
		},
	}
}

func (f *FallbackResponder) generic() *ResolvedResponse {
	return &ResolvedResponse{
		Type:   ResponseFallback,
		Answer: "I'm not sure about that one. I can help with document requests, fees, assistance programs, announcements, and office hours. You can also visit the barangay hall for matters I can't answer here.",
		Source: "static",
		Suggestions: []Suggestion{
			{Question: "What documents can I request?"},
			{Question: "What are the office hours?"},
		},
	}
}
