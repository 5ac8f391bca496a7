// Package assistant orchestrates query resolution: privacy guard, knowledge
// base search, AI fallback chain, and the static responder.
package assistant

// ResponseType tags which tier produced the answer.
type ResponseType string

const (
	ResponsePrivacyProtection ResponseType = "privacy_protection"
	ResponseFAQ               ResponseType = "faq"
	ResponseAI                ResponseType = "ai"
	ResponseFallback          ResponseType = "fallback"
)

// Suggestion is a follow-up the resident can ask next.
type Suggestion struct {
	Question string `json:"question"`
	FAQID    uint   `json:"faqId,omitempty"`
}

// ResolvedResponse is the single answer a pipeline invocation produces.
type ResolvedResponse struct {
	Type        ResponseType   `json:"type"`
	Answer      string         `json:"answer"`
	Source      string         `json:"source"`
	Method      string         `json:"method,omitempty"`
	Confidence  string         `json:"confidence,omitempty"`
	AIGenerated bool           `json:"aiGenerated"`
	Suggestions []Suggestion   `json:"suggestions,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Persisted method tags for the user message of blocked turns.
const (
	methodBlocked             = "blocked"
	methodPersonalDataBlocked = "personal_data_blocked"
)

// Canned answers for the privacy tiers. Fixed text, never generated.
const (
	piiRequestDisclaimer = "I can't share personal information about residents. " +
		"For verified requests about a specific person, please visit the barangay hall " +
		"with a valid ID and state the purpose of your request."

	selfDisclosureWarning = "For your safety, please don't share personal details like " +
		"phone numbers, addresses, or ID numbers in this chat. I've hidden that part of " +
		"your message. How else can I help you?"

	aiDisclaimer = "This answer was generated automatically and may be incomplete. " +
		"For official matters, please confirm with the barangay office."
)
