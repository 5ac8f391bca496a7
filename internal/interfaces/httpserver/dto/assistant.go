package dto

// QueryRequest is one resident utterance bound to a chat session.
type QueryRequest struct {
	Query     string `json:"query" binding:"required,min=1,max=2000"`
	SessionID string `json:"sessionId" binding:"required,min=1,max=128"`
	UserID    *uint  `json:"userId"`
}

// QueryResponse mirrors the pipeline's resolved response.
type QueryResponse struct {
	Type        string            `json:"type"`
	Answer      string            `json:"answer"`
	Source      string            `json:"source"`
	Method      string            `json:"method,omitempty"`
	Confidence  string            `json:"confidence,omitempty"`
	AIGenerated bool              `json:"aiGenerated"`
	Suggestions []QuerySuggestion `json:"suggestions,omitempty"`
	Metadata    map[string]any    `json:"metadata,omitempty"`
}

// QuerySuggestion is a follow-up question offer.
type QuerySuggestion struct {
	Question string `json:"question"`
	FAQID    uint   `json:"faqId,omitempty"`
}

// FeedbackRequest records a helpful / not-helpful vote on a FAQ entry.
type FeedbackRequest struct {
	Helpful *bool `json:"helpful" binding:"required"`
}
