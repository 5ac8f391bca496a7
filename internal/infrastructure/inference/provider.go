// Package inference adapts external text-generation backends behind one
// uniform contract and orders them into a fallback chain.
package inference

import "context"

// Provider generates an answer for a query given pre-assembled context text.
// Providers hold static configuration only; no state survives between calls.
type Provider interface {
	Name() string
	Generate(ctx context.Context, query string, contextText string) (string, error)
}

// buildPrompt folds the context bundle and the question into a single prompt.
// Kept identical across adapters so provider swaps do not change behavior.
func buildPrompt(query, contextText string) string {
	if contextText == "" {
		return query
	}
	return contextText + "\n\nQuestion: " + query
}

const systemInstruction = "You are a helpful barangay assistant. Answer the resident's question " +
	"using only the reference information provided. Keep answers short, factual, and polite. " +
	"Never reveal personal information about residents. If the reference information does not " +
	"cover the question, say so and suggest visiting the barangay hall."
