package assistant

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"lingkod-server/services/assistant-api/internal/domain/catalog"
	"lingkod-server/services/assistant-api/internal/domain/conversation"
	"lingkod-server/services/assistant-api/internal/domain/faq"

	"github.com/shopspring/decimal"
)

func TestBuildContext_OmitsEmptySections(t *testing.T) {
	out := BuildContext(ContextInput{Query: "office hours"})

	if strings.Contains(out, "Frequently asked questions") {
		t.Error("FAQ section present with no entries")
	}
	if strings.Contains(out, "Reference records") {
		t.Error("records section present with no summaries")
	}
	if strings.Contains(out, "Recent announcements") {
		t.Error("announcements section present with no data")
	}
	if !strings.Contains(out, "Office rules") {
		t.Error("standing rules section missing")
	}
}

func TestBuildContext_CapsFAQs(t *testing.T) {
	entries := make([]faq.Entry, 9)
	for i := range entries {
		entries[i] = faq.Entry{Question: fmt.Sprintf("question %d", i), Answer: "answer"}
	}

	out := BuildContext(ContextInput{Query: "q", FAQs: entries})
	if got := strings.Count(out, "\nQ: question"); got != maxContextFAQs {
		t.Errorf("bundle holds %d FAQ pairs, want %d", got, maxContextFAQs)
	}
}

func TestBuildContext_AnnouncementsKeywordGated(t *testing.T) {
	anns := []catalog.Announcement{
		{Title: "Libreng checkup", Content: "Health center, Sept 5", PublishedAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
	}

	withKeyword := BuildContext(ContextInput{Query: "any news this week?", Announcements: anns})
	if !strings.Contains(withKeyword, "Libreng checkup") {
		t.Error("announcements omitted despite keyword match")
	}

	withoutKeyword := BuildContext(ContextInput{Query: "how much is a permit", Announcements: anns})
	if strings.Contains(withoutKeyword, "Libreng checkup") {
		t.Error("announcements attached without keyword match")
	}
}

func TestBuildContext_KeepsLastTurns(t *testing.T) {
	turns := []*conversation.Message{
		{Role: conversation.RoleUser, Text: "first"},
		{Role: conversation.RoleBot, Text: "second"},
		{Role: conversation.RoleUser, Text: "third"},
		{Role: conversation.RoleBot, Text: "fourth"},
	}

	out := BuildContext(ContextInput{Query: "q", RecentTurns: turns})
	if strings.Contains(out, "first") {
		t.Error("oldest turn kept beyond the cap")
	}
	for _, want := range []string{"second", "third", "fourth"} {
		if !strings.Contains(out, want) {
			t.Errorf("turn %q missing from bundle", want)
		}
	}
}

func TestBuildContext_FeesFormatted(t *testing.T) {
	fees := []catalog.DocumentType{
		{Title: "Barangay Clearance", Fee: decimal.NewFromInt(50)},
	}

	out := BuildContext(ContextInput{Query: "q", Fees: fees})
	if !strings.Contains(out, "Barangay Clearance: PHP 50.00") {
		t.Errorf("fee line missing or misformatted:\n%s", out)
	}
}
