package assistant

import (
	"strings"

	"lingkod-server/services/assistant-api/internal/domain/catalog"
	"lingkod-server/services/assistant-api/internal/domain/conversation"
	"lingkod-server/services/assistant-api/internal/domain/faq"
)

// Hard caps keeping the assembled prompt bounded.
const (
	maxContextFAQs     = 5
	maxRuleSnippets    = 8
	maxRecordSummaries = 5
	maxRecentTurns     = 3
	maxSimilarQA       = 3
	maxFeeEntries      = 10
	maxAnnouncements   = 3
)

// ruleSnippets are standing office rules always eligible for the bundle.
var ruleSnippets = []string{
	"The barangay hall is open Monday to Friday, 8:00 AM to 5:00 PM.",
	"Document requests require one valid government ID.",
	"Certificates are released on the same day when requirements are complete.",
	"First-time requesters must be listed in the resident registry.",
	"Payment is accepted at the treasurer's window, cash only.",
	"Senior citizens, PWDs, and solo parents may use the priority lane.",
	"Blotter reports are filed in person with the barangay secretary.",
	"Business permits must be renewed every January.",
}

// announcementKeywords gates the announcements section: it is attached only
// when the query actually asks about news or events.
var announcementKeywords = []string{
	"announcement", "announcements", "balita", "news", "event", "events",
	"activity", "activities", "advisory", "schedule", "update", "updates",
	"patalastas", "anunsyo",
}

// ContextInput carries everything the bundle may include. The pipeline
// gathers it; assembly itself is pure.
type ContextInput struct {
	Query           string
	FAQs            []faq.Entry
	RecordSummaries []string
	RecentTurns     []*conversation.Message
	SimilarQA       []faq.Entry
	Fees            []catalog.DocumentType
	Announcements   []catalog.Announcement
}

// BuildContext assembles the capped context bundle for AI generation. Sections
// with no data are omitted entirely.
func BuildContext(in ContextInput) string {
	var sections []string

	if len(in.FAQs) > 0 {
		var b strings.Builder
		b.WriteString("Frequently asked questions:")
		for _, e := range capEntries(in.FAQs, maxContextFAQs) {
			b.WriteString("\nQ: " + e.Question + "\nA: " + e.Answer)
		}
		sections = append(sections, b.String())
	}

	if len(ruleSnippets) > 0 {
		var b strings.Builder
		b.WriteString("Office rules:")
		for _, r := range ruleSnippets[:minInt(len(ruleSnippets), maxRuleSnippets)] {
			b.WriteString("\n- " + r)
		}
		sections = append(sections, b.String())
	}

	if len(in.RecordSummaries) > 0 {
		var b strings.Builder
		b.WriteString("Reference records:")
		for _, s := range in.RecordSummaries[:minInt(len(in.RecordSummaries), maxRecordSummaries)] {
			b.WriteString("\n- " + s)
		}
		sections = append(sections, b.String())
	}

	if len(in.RecentTurns) > 0 {
		turns := in.RecentTurns
		if len(turns) > maxRecentTurns {
			turns = turns[len(turns)-maxRecentTurns:]
		}
		var b strings.Builder
		b.WriteString("Recent conversation:")
		for _, m := range turns {
			b.WriteString("\n" + string(m.Role) + ": " + m.Text)
		}
		sections = append(sections, b.String())
	}

	if len(in.SimilarQA) > 0 {
		var b strings.Builder
		b.WriteString("Previously helpful answers:")
		for _, e := range capEntries(in.SimilarQA, maxSimilarQA) {
			b.WriteString("\nQ: " + e.Question + "\nA: " + e.Answer)
		}
		sections = append(sections, b.String())
	}

	if len(in.Fees) > 0 {
		fees := in.Fees
		if len(fees) > maxFeeEntries {
			fees = fees[:maxFeeEntries]
		}
		var b strings.Builder
		b.WriteString("Current document fees:")
		for _, f := range fees {
			b.WriteString("\n- " + f.Title + ": PHP " + f.Fee.StringFixed(2))
		}
		sections = append(sections, b.String())
	}

	if len(in.Announcements) > 0 && mentionsAnnouncements(in.Query) {
		anns := in.Announcements
		if len(anns) > maxAnnouncements {
			anns = anns[:maxAnnouncements]
		}
		var b strings.Builder
		b.WriteString("Recent announcements:")
		for _, a := range anns {
			b.WriteString("\n- [" + a.PublishedAt.Format("2006-01-02") + "] " + a.Title + ": " + a.Content)
		}
		sections = append(sections, b.String())
	}

	return strings.Join(sections, "\n\n")
}

func mentionsAnnouncements(query string) bool {
	lowered := strings.ToLower(query)
	for _, kw := range announcementKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func capEntries(entries []faq.Entry, n int) []faq.Entry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
