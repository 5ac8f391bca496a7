// Package privacy implements PII redaction and detection for resident queries.
package privacy

import (
	"regexp"
	"strings"
)

// Redaction placeholder tokens. Bracketed upper-case tokens are chosen so that
// no redaction rule can ever match them, which makes sanitization idempotent.
const (
	TokenPhone   = "[PHONE_REDACTED]"
	TokenEmail   = "[EMAIL_REDACTED]"
	TokenDate    = "[DATE_REDACTED]"
	TokenName    = "[NAME_REDACTED]"
	TokenAddress = "[ADDRESS_REDACTED]"
	TokenID      = "[ID_REDACTED]"
	TokenNumber  = "[NUMBER_REDACTED]"
)

// redactionRule is one entry of the ordered rule table. When template is true
// the replacement may reference capture groups (e.g. "${1} [NAME_REDACTED]")
// so the lead-in phrase survives while the name itself is redacted.
type redactionRule struct {
	name        string
	pattern     *regexp.Regexp
	replacement string
	template    bool
	exemptions  map[string]bool
}

func (r redactionRule) apply(text string) string {
	return r.pattern.ReplaceAllStringFunc(text, func(match string) string {
		if r.isExempt(match) {
			return match
		}
		if r.template {
			return r.pattern.ReplaceAllString(match, r.replacement)
		}
		return r.replacement
	})
}

// isExempt reports whether every word of the match is on the rule's
// allow-list, or the full phrase is.
func (r redactionRule) isExempt(match string) bool {
	if len(r.exemptions) == 0 {
		return false
	}
	if r.exemptions[strings.ToLower(strings.TrimSpace(match))] {
		return true
	}
	words := strings.Fields(match)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !r.exemptions[strings.ToLower(w)] {
			return false
		}
	}
	return true
}

// knownTerms exempts non-PII capitalized phrases from the generic name rule:
// institutions, document names, weekdays, months, and common greetings.
var knownTerms = buildExemptions(
	"barangay", "hall", "city", "municipal", "office", "captain", "council",
	"clearance", "certificate", "indigency", "residency", "business", "permit",
	"community", "tax", "cedula", "philippine", "statistics", "authority",
	"social", "security", "system", "national", "senior", "citizen", "person",
	"persons", "disability", "solo", "parent", "assistance", "program",
	"good", "morning", "afternoon", "evening", "day", "new", "year",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"january", "february", "march", "april", "may", "june", "july", "august",
	"september", "october", "november", "december",
)

func buildExemptions(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// Patterns shared between the sanitizer rule table and the guard detectors.
var (
	phonePattern    = regexp.MustCompile(`(?:\+?63|0)9\d{2}[-\s.]?\d{3}[-\s.]?\d{4}\b`)
	emailPattern    = regexp.MustCompile(`\b[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}\b`)
	slashDate       = regexp.MustCompile(`\b\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}\b`)
	isoDate         = regexp.MustCompile(`\b\d{4}[/-]\d{1,2}[/-]\d{1,2}\b`)
	idNumberPattern = regexp.MustCompile(`\b(?:\d{4}[- ]\d{4}[- ]\d{4}(?:[- ]\d{1,4})?|\d{2}-\d{7}-\d)\b`)
	selfIntro       = regexp.MustCompile(`\b((?:[Aa]ko po si|[Aa]ko si|[Mm]y name is|[Ii] am|[Ii]'m|[Tt]his is))\s+([A-Z][\pL'\-]+(?:\s+[A-Z][\pL'\-]+){0,3})`)
	streetAddress   = regexp.MustCompile(`\b(?:\d{1,5}\s+)?(?:[A-Z][a-z]+\s+)+(?:St|Street|Ave|Avenue|Rd|Road|Blvd|Drive|Purok|Sitio|Subdivision|Subd)\.?(?:\s+\d{1,4})?\b`)
	lotBlockAddress = regexp.MustCompile(`(?i)\b(?:purok|sitio|zone|blk|block|lot|phase)\s+\d{1,4}[a-z]?\b`)
	capitalizedName = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)
	longDigits      = regexp.MustCompile(`\b\d{7,}\b`)
	honorificName   = regexp.MustCompile(`\b(?:Mr|Mrs|Ms|Dr|Atty|Engr|Gng|Bb)\.?\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*`)
)

// inboundRules is the ordered redaction table for user-supplied text. Order is
// significant: phones and emails go before the generic digit rule, dates
// before generic numbers, and the self-introduction rule before the generic
// capitalized-phrase rule.
var inboundRules = []redactionRule{
	{name: "phone", pattern: phonePattern, replacement: TokenPhone},
	{name: "email", pattern: emailPattern, replacement: TokenEmail},
	{name: "date_slash", pattern: slashDate, replacement: TokenDate},
	{name: "date_iso", pattern: isoDate, replacement: TokenDate},
	{name: "id_number", pattern: idNumberPattern, replacement: TokenID},
	{name: "self_intro", pattern: selfIntro, replacement: "${1} " + TokenName, template: true},
	{name: "street_address", pattern: streetAddress, replacement: TokenAddress, exemptions: knownTerms},
	{name: "lot_block_address", pattern: lotBlockAddress, replacement: TokenAddress},
	{name: "capitalized_name", pattern: capitalizedName, replacement: TokenName, exemptions: knownTerms},
	{name: "long_number", pattern: longDigits, replacement: TokenNumber},
}

// outboundRules is the stricter table for AI-generated text: everything in the
// inbound table plus honorific+name shapes as defense-in-depth.
var outboundRules = buildOutboundRules()

func buildOutboundRules() []redactionRule {
	honorific := redactionRule{name: "honorific_name", pattern: honorificName, replacement: TokenName}

	rules := make([]redactionRule, 0, len(inboundRules)+1)
	for _, r := range inboundRules {
		if r.name == "capitalized_name" {
			rules = append(rules, honorific)
		}
		rules = append(rules, r)
	}
	return rules
}

// Sanitize redacts PII from user-supplied text. Applying it twice yields the
// same output as applying it once.
func Sanitize(text string) string {
	return applyRules(inboundRules, text)
}

// SanitizeOutbound redacts PII from generated text with the stricter table.
func SanitizeOutbound(text string) string {
	return applyRules(outboundRules, text)
}

func applyRules(rules []redactionRule, text string) string {
	for _, rule := range rules {
		text = rule.apply(text)
	}
	return text
}
