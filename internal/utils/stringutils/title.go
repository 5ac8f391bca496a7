package stringutils

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	urlPattern        = regexp.MustCompile(`(?i)(https?://|www\.)[^\s]+`)
	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// SanitizeTitleContent strips URLs and special characters so the content can be
// used as a conversation title.
func SanitizeTitleContent(content string) string {
	content = urlPattern.ReplaceAllString(content, "")

	var result strings.Builder
	for _, r := range content {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) ||
			r == '.' || r == ',' || r == '!' || r == '?' || r == '-' || r == '\'' {
			result.WriteRune(r)
		}
	}
	content = result.String()

	content = multiSpacePattern.ReplaceAllString(content, " ")
	content = strings.TrimSpace(content)
	content = strings.TrimRight(content, " .,!?-'")

	return content
}

// TruncateTitle truncates a title to maxLen, preferring word boundaries.
func TruncateTitle(title string, maxLen int) string {
	if len(title) <= maxLen {
		return title
	}

	ellipsis := "..."
	contentLimit := maxLen - len(ellipsis)
	if contentLimit < 0 {
		contentLimit = 0
	}

	truncated := title[:contentLimit]
	minLen := contentLimit / 2

	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > minLen {
		truncated = strings.TrimRight(truncated[:lastSpace], " ")
	}

	return truncated + ellipsis
}

// GenerateTitle creates a clean, truncated title from content.
func GenerateTitle(content string, maxLen int) string {
	sanitized := SanitizeTitleContent(content)
	if sanitized == "" {
		return ""
	}
	return TruncateTitle(sanitized, maxLen)
}
