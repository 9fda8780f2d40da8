package textutil

import (
	"regexp"
	"strings"
)

var (
	parenthesizedRegex = regexp.MustCompile(`\s*\(.*\)`)
	byConnectiveRegex  = regexp.MustCompile(`\s+by\s+`)
	nonAlnumRegex      = regexp.MustCompile(`[^\w\s]`)
	whitespaceRegex    = regexp.MustCompile(`\s+`)
)

// NormalizeTitle strips parenthesized annotations (series names,
// edition notes) from a book title and lowercases it.
func NormalizeTitle(title string) string {
	title = parenthesizedRegex.ReplaceAllString(title, "")
	return strings.ToLower(strings.TrimSpace(title))
}

// NormalizeAuthor strips role annotations like "(Goodreads Author)"
// and collapses a "by" connective, then lowercases.
func NormalizeAuthor(author string) string {
	if author == "" {
		return ""
	}
	author = parenthesizedRegex.ReplaceAllString(author, "")
	author = byConnectiveRegex.ReplaceAllString(author, " ")
	return strings.ToLower(strings.TrimSpace(author))
}

// NormalizeString is the loosest normal form: lowercase, punctuation
// stripped, whitespace runs collapsed to single spaces.
func NormalizeString(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = nonAlnumRegex.ReplaceAllString(text, "")
	text = whitespaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CleanTitle removes a trailing "by <author>" fragment that users
// commonly paste along with the title.
func CleanTitle(title, author string) string {
	lower := strings.ToLower(title)
	if author != "" {
		byAuthor := "by " + strings.ToLower(author)
		if idx := strings.Index(lower, byAuthor); idx >= 0 {
			return strings.TrimSpace(title[:idx])
		}
	}
	if idx := strings.Index(lower, " by "); idx >= 0 {
		return strings.TrimSpace(title[:idx])
	}
	return strings.TrimSpace(title)
}
