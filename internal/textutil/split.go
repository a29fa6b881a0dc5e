// Package textutil holds the list helpers used to turn comma-delimited
// answers into display-ready Markdown fragments.
package textutil

import (
	"fmt"
	"strings"
)

// DefaultDelimiter is used when SplitAndTrim is given an empty delimiter.
const DefaultDelimiter = ","

// SplitAndTrim splits text on delimiter and trims surrounding whitespace from
// every piece. An empty text yields a one-element slice holding "", so callers
// that care about absence should use ParseList instead.
func SplitAndTrim(text, delimiter string) []string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	parts := strings.Split(text, delimiter)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// NumberedImageLinks renders each URL as a Markdown image captioned with
// prefix and its zero-based position.
func NumberedImageLinks(items []string, captionPrefix string) []string {
	links := make([]string, len(items))
	for i, url := range items {
		links[i] = fmt.Sprintf("![%s %d](%s)", captionPrefix, i, url)
	}
	return links
}
