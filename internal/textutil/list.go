package textutil

import "strings"

// List is a delimited answer that has already been checked for presence.
// The zero value is an absent list; it never contains the spurious empty
// element SplitAndTrim produces for empty input.
type List struct {
	items []string
}

// ParseList splits raw with SplitAndTrim only when raw is non-empty.
func ParseList(raw, delimiter string) List {
	if raw == "" {
		return List{}
	}
	return List{items: SplitAndTrim(raw, delimiter)}
}

// NewList wraps already-split items. A nil or empty slice is an absent list.
func NewList(items []string) List {
	if len(items) == 0 {
		return List{}
	}
	return List{items: append([]string(nil), items...)}
}

// Present reports whether the list came from non-empty input.
func (l List) Present() bool {
	return len(l.items) > 0
}

// Len returns the number of items.
func (l List) Len() int {
	return len(l.items)
}

// Items returns a copy of the items.
func (l List) Items() []string {
	return append([]string(nil), l.items...)
}

// Join joins the items with sep. Absent lists join to "".
func (l List) Join(sep string) string {
	return strings.Join(l.items, sep)
}

// ImageLinks maps the items through NumberedImageLinks.
func (l List) ImageLinks(captionPrefix string) List {
	if !l.Present() {
		return List{}
	}
	return List{items: NumberedImageLinks(l.items, captionPrefix)}
}

// Append returns a copy of the list with item added last. Appending to an
// absent list makes it present.
func (l List) Append(item string) List {
	items := make([]string, 0, len(l.items)+1)
	items = append(items, l.items...)
	return List{items: append(items, item)}
}
