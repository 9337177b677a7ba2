package content

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const AllPublications = "all"

type Tab struct {
	Type  string
	Label string
}

// PublicationTabs lists the "all" tab followed by every publication type in
// first-seen order.
func PublicationTabs(entries []Entry) []Tab {
	tabs := []Tab{{Type: AllPublications, Label: "All Publications"}}
	labels := map[string]string{}
	var types []string

	for _, entry := range entries {
		kind := entry.PublicationType
		if kind == "" {
			continue
		}

		if _, seen := labels[kind]; !seen {
			types = append(types, kind)
			labels[kind] = ""
		}

		if labels[kind] == "" && entry.PublicationTypeLabel != "" {
			labels[kind] = entry.PublicationTypeLabel
		}
	}

	for _, kind := range types {
		label := labels[kind]
		if label == "" {
			label = capitalize(kind)
		}

		tabs = append(tabs, Tab{Type: kind, Label: label})
	}

	return tabs
}

func FilterByPublicationType(entries []Entry, tab string) []Entry {
	if tab == "" || tab == AllPublications {
		return entries
	}

	var filtered []Entry
	for _, entry := range entries {
		if entry.PublicationType == tab {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

const DefaultExcerptLength = 150

// Excerpt truncates s to at most limit runes, appending "..." when cut.
func Excerpt(s string, limit int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
