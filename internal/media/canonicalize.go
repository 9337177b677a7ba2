package media

import (
	"net/url"
	"strings"
)

func checkId(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		suitable := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
		if !suitable {
			return false
		}
	}

	return true
}

// validId returns id if it only contains id characters, "" otherwise.
func validId(id string) string {
	if checkId(id) {
		return id
	}

	return ""
}

// parseLink parses raw leniently: scheme-less input such as
// "youtu.be/abc" is retried as https.
func parseLink(raw string) (*url.URL, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	u, err := url.Parse(raw)
	if err == nil && u.Host == "" && !strings.Contains(raw, "://") {
		u, err = url.Parse("https://" + raw)
	}

	if err != nil || u.Host == "" {
		return nil, false
	}

	return u, true
}

func hostMatches(u *url.URL, domains ...string) bool {
	host := strings.ToLower(u.Hostname())
	for _, domain := range domains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}

	return false
}

// segmentAfter returns the part of s following marker, cut at the first of
// the stop characters.
func segmentAfter(s, marker, stops string) (string, bool) {
	_, rest, found := strings.Cut(s, marker)
	if !found {
		return "", false
	}

	if i := strings.IndexAny(rest, stops); i >= 0 {
		rest = rest[:i]
	}

	return rest, true
}

func lastPathSegment(u *url.URL) string {
	path := strings.TrimRight(u.Path, "/")
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}

	return path
}

func cutAt(s, stops string) string {
	if i := strings.IndexAny(s, stops); i >= 0 {
		return s[:i]
	}

	return s
}
