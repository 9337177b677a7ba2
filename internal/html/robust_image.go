package html

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"strings"

	"github.com/btmxh/folio/internal/media"
)

// RobustImage renders an <img> that starts on the first candidate of url.
// The remaining candidates ride along in data-candidates and the loader
// script in robust-image.js advances through them on each error event.
func RobustImage(url, alt, class string) template.HTML {
	if strings.TrimSpace(url) == "" {
		return ""
	}

	resolved := media.ResolveImage(url)
	candidates, err := json.Marshal(resolved.Candidates)
	if err != nil {
		slog.Warn("Unable to encode image candidates", "url", url, "err", err)
		candidates = []byte("[]")
	}

	var b strings.Builder
	attr := func(name, value string) {
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(template.HTMLEscapeString(value))
		b.WriteString(`"`)
	}

	b.WriteString("<img")
	attr("src", resolved.Candidates[0])
	attr("alt", alt)
	if class != "" {
		attr("class", class)
	}
	attr("loading", "lazy")
	attr("data-candidates", string(candidates))
	attr("data-index", "0")
	b.WriteString(` onload="folioImageLoaded(this)" onerror="folioImageFailed(this)">`)
	return template.HTML(b.String())
}
