package media

import (
	"log/slog"
	"strings"
)

// ResolveImage computes the ordered candidate list for an image link. It
// never fails: unrecognised or malformed links resolve to themselves.
func ResolveImage(raw string) Resolved {
	resolved := Resolved{
		Kind:       KindImage,
		Strategy:   DirectEmbed,
		Candidates: []string{raw},
		Original:   raw,
	}

	u, ok := parseLink(raw)
	if !ok || !isDrive(u) {
		return resolved
	}

	resolved.Provider = ProviderDrive
	resolved.Candidates = driveImageCandidates(u, raw)
	return resolved
}

// ResolveEmbed resolves video and document links. A link on a known
// provider without a usable identifier degrades to ExternalLinkOnly.
func ResolveEmbed(raw string, kind Kind, opts EmbedOptions) Resolved {
	switch {
	case kind == KindVideo:
		return resolveVideo(raw, opts)
	case kind.IsDocument():
		return resolveDocument(raw, kind)
	case kind == KindImage:
		return ResolveImage(raw)
	}

	return externalLink(raw, kind, ProviderNone)
}

// Resolve dispatches on the declared kind of link.
func Resolve(link Link, opts EmbedOptions) Resolved {
	if link.Kind == KindImage {
		return ResolveImage(link.URL)
	}

	return ResolveEmbed(link.URL, link.Kind, opts)
}

func resolveVideo(raw string, opts EmbedOptions) Resolved {
	direct := Resolved{
		Kind:       KindVideo,
		Strategy:   DirectEmbed,
		Candidates: []string{raw},
		Original:   raw,
	}

	u, ok := parseLink(raw)
	if !ok {
		return direct
	}

	p := matchVideoProvider(u)
	if p == nil {
		return direct
	}

	id := p.extract(u, raw)
	if id == "" {
		slog.Debug("Could not extract identifier from video URL", "provider", p.name, "url", raw)
		return externalLink(raw, KindVideo, p.name)
	}

	embedURL := p.embed(id, opts)
	if embedURL == "" {
		slog.Debug("Unable to build embed URL", "provider", p.name, "url", raw)
		return externalLink(raw, KindVideo, p.name)
	}

	return Resolved{
		Kind:     KindVideo,
		Strategy: IframeEmbed,
		Provider: p.name,
		EmbedURL: embedURL,
		Original: raw,
	}
}

func resolveDocument(raw string, kind Kind) Resolved {
	u, ok := parseLink(raw)
	if !ok {
		return externalLink(raw, kind, ProviderNone)
	}

	var provider Provider
	switch {
	case isDrive(u):
		provider = ProviderDrive
	case hostMatches(u, docsHosts...):
		provider = ProviderDocs
	default:
		return externalLink(raw, kind, ProviderNone)
	}

	return Resolved{
		Kind:     kind,
		Strategy: IframeEmbed,
		Provider: provider,
		EmbedURL: documentViewerURL(strings.TrimSpace(raw)),
		Original: raw,
	}
}

func externalLink(raw string, kind Kind, provider Provider) Resolved {
	return Resolved{
		Kind:     kind,
		Strategy: ExternalLinkOnly,
		Provider: provider,
		Original: raw,
	}
}
