package media

import "errors"

// Kind is the media type declared by the content author. It is never
// inferred from the URL.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindPDF   Kind = "pdf"
	KindPPT   Kind = "ppt"
	KindPPTX  Kind = "pptx"
	KindDoc   Kind = "doc"
	KindDocx  Kind = "docx"
	KindOther Kind = "other"
)

var Kinds = []Kind{KindImage, KindVideo, KindPDF, KindPPT, KindPPTX, KindDoc, KindDocx, KindOther}

var ErrUnknownKind = errors.New("Unknown media type")

// ParseKind maps unknown values to KindOther.
func ParseKind(s string) Kind {
	kind, err := ParseKindStrict(s)
	if err != nil {
		return KindOther
	}

	return kind
}

func ParseKindStrict(s string) (Kind, error) {
	for _, kind := range Kinds {
		if string(kind) == s {
			return kind, nil
		}
	}

	return KindOther, ErrUnknownKind
}

func (k Kind) IsDocument() bool {
	switch k {
	case KindPDF, KindPPT, KindPPTX, KindDoc, KindDocx:
		return true
	}

	return false
}

type Strategy string

const (
	DirectEmbed      Strategy = "direct-embed"
	IframeEmbed      Strategy = "iframe-embed"
	ExternalLinkOnly Strategy = "external-link-only"
)

type Provider string

const (
	ProviderNone        Provider = ""
	ProviderYoutube     Provider = "youtube"
	ProviderDailymotion Provider = "dailymotion"
	ProviderFacebook    Provider = "facebook"
	ProviderInstagram   Provider = "instagram"
	ProviderVimeo       Provider = "vimeo"
	ProviderTwitch      Provider = "twitch"
	ProviderDrive       Provider = "drive"
	ProviderDocs        Provider = "docs"
)

// Link is one piece of external media attached to a content entry.
type Link struct {
	URL   string `json:"url"`
	Kind  Kind   `json:"type"`
	Title string `json:"title,omitempty"`
}

// Resolved describes how a Link should be rendered. It is derived on demand
// and never persisted.
type Resolved struct {
	Kind     Kind     `json:"kind"`
	Strategy Strategy `json:"strategy"`
	Provider Provider `json:"provider,omitempty"`
	// set for IframeEmbed
	EmbedURL string `json:"embedUrl,omitempty"`
	// set for DirectEmbed, most likely first, Original last
	Candidates []string `json:"candidates,omitempty"`
	Original   string   `json:"original"`
}

// EmbedOptions carries inputs that cannot be derived from the link itself.
type EmbedOptions struct {
	// Host of the page embedding the media, required by Twitch.
	ParentHost string
}
