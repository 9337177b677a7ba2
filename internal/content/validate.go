package content

import (
	"errors"
	"net/url"
	"slices"
	"strings"

	"github.com/btmxh/folio/internal/media"
)

var ErrEmptyName = errors.New("Name must not be empty.")
var ErrEmptyTitle = errors.New("Title must not be empty.")
var ErrEmptyText = errors.New("Text must not be empty.")
var ErrEmptySectionType = errors.New("Section type must not be empty.")
var ErrEmptySection = errors.New("Entry must belong to a section.")
var ErrEmptyPlatform = errors.New("Platform must not be empty.")
var ErrInvalidLayout = errors.New("Layout must be one of tab, inline or hybrid.")
var ErrInvalidURL = errors.New("Links must be absolute http(s) URLs.")
var ErrInvalidMediaKind = errors.New("Unknown media type.")
var ErrEmptyMediaURL = errors.New("Media links must have a URL.")
var ErrIncompleteButton = errors.New("Button text and button URL must be set together.")

func checkURL(s string, optional bool) error {
	s = strings.TrimSpace(s)
	if s == "" {
		if optional {
			return nil
		}
		return ErrInvalidURL
	}

	u, err := url.ParseRequestURI(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}

	return nil
}

func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}

	return checkURL(p.PhotoURL, true)
}

func (h *Highlight) Validate() error {
	if strings.TrimSpace(h.Text) == "" {
		return ErrEmptyText
	}

	return nil
}

func (s *Section) Validate() error {
	if strings.TrimSpace(s.Type) == "" {
		return ErrEmptySectionType
	}

	if strings.TrimSpace(s.Title) == "" {
		return ErrEmptyTitle
	}

	if !slices.Contains(Layouts, s.Layout) {
		return ErrInvalidLayout
	}

	return nil
}

// Media link URLs are not checked beyond being present: the resolver
// copes with anything the author pastes.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.SectionId) == "" {
		return ErrEmptySection
	}

	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}

	for _, link := range e.Links {
		if err := checkURL(link.URL, false); err != nil {
			return err
		}
	}

	for _, link := range e.MediaLinks {
		if strings.TrimSpace(link.URL) == "" {
			return ErrEmptyMediaURL
		}

		if _, err := media.ParseKindStrict(string(link.Kind)); err != nil {
			return ErrInvalidMediaKind
		}
	}

	return checkURL(e.PublicationURL, true)
}

func (f *Featured) Validate() error {
	if strings.TrimSpace(f.Text) == "" {
		return ErrEmptyText
	}

	if (f.ButtonText == "") != (f.ButtonURL == "") {
		return ErrIncompleteButton
	}

	return checkURL(f.ButtonURL, true)
}

func (s *Social) Validate() error {
	if strings.TrimSpace(s.Platform) == "" {
		return ErrEmptyPlatform
	}

	return checkURL(s.URL, false)
}
