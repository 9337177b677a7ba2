package content

import (
	"slices"
	"time"

	"github.com/btmxh/folio/internal/media"
	"github.com/google/uuid"
)

type Id = uuid.UUID

func NewId() Id {
	return uuid.New()
}

// Base holds the fields shared by every stored document.
type Base struct {
	Id        Id
	Order     int
	Visible   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b Base) Meta() Base {
	return b
}

type Document interface {
	Meta() Base
}

type Profile struct {
	Base
	Name     string
	Headline string
	PhotoURL string
	About    string
}

type Highlight struct {
	Base
	Text string
	Icon string
}

type Layout string

const (
	LayoutTab    Layout = "tab"
	LayoutInline Layout = "inline"
	LayoutHybrid Layout = "hybrid"
)

var Layouts = []Layout{LayoutTab, LayoutInline, LayoutHybrid}

type Section struct {
	Base
	// Type is the key entries refer to through Entry.SectionId,
	// e.g. "experience" or "publications".
	Type   string
	Title  string
	Layout Layout
}

type EntryLink struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

type DateRange struct {
	Start string
	End   string
}

func (r DateRange) IsZero() bool {
	return r.Start == "" && r.End == ""
}

type Entry struct {
	Base
	SectionId  string
	Title      string
	Content    string
	Images     []string
	Links      []EntryLink
	DateRange  DateRange
	Tags       []string
	MediaLinks []media.Link

	Publisher            string
	PublicationDate      *time.Time
	PublicationURL       string
	PublicationType      string
	PublicationTypeLabel string
	CoAuthors            []string
}

// FirstMedia returns the media link shown as the entry preview.
func (e *Entry) FirstMedia() (media.Link, bool) {
	if len(e.MediaLinks) == 0 {
		return media.Link{}, false
	}

	return e.MediaLinks[0], true
}

type Featured struct {
	Base
	Text       string
	ImageURL   string
	ButtonText string
	ButtonURL  string
}

func (f *Featured) HasButton() bool {
	return f.ButtonText != "" && f.ButtonURL != ""
}

type Social struct {
	Base
	Platform string
	URL      string
	Icon     string
}

func compareBase(a, b Base) int {
	if a.Order != b.Order {
		return a.Order - b.Order
	}

	return a.CreatedAt.Compare(b.CreatedAt)
}

// SortByOrder sorts documents by ascending order, oldest first on ties.
func SortByOrder[T Document](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		return compareBase(a.Meta(), b.Meta())
	})
}

func VisibleOnly[T Document](items []T) []T {
	var visible []T
	for _, item := range items {
		if item.Meta().Visible {
			visible = append(visible, item)
		}
	}

	return visible
}

// NextOrder returns an order value placing a new document after items.
func NextOrder[T Document](items []T) int {
	next := 1
	for _, item := range items {
		next = max(next, item.Meta().Order+1)
	}

	return next
}
