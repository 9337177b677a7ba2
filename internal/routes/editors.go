package routes

import (
	"net/http"

	"github.com/btmxh/folio/internal/content"
	"github.com/btmxh/folio/internal/db"
	"github.com/btmxh/folio/internal/services"
	"github.com/gin-gonic/gin"
)

// editor adapts the services of one collection to the admin form handlers.
type editor interface {
	blank(c *gin.Context) any
	load(tx *db.Tx, id content.Id) (item any, hasErr bool)
	// submit fills a document from the posted form and stores it. A nil
	// id creates a new document. The filled document is returned even on
	// failure so the form can be shown again.
	submit(c *gin.Context, tx *db.Tx, id *content.Id) (item any, hasErr bool)
}

type documentEditor[T any] struct {
	base   func(*T) *content.Base
	get    func(*db.Tx, content.Id) (T, bool)
	fill   func(*gin.Context, *T) error
	create func(*db.Tx, *T) bool
	update func(*db.Tx, *T) bool
	// prefill adjusts a blank document from the query string
	prefill func(*gin.Context, *T)
}

func (e documentEditor[T]) blank(c *gin.Context) any {
	var item T
	e.base(&item).Visible = true
	if e.prefill != nil {
		e.prefill(c, &item)
	}
	return item
}

func (e documentEditor[T]) load(tx *db.Tx, id content.Id) (any, bool) {
	return e.get(tx, id)
}

func (e documentEditor[T]) submit(c *gin.Context, tx *db.Tx, id *content.Id) (any, bool) {
	var item T
	if id != nil {
		var hasErr bool
		if item, hasErr = e.get(tx, *id); hasErr {
			return item, true
		}
	}

	if err := e.fill(c, &item); err != nil {
		tx.PublicError(http.StatusUnprocessableEntity, err)
		return item, true
	}

	if id == nil {
		return item, e.create(tx, &item)
	}

	return item, e.update(tx, &item)
}

var editors = map[services.Collection]editor{
	services.Profiles: documentEditor[content.Profile]{
		base:   func(p *content.Profile) *content.Base { return &p.Base },
		get:    services.GetProfileById,
		fill:   profileForm,
		create: services.CreateProfile,
		update: services.UpdateProfile,
	},
	services.Highlights: documentEditor[content.Highlight]{
		base:   func(h *content.Highlight) *content.Base { return &h.Base },
		get:    services.GetHighlight,
		fill:   highlightForm,
		create: services.CreateHighlight,
		update: services.UpdateHighlight,
	},
	services.Sections: documentEditor[content.Section]{
		base:   func(s *content.Section) *content.Base { return &s.Base },
		get:    services.GetSection,
		fill:   sectionForm,
		create: services.CreateSection,
		update: services.UpdateSection,
		prefill: func(_ *gin.Context, s *content.Section) {
			s.Layout = content.LayoutInline
		},
	},
	services.Entries: documentEditor[content.Entry]{
		base:   func(e *content.Entry) *content.Base { return &e.Base },
		get:    services.GetEntry,
		fill:   entryForm,
		create: services.CreateEntry,
		update: services.UpdateEntry,
		prefill: func(c *gin.Context, e *content.Entry) {
			e.SectionId = c.Query("section")
		},
	},
	services.Featured: documentEditor[content.Featured]{
		base:   func(f *content.Featured) *content.Base { return &f.Base },
		get:    services.GetFeatured,
		fill:   featuredForm,
		create: services.CreateFeatured,
		update: services.UpdateFeatured,
	},
	services.Socials: documentEditor[content.Social]{
		base:   func(s *content.Social) *content.Base { return &s.Base },
		get:    services.GetSocial,
		fill:   socialForm,
		create: services.CreateSocial,
		update: services.UpdateSocial,
	},
}
