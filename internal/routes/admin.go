package routes

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/btmxh/folio/internal/content"
	"github.com/btmxh/folio/internal/db"
	"github.com/btmxh/folio/internal/errs"
	"github.com/btmxh/folio/internal/html"
	"github.com/btmxh/folio/internal/middlewares"
	"github.com/btmxh/folio/internal/services"
	"github.com/btmxh/folio/internal/stores"
	"github.com/gin-gonic/gin"
)

var invalidCollectionError = errors.New("Invalid collection.")
var invalidOrderError = errors.New("Order must be a whole number.")

var dashboardTemplate = getTemplate("dashboard", "templates/admin/dashboard.tmpl", "templates/admin/common.tmpl")
var formTemplate = getTemplate("form", "templates/admin/form.tmpl")
var entriesTemplate = getTemplate("entries", "templates/admin/entries.tmpl", "templates/admin/common.tmpl")

func AdminRouter(g *gin.RouterGroup, opts Options) {
	g.GET("", dashboard)
	g.GET("/entries", sectionEntries)
	g.GET("/new/:collection", newDocumentForm)
	g.POST("/new/:collection", createDocument)

	withId := g.Group("", middlewares.EntityIdMiddleware())
	withId.GET("/edit/:collection/:id", editDocumentForm)
	withId.POST("/edit/:collection/:id", updateDocument)
	withId.POST("/visibility/:collection/:id", setVisibility)
	withId.POST("/order/:collection/:id", setOrder)
	withId.POST("/delete/:collection/:id", deleteDocument)

	MediaHealthRouter(g.Group("/media"), opts)
}

func collectionParam(c *gin.Context, handler errs.ErrorHandler) (services.Collection, editor, bool) {
	collection, err := services.ParseCollection(c.Param("collection"))
	if err != nil {
		handler.PrivateError(err)
		handler.PublicError(http.StatusNotFound, invalidCollectionError)
		return "", nil, false
	}

	return collection, editors[collection], true
}

func dashboard(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Unable to load dashboard")
	tx := db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	portfolio, hasErr := services.LoadPortfolio(tx, false)
	if hasErr || tx.Commit() {
		return
	}

	html.RenderGin(dashboardTemplate, c, "layout", gin.H{"Portfolio": &portfolio})
}

func sectionEntries(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Unable to load entries")
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	tx := db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	section, hasErr := services.GetSectionByType(tx, c.Query("section"))
	if hasErr {
		return
	}

	page, hasErr := services.ListSectionEntries(tx, section.Type, offset)
	if hasErr || tx.Commit() {
		return
	}

	html.RenderGin(entriesTemplate, c, "layout", gin.H{"Section": section, "Page": page})
}

// renderForm shows the edit form of collection. Public errors already
// reported on c are shown above the form.
func renderForm(c *gin.Context, tx *db.Tx, collection services.Collection, item any, action string, isNew bool) {
	args := gin.H{
		"Collection": collection,
		"Item":       item,
		"Action":     action,
		"IsNew":      isNew,
	}

	if messages := c.Errors.ByType(gin.ErrorTypePublic); len(messages) > 0 {
		var lines []string
		for _, message := range messages {
			lines = append(lines, message.Error())
		}
		args["Error"] = strings.Join(lines, " ")
	}

	if entry, ok := item.(content.Entry); ok {
		args["Fields"] = entryFields(&entry)
		sections, hasErr := services.ListSections(tx, false)
		if hasErr {
			return
		}
		args["Sections"] = sections
	}

	html.RenderGin(formTemplate, c, "layout", args)
}

func newDocumentForm(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Unable to show form")
	collection, editor, ok := collectionParam(c, handler)
	if !ok {
		return
	}

	tx := db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	renderForm(c, tx, collection, editor.blank(c), "/admin/new/"+string(collection), true)
}

func createDocument(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Unable to save")
	collection, editor, ok := collectionParam(c, handler)
	if !ok {
		return
	}

	tx := db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	item, hasErr := editor.submit(c, tx, nil)
	if hasErr {
		tx.Rollback()
		formTx := db.BeginTx(c.Request.Context(), handler)
		if formTx != nil {
			defer formTx.Rollback()
			renderForm(c, formTx, collection, item, "/admin/new/"+string(collection), true)
		}
		return
	}

	if tx.Commit() {
		return
	}

	redirectAfterSave(c, item)
}

func editDocumentForm(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Unable to show form")
	collection, editor, ok := collectionParam(c, handler)
	if !ok {
		return
	}

	id := stores.GetEntityId(c)
	tx := db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	item, hasErr := editor.load(tx, id)
	if hasErr {
		return
	}

	renderForm(c, tx, collection, item, editPath(collection, id), false)
}

func updateDocument(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Unable to save")
	collection, editor, ok := collectionParam(c, handler)
	if !ok {
		return
	}

	id := stores.GetEntityId(c)
	tx := db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	item, hasErr := editor.submit(c, tx, &id)
	if hasErr {
		if !errors.Is(c.Errors.Last().Err, services.DocumentNotFoundError) {
			tx.Rollback()
			formTx := db.BeginTx(c.Request.Context(), handler)
			if formTx != nil {
				defer formTx.Rollback()
				renderForm(c, formTx, collection, item, editPath(collection, id), false)
			}
		}
		return
	}

	if tx.Commit() {
		return
	}

	redirectAfterSave(c, item)
}

func editPath(collection services.Collection, id content.Id) string {
	return "/admin/edit/" + string(collection) + "/" + id.String()
}

func redirectAfterSave(c *gin.Context, item any) {
	if entry, ok := item.(content.Entry); ok {
		c.Redirect(http.StatusSeeOther, "/admin/entries?section="+url.QueryEscape(entry.SectionId))
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

func setVisibility(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Unable to change visibility")
	collection, _, ok := collectionParam(c, handler)
	if !ok {
		return
	}

	tx := db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	if services.SetVisible(tx, collection, stores.GetEntityId(c), c.PostForm("visible") == "true") || tx.Commit() {
		return
	}

	redirectBack(c)
}

func setOrder(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Unable to reorder")
	collection, _, ok := collectionParam(c, handler)
	if !ok {
		return
	}

	order, err := strconv.Atoi(strings.TrimSpace(c.PostForm("order")))
	if err != nil {
		handler.PublicError(http.StatusUnprocessableEntity, invalidOrderError)
		return
	}

	tx := db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	if services.SetOrder(tx, collection, stores.GetEntityId(c), order) || tx.Commit() {
		return
	}

	redirectBack(c)
}

func deleteDocument(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Unable to delete")
	collection, _, ok := collectionParam(c, handler)
	if !ok {
		return
	}

	tx := db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	if services.DeleteDocument(tx, collection, stores.GetEntityId(c)) || tx.Commit() {
		return
	}

	redirectBack(c)
}

// redirectBack returns to the admin page the request came from.
func redirectBack(c *gin.Context) {
	target := "/admin"
	if referer, err := url.Parse(c.Request.Referer()); err == nil && strings.HasPrefix(referer.Path, "/admin") {
		target = referer.Path
		if referer.RawQuery != "" {
			target += "?" + referer.RawQuery
		}
	}

	c.Redirect(http.StatusSeeOther, target)
}
