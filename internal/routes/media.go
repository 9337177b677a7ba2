package routes

import (
	"errors"
	"net/http"

	"github.com/btmxh/folio/internal/errs"
	"github.com/btmxh/folio/internal/html"
	"github.com/btmxh/folio/internal/media"
	"github.com/gin-gonic/gin"
)

var missingMediaURLError = errors.New("Missing media URL.")

var modalTemplate = getTemplate("modal", "templates/modal.tmpl", "templates/media.tmpl")

func MediaRouter(g *gin.RouterGroup) {
	g.GET("/resolve", resolveMedia)
	g.GET("/view", viewMedia)
}

func queryLink(c *gin.Context) (media.Link, bool) {
	link := media.Link{
		URL:   c.Query("url"),
		Kind:  media.ParseKind(c.DefaultQuery("kind", string(media.KindImage))),
		Title: c.Query("title"),
	}

	return link, link.URL != ""
}

func resolveMedia(c *gin.Context) {
	link, ok := queryLink(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": missingMediaURLError.Error()})
		return
	}

	c.JSON(http.StatusOK, media.Resolve(link, media.EmbedOptions{ParentHost: html.ParentHost(c)}))
}

func viewMedia(c *gin.Context) {
	link, ok := queryLink(c)
	if !ok {
		errs.NewGinErrorHandler(c, "Unable to show media").PublicError(http.StatusBadRequest, missingMediaURLError)
		return
	}

	html.RenderGin(modalTemplate, c, "modal", gin.H{
		"Resolved": media.Resolve(link, media.EmbedOptions{ParentHost: html.ParentHost(c)}),
		"Title":    link.Title,
	})
}
