package routes

import (
	"html/template"
	"net/http"

	"github.com/btmxh/folio/internal/auth"
	"github.com/btmxh/folio/internal/html"
	"github.com/btmxh/folio/internal/media"
	"github.com/btmxh/folio/internal/middlewares"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

type Options struct {
	GzipMode         int
	Admin            *auth.Admin
	Prober           *media.Prober
	ProbeConcurrency int
	SecureCookies    bool
}

func getTemplate(name string, paths ...string) *template.Template {
	return html.GetTemplate(name, paths...)
}

func CreateMainRouter(opts Options) http.Handler {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.LogMiddleware())

	if opts.GzipMode != gzip.NoCompression {
		router.Use(gzip.Gzip(opts.GzipMode))
	}
	router.Use(middlewares.AuthMiddleware())
	router.Use(middlewares.ErrorMiddleware(renderError))

	router.GET("/", HomeRouter)
	MediaRouter(router.Group("/media"))

	admin := router.Group("/admin")
	AuthRouter(admin, opts)
	AdminRouter(admin.Group("", middlewares.MustAuthMiddleware(loginPath)), opts)

	router.StaticFS("/static", http.FS(html.StaticFS()))
	return router
}

func isHtmx(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// renderError shows the collected errors as a toast for htmx requests and
// as an error page otherwise, unless the handler already wrote a body.
func renderError(c *gin.Context, title, description template.HTML) {
	if isHtmx(c) {
		Toast(c, html.ToastError, title, description)
		return
	}

	if c.Writer.Written() {
		return
	}

	html.RenderError(c, title, description)
}
