package middlewares

import (
	"html/template"
	"log/slog"
	"strings"

	"github.com/btmxh/folio/internal/html"
	"github.com/btmxh/folio/internal/stores"
	"github.com/gin-gonic/gin"
)

// ErrorMiddleware hands the public errors collected while handling the
// request to callback, once the handler is done.
func ErrorMiddleware(callback func(c *gin.Context, title, desc template.HTML)) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		title := stores.GetErrorTitle(c)
		slog.Warn("Error handling request", "title", title, "errors", c.Errors.String())

		var descriptions []string
		for _, err := range c.Errors {
			if err.Type == gin.ErrorTypePublic {
				descriptions = append(descriptions, string(html.StringAsHTML(err.Error())))
			}
		}

		var description template.HTML
		if len(descriptions) > 0 {
			description = template.HTML(strings.Join(descriptions, "<br>"))
		} else {
			description = template.HTML("Internal server error")
		}

		callback(c, title, description)
	}
}
