package routes

import (
	"html/template"

	"github.com/btmxh/folio/internal/html"
	"github.com/gin-gonic/gin"
)

func Toast(c *gin.Context, kind html.ToastKind, title template.HTML, description template.HTML) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Header("Hx-Reswap", "afterbegin")
	c.Header("Hx-Retarget", ".toast-notification-box")
	if err := html.RenderToast(c.Writer, kind, title, description); err != nil {
		c.Error(err).SetType(gin.ErrorTypeRender)
	}
}
