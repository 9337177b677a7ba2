package routes

import (
	"github.com/btmxh/folio/internal/db"
	"github.com/btmxh/folio/internal/errs"
	"github.com/btmxh/folio/internal/html"
	"github.com/btmxh/folio/internal/services"
	"github.com/gin-gonic/gin"
)

var homeTemplate = getTemplate("home", "templates/home.tmpl", "templates/media.tmpl")

func HomeRouter(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Unable to load portfolio")
	tx := db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	portfolio, hasErr := services.LoadPortfolio(tx, true)
	if hasErr || tx.Commit() {
		return
	}

	html.RenderGin(homeTemplate, c, "layout", gin.H{"Portfolio": &portfolio})
}
