package routes

import (
	"github.com/btmxh/folio/internal/db"
	"github.com/btmxh/folio/internal/errs"
	"github.com/btmxh/folio/internal/html"
	"github.com/btmxh/folio/internal/media"
	"github.com/btmxh/folio/internal/services"
	"github.com/gin-gonic/gin"
)

var healthTemplate = getTemplate("health", "templates/admin/health.tmpl")

type HealthReport struct {
	Source string
	Result media.ProbeResult
}

func MediaHealthRouter(g *gin.RouterGroup, opts Options) {
	g.GET("/health", func(c *gin.Context) {
		handler := errs.NewGinErrorHandler(c, "Unable to check media")
		tx := db.BeginTx(c.Request.Context(), handler)
		if tx == nil {
			return
		}
		defer tx.Rollback()

		portfolio, hasErr := services.LoadPortfolio(tx, false)
		if hasErr || tx.Commit() {
			return
		}

		refs := portfolio.Images()
		urls := make([]string, len(refs))
		for i, ref := range refs {
			urls[i] = ref.URL
		}

		results := opts.Prober.ProbeAll(c.Request.Context(), urls, opts.ProbeConcurrency)
		reports := make([]HealthReport, len(refs))
		loaded := 0
		for i, result := range results {
			reports[i] = HealthReport{Source: refs[i].Source, Result: result}
			if result.Loaded != "" {
				loaded++
			}
		}

		html.RenderGin(healthTemplate, c, "layout", gin.H{"Reports": reports, "Loaded": loaded})
	})
}
