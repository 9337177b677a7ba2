package middlewares

import (
	"errors"
	"net/http"

	"github.com/btmxh/folio/internal/errs"
	"github.com/btmxh/folio/internal/stores"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var InvalidEntityIdError = errors.New("Invalid document ID.")

// EntityIdMiddleware parses the :id route parameter. Whether the document
// exists is left to the handler.
func EntityIdMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		handler := errs.NewGinErrorHandler(ctx, "Error")
		id := ctx.Param("id")

		if id == "" {
			handler.PublicError(http.StatusUnprocessableEntity, InvalidEntityIdError)
			ctx.Abort()
			return
		}

		parsed, err := uuid.Parse(id)
		if err != nil {
			handler.PrivateError(err)
			handler.PublicError(http.StatusUnprocessableEntity, InvalidEntityIdError)
			ctx.Abort()
			return
		}

		stores.SetEntityId(ctx, parsed)
		ctx.Next()
	}
}
