package middlewares

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/btmxh/folio/internal/auth"
	"github.com/btmxh/folio/internal/errs"
	"github.com/btmxh/folio/internal/stores"
	"github.com/gin-gonic/gin"
)

const AUTH_COOKIE_NAME = "Authorization"

var unauthorizedError = errors.New("You must be logged in to do this.")

func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenStr, err := ctx.Cookie(AUTH_COOKIE_NAME)
		if err == nil {
			username, err := auth.Verify(tokenStr)
			if err == nil {
				stores.SetUsername(ctx, username)
			} else {
				slog.Warn("Failed to validate token", "error", err)
			}
		} else if err != http.ErrNoCookie {
			slog.Warn("Failed to get auth cookie", "error", err)
		}

		ctx.Next()
	}
}

func SetAuthCookie(c *gin.Context, signedToken string, timeout time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AUTH_COOKIE_NAME, signedToken, int(timeout.Seconds()), "/", "", secure, true)
}

func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AUTH_COOKIE_NAME, "", -1, "/", "", false, true)
}

// MustAuthMiddleware rejects visitors. Page requests are sent to the
// login form, everything else gets a 401.
func MustAuthMiddleware(loginPath string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if stores.IsLoggedIn(ctx) {
			ctx.Next()
			return
		}

		if ctx.Request.Method == http.MethodGet && ctx.GetHeader("HX-Request") != "true" {
			ctx.Redirect(http.StatusSeeOther, loginPath)
			ctx.Abort()
			return
		}

		handler := errs.NewGinErrorHandler(ctx, "Error")
		handler.PublicError(http.StatusUnauthorized, unauthorizedError)
		ctx.Abort()
	}
}
