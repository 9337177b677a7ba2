package routes

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/btmxh/folio/internal/auth"
	"github.com/btmxh/folio/internal/html"
	"github.com/btmxh/folio/internal/middlewares"
	"github.com/btmxh/folio/internal/stores"
	"github.com/gin-gonic/gin"
)

const loginPath = "/admin/login"

var emptyCredentialsError = errors.New("Username and password must not be empty.")
var loginFailedError = errors.New("Unable to log in. Please try again later.")

var loginTemplate = getTemplate("login", "templates/admin/login.tmpl")

func AuthRouter(g *gin.RouterGroup, opts Options) {
	g.GET("/login", func(c *gin.Context) {
		if stores.IsLoggedIn(c) {
			c.Redirect(http.StatusSeeOther, "/admin")
			return
		}

		html.RenderGin(loginTemplate, c, "layout", gin.H{})
	})
	g.POST("/login", login(opts))
	g.POST("/logout", logout)
}

func login(opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.PostForm("username"))
		password := c.PostForm("password")

		fail := func(status int, err error) {
			c.Status(status)
			html.RenderGin(loginTemplate, c, "layout", gin.H{"Error": err.Error()})
		}

		if username == "" || password == "" {
			fail(http.StatusUnprocessableEntity, emptyCredentialsError)
			return
		}

		signedToken, err := opts.Admin.LogIn(username, password)
		if errors.Is(err, auth.WrongCredentialsError) {
			fail(http.StatusUnauthorized, err)
			return
		} else if err != nil {
			slog.Warn("Admin login failed", "username", username, "err", err)
			fail(http.StatusInternalServerError, loginFailedError)
			return
		}

		middlewares.SetAuthCookie(c, signedToken, auth.SessionTimeout, opts.SecureCookies)
		c.Redirect(http.StatusSeeOther, "/admin")
	}
}

func logout(c *gin.Context) {
	middlewares.Logout(c)
	c.Redirect(http.StatusSeeOther, "/")
}
