package middlewares

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/btmxh/folio/internal/auth"
	"github.com/btmxh/folio/internal/errs"
	"github.com/btmxh/folio/internal/stores"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, auth.InitJWT("test-secret"))

	router := gin.New()
	router.Use(LogMiddleware(), AuthMiddleware())
	return router
}

func TestAuthMiddleware(t *testing.T) {
	router := newRouter(t)
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, stores.GetUsername(c))
	})

	token, err := auth.Authorize("owner", time.Hour)
	require.NoError(t, err)
	expired, err := auth.Authorize("owner", -time.Hour)
	require.NoError(t, err)

	for name, cookie := range map[string]string{"valid": token, "expired": expired, "garbage": "abc"} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			req.AddCookie(&http.Cookie{Name: AUTH_COOKIE_NAME, Value: cookie})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if name == "valid" {
				assert.Equal(t, "owner", w.Body.String())
			} else {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}

func TestMustAuthMiddleware(t *testing.T) {
	router := newRouter(t)
	admin := router.Group("/admin", MustAuthMiddleware("/login"))
	admin.GET("", func(c *gin.Context) { c.String(http.StatusOK, "dashboard") })
	admin.POST("/save", func(c *gin.Context) { c.String(http.StatusOK, "saved") })

	t.Run("page redirects", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("post is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/save", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotContains(t, w.Body.String(), "saved")
	})

	t.Run("logged in", func(t *testing.T) {
		token, err := auth.Authorize("owner", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/admin/save", nil)
		req.AddCookie(&http.Cookie{Name: AUTH_COOKIE_NAME, Value: token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "saved", w.Body.String())
	})
}

func TestEntityIdMiddleware(t *testing.T) {
	router := newRouter(t)
	router.GET("/items/:id", EntityIdMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, stores.GetEntityId(c).String())
	})

	id := uuid.New()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/"+id.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id.String(), w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestErrorMiddleware(t *testing.T) {
	router := newRouter(t)

	var gotTitle, gotDescription template.HTML
	router.Use(ErrorMiddleware(func(c *gin.Context, title, desc template.HTML) {
		gotTitle, gotDescription = title, desc
	}))
	router.GET("/public", func(c *gin.Context) {
		handler := errs.NewGinErrorHandler(c, "Save failed")
		handler.PrivateError(errors.New("pq: connection refused"))
		handler.PublicError(http.StatusBadRequest, errors.New("Title <b>must</b> be set."))
		handler.PublicError(http.StatusBadRequest, errors.New("Order must be a number."))
	})
	router.GET("/private", func(c *gin.Context) {
		errs.NewGinErrorHandler(c, "Load failed").PrivateError(errors.New("boom"))
	})
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/public", nil))
	assert.Equal(t, template.HTML("Save failed"), gotTitle)
	assert.Equal(t, template.HTML("Title &lt;b&gt;must&lt;/b&gt; be set.<br>Order must be a number."), gotDescription)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, template.HTML("Load failed"), gotTitle)
	assert.Equal(t, template.HTML("Internal server error"), gotDescription)

	gotTitle = ""
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Empty(t, gotTitle)
}
