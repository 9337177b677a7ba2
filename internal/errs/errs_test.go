package errs

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/btmxh/folio/internal/stores"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogErrorHandler(t *testing.T) {
	var handled []error
	handler := NewLogErrorHandler("probing media", func(err error) error {
		handled = append(handled, err)
		return nil
	})

	handler.PrivateError(errors.New("ignored"))
	handler.PublicError(http.StatusBadRequest, errors.New("shown"))
	require.Len(t, handled, 1)
	assert.EqualError(t, handled[0], "shown")

	assert.NotPanics(t, func() {
		NewLogErrorHandler("no callback", nil).PublicError(http.StatusBadRequest, errors.New("x"))
	})
}

func TestGinErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("plain request keeps status", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		NewGinErrorHandler(c, "Save failed").PublicError(http.StatusBadRequest, errors.New("bad"))
		require.Len(t, c.Errors, 1)
		assert.True(t, c.Errors[0].IsType(gin.ErrorTypePublic))
		assert.Equal(t, http.StatusBadRequest, c.Writer.Status())
		assert.Equal(t, template.HTML("Save failed"), stores.GetErrorTitle(c))
	})

	t.Run("htmx request is answered with 200", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
		c.Request.Header.Set("HX-Request", "true")

		NewGinErrorHandler(c, "Save failed").PublicError(http.StatusBadRequest, errors.New("bad"))
		assert.Equal(t, http.StatusOK, c.Writer.Status())
	})
}
