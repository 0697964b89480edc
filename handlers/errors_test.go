package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestJSONErrorHandler(t *testing.T) {
	t.Run("HTTPError", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/add", nil)

		JSONErrorHandler(echo.NewHTTPError(http.StatusBadRequest, "bad input"), c)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"bad input"}`, rec.Body.String())
	})

	t.Run("Not found", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/nowhere", nil)

		JSONErrorHandler(echo.ErrNotFound, c)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Not Found. Use path add or sub"}`, rec.Body.String())
	})

	t.Run("Unexpected error", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/add", nil)

		JSONErrorHandler(errors.New("boom"), c)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	})

	t.Run("HEAD has no body", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodHead, "/add", nil)

		JSONErrorHandler(echo.NewHTTPError(http.StatusBadRequest, "bad input"), c)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("Committed response is left alone", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/add", nil)
		assert.NoError(t, c.String(http.StatusOK, "done"))

		JSONErrorHandler(errors.New("late"), c)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "done", rec.Body.String())
	})
}
