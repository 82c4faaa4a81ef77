package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/idforge/credentials/internal/errors"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, recorder
}

func decodeErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response
}

// TestHandleErrorGin tests the domain error to HTTP status mapping.
func TestHandleErrorGin(t *testing.T) {
	t.Run("LimitError_Conflict", func(t *testing.T) {
		c, recorder := newTestContext(t)

		HandleErrorGin(c, apperrors.NewLimitError("client secret", 3, 3), nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		response := decodeErrorResponse(t, recorder)
		assert.Equal(t, "limit_exceeded", response.Error)
		assert.Contains(t, response.Message, "3 of 3")
	})

	t.Run("NotFound", func(t *testing.T) {
		c, recorder := newTestContext(t)

		HandleErrorGin(c, apperrors.Wrap(apperrors.ErrNotFound, "application not found"), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "not_found", decodeErrorResponse(t, recorder).Error)
	})

	t.Run("Conflict", func(t *testing.T) {
		c, recorder := newTestContext(t)

		HandleErrorGin(c, apperrors.Wrap(apperrors.ErrConflict, "duplicate certificate"), nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, "conflict", decodeErrorResponse(t, recorder).Error)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		c, recorder := newTestContext(t)

		HandleErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "name is required"), nil)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		response := decodeErrorResponse(t, recorder)
		assert.Equal(t, "invalid_input", response.Error)
		assert.Contains(t, response.Message, "name is required")
	})

	t.Run("Unauthorized", func(t *testing.T) {
		c, recorder := newTestContext(t)

		HandleErrorGin(c, apperrors.ErrUnauthorized, nil)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Forbidden", func(t *testing.T) {
		c, recorder := newTestContext(t)

		HandleErrorGin(c, apperrors.ErrForbidden, nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("UnknownError_InternalWithoutDetails", func(t *testing.T) {
		c, recorder := newTestContext(t)

		HandleErrorGin(c, assert.AnError, nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		response := decodeErrorResponse(t, recorder)
		assert.Equal(t, "internal_error", response.Error)
		assert.NotContains(t, response.Message, assert.AnError.Error())
	})
}

// TestParsePagination tests offset and limit query parsing.
func TestParsePagination(t *testing.T) {
	newContextWithQuery := func(t *testing.T, query string) *gin.Context {
		t.Helper()
		gin.SetMode(gin.TestMode)
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
		return c
	}

	t.Run("Success_Defaults", func(t *testing.T) {
		offset, limit, err := ParsePagination(newContextWithQuery(t, ""))

		require.NoError(t, err)
		assert.Equal(t, 0, offset)
		assert.Equal(t, 50, limit)
	})

	t.Run("Success_Explicit", func(t *testing.T) {
		offset, limit, err := ParsePagination(newContextWithQuery(t, "offset=20&limit=10"))

		require.NoError(t, err)
		assert.Equal(t, 20, offset)
		assert.Equal(t, 10, limit)
	})

	t.Run("Error_NegativeOffset", func(t *testing.T) {
		_, _, err := ParsePagination(newContextWithQuery(t, "offset=-1"))
		assert.Error(t, err)
	})

	t.Run("Error_LimitTooLarge", func(t *testing.T) {
		_, _, err := ParsePagination(newContextWithQuery(t, "limit=101"))
		assert.Error(t, err)
	})

	t.Run("Error_NonNumeric", func(t *testing.T) {
		_, _, err := ParsePagination(newContextWithQuery(t, "limit=ten"))
		assert.Error(t, err)
	})
}
