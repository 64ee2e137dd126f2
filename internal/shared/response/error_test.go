package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/uniedit/landing/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var errSomething = errors.New("something went wrong")

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleError(t *testing.T) {
	mappings := []ErrorMapping{
		{Err: errSomething, Status: http.StatusConflict, Code: "CONFLICT"},
	}

	t.Run("maps known error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		handled := HandleError(c, errSomething, mappings)

		assert.True(t, handled)
		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "CONFLICT", resp.Code)
		assert.Equal(t, "something went wrong", resp.Error)
	})

	t.Run("leaves unknown error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		assert.False(t, HandleError(c, errors.New("other"), mappings))
	})
}

func TestHandleErrorWithDefault(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleErrorWithDefault(c, errors.New("dial tcp 10.0.0.1:5432: refused"), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "internal error", resp.Error)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}

func TestServiceUnavailable(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ServiceUnavailable(c, map[string]string{"database": "down"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"service unavailable","code":"UNAVAILABLE","details":{"database":"down"}}`, w.Body.String())
}

func TestAbortWithError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "app error keeps code and message",
			err:    apperrors.RateLimited(""),
			status: http.StatusTooManyRequests,
			body:   `{"error":"too many requests","code":"RATE_LIMIT_EXCEEDED"}`,
		},
		{
			name:   "internal app error hides cause",
			err:    apperrors.Internal("", errors.New("pq: password authentication failed")),
			status: http.StatusInternalServerError,
			body:   `{"error":"internal error","code":"INTERNAL_ERROR"}`,
		},
		{
			name:   "wrapped sentinel uses its status",
			err:    fmt.Errorf("ping redis: %w", apperrors.ErrUnavailable),
			status: http.StatusServiceUnavailable,
			body:   `{"error":"service unavailable"}`,
		},
		{
			name:   "plain error is generic",
			err:    errors.New("dial tcp 10.0.0.1:5432: refused"),
			status: http.StatusInternalServerError,
			body:   `{"error":"internal error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			AbortWithError(c, tt.err, nil)

			assert.True(t, c.IsAborted())
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}
