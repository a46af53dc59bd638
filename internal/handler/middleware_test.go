package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/customers-service/internal/handler"
	"github.com/maxviazov/customers-service/pkg/response"
)

func middlewareEngine(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zerolog.New(buf)
	r := gin.New()
	r.Use(handler.RequestID(), handler.AccessLog(logger), handler.Recovery(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	return r
}

func TestRequestID_GeneratedWhenMissing(t *testing.T) {
	var buf bytes.Buffer
	r := middlewareEngine(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	id := w.Header().Get(handler.RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err, "generated id should be a uuid")
	assert.Contains(t, buf.String(), id)
}

func TestRequestID_KeepsClientValue(t *testing.T) {
	var buf bytes.Buffer
	r := middlewareEngine(&buf)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(handler.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(handler.RequestIDHeader))
}

func TestRecovery_ReturnsErrorEnvelope(t *testing.T) {
	var buf bytes.Buffer
	r := middlewareEngine(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body response.ErrorPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, response.MsgInternal, body.Error)
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestAccessLog_LevelFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	r := middlewareEngine(&buf)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "warn", rec["level"])
	assert.EqualValues(t, http.StatusNotFound, rec["status"])
	assert.Equal(t, "/missing", rec["path"])
}
