package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("RecoversFromPanicAndReturns500", func(t *testing.T) {
		buf, logger := captureLogs()

		router := gin.New()
		router.Use(Recovery(logger))
		router.GET("/panic", func(c *gin.Context) {
			panic("something went terribly wrong")
		})

		req, _ := http.NewRequest(http.MethodGet, "/panic", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		errBody, ok := body["error"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", errBody["code"])
		assert.NotContains(t, rr.Body.String(), "terribly wrong")

		entry := lastLogLine(t, buf)
		assert.Equal(t, "Panic recovered", entry["msg"])
		assert.Contains(t, entry["error"], "terribly wrong")
		assert.NotEmpty(t, entry["stack"])
	})

	t.Run("IncludesCorrelationIDInResponse", func(t *testing.T) {
		_, logger := captureLogs()

		router := gin.New()
		router.Use(CorrelationID(), Recovery(logger))
		router.GET("/panic", func(c *gin.Context) {
			panic("boom")
		})

		providedID := uuid.New().String()
		req, _ := http.NewRequest(http.MethodGet, "/panic", nil)
		req.Header.Set(CorrelationIDHeader, providedID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, providedID, body["correlation_id"])
	})

	t.Run("PassesThroughWithoutPanic", func(t *testing.T) {
		_, logger := captureLogs()

		router := gin.New()
		router.Use(Recovery(logger))
		router.GET("/ok", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
