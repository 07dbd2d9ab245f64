package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("GeneratesCorrelationIDIfNotProvided", func(t *testing.T) {
		router := gin.New()
		router.Use(CorrelationID())
		var capturedContextID string
		router.GET("/test", func(c *gin.Context) {
			capturedContextID = c.GetString(CorrelationIDKey)
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		respHeaderID := rr.Header().Get(CorrelationIDHeader)
		assert.NotEmpty(t, respHeaderID)
		_, err := uuid.Parse(respHeaderID)
		assert.NoError(t, err)

		assert.Equal(t, respHeaderID, capturedContextID)
	})

	t.Run("UsesCorrelationIDIfProvided", func(t *testing.T) {
		router := gin.New()
		router.Use(CorrelationID())
		var capturedContextID string
		router.GET("/test", func(c *gin.Context) {
			capturedContextID = c.GetString(CorrelationIDKey)
			c.Status(http.StatusOK)
		})

		providedID := uuid.New().String()
		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(CorrelationIDHeader, providedID)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, providedID, rr.Header().Get(CorrelationIDHeader))
		assert.Equal(t, providedID, capturedContextID)
	})

	t.Run("ReplacesMalformedCorrelationID", func(t *testing.T) {
		router := gin.New()
		router.Use(CorrelationID())
		router.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(CorrelationIDHeader, "not-a-uuid")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		respHeaderID := rr.Header().Get(CorrelationIDHeader)
		assert.NotEqual(t, "not-a-uuid", respHeaderID)
		_, err := uuid.Parse(respHeaderID)
		assert.NoError(t, err)
	})
}

func TestGetCorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ReturnsEmptyWhenUnset", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Equal(t, "", GetCorrelationID(c))
	})

	t.Run("ReturnsStoredID", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(CorrelationIDKey, "some-id")
		assert.Equal(t, "some-id", GetCorrelationID(c))
	})
}
