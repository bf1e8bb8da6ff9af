package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name                 string
		requestCorrelationID string
		expectNewID          bool
	}{
		{
			name:                 "New ID generated when header not present",
			requestCorrelationID: "",
			expectNewID:          true,
		},
		{
			name:                 "Existing ID preserved when header present",
			requestCorrelationID: "test-correlation-id-123",
			expectNewID:          false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CorrelationIDMiddleware())

			var fromContext string
			router.GET("/test", func(c *gin.Context) {
				fromContext = CorrelationIDFromContext(c.Request.Context())
				c.JSON(http.StatusOK, gin.H{"correlation_id": GetCorrelationID(c)})
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestCorrelationID != "" {
				req.Header.Set(constants.CorrelationIDHeader, tt.requestCorrelationID)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			responseCorrelationID := w.Header().Get(constants.CorrelationIDHeader)
			assert.Equal(t, responseCorrelationID, fromContext)
			if tt.expectNewID {
				assert.Len(t, responseCorrelationID, 36)
			} else {
				assert.Equal(t, tt.requestCorrelationID, responseCorrelationID)
			}
		})
	}
}

func TestGetCorrelationID_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetCorrelationID(c))
	assert.Empty(t, CorrelationIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
	assert.NotNil(t, LogWithCorrelationID(WithCorrelationID(c, "abc")))
}
