package handlers

import (
	"github.com/address-cleanser/address-cleanser/internal/logger"
	"github.com/address-cleanser/address-cleanser/internal/middleware"
	"github.com/address-cleanser/address-cleanser/internal/types/api/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.Int("status", statusCode),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", middleware.GetCorrelationID(c)),
	)
	c.AbortWithStatusJSON(statusCode, responses.ErrorResponse{Error: message})
}
