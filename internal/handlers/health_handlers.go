package handlers

import (
	"net/http"

	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/types/api/responses"
	"github.com/gin-gonic/gin"
)

const apiDescription = "REST API for parsing, validating, and formatting US addresses"

// HealthHandler serves the unauthenticated informational routes
type HealthHandler struct {
	version     string
	authEnabled bool
}

// NewHealthHandler creates a HealthHandler. authEnabled only changes what the
// root route advertises.
func NewHealthHandler(version string, authEnabled bool) *HealthHandler {
	return &HealthHandler{version: version, authEnabled: authEnabled}
}

// Root godoc
// @Summary      API information
// @Description  Returns the API name, version and where to find docs and health
// @Tags         health
// @Produce      json
// @Success      200  {object}  responses.APIInfoResponse
// @Router       / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	authentication := "none"
	if h.authEnabled {
		authentication = constants.APIKeyHeader + " header"
	}
	c.JSON(http.StatusOK, responses.APIInfoResponse{
		Name:           constants.APITitle,
		Version:        h.version,
		Description:    apiDescription,
		Docs:           constants.SwaggerPath + "/index.html",
		Health:         constants.HealthPath,
		Authentication: authentication,
	})
}

// Health godoc
// @Summary      Health check
// @Description  Checks if the server is running
// @Tags         health
// @Produce      json
// @Success      200  {object}  responses.HealthResponse
// @Router       /api/v1/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthResponse{
		Status:  "healthy",
		Version: h.version,
	})
}
