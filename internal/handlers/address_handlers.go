package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/export"
	"github.com/address-cleanser/address-cleanser/internal/interfaces"
	"github.com/address-cleanser/address-cleanser/internal/middleware"
	"github.com/address-cleanser/address-cleanser/internal/types/api/requests"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	contentTypeCSV   = "text/csv"
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// AddressHandler serves the address processing routes
type AddressHandler struct {
	service      interfaces.AddressService
	maxBatchSize int
}

// NewAddressHandler creates an AddressHandler. maxBatchSize <= 0 disables
// the batch size check.
func NewAddressHandler(service interfaces.AddressService, maxBatchSize int) *AddressHandler {
	return &AddressHandler{
		service:      service,
		maxBatchSize: maxBatchSize,
	}
}

// ValidateAddress godoc
// @Summary      Validate one address
// @Description  Parses, validates and USPS-formats a single address
// @Tags         address
// @Accept       json
// @Produce      json
// @Param        request  body      requests.SingleAddressRequest  true  "Address and options"
// @Success      200      {object}  responses.AddressResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      401      {object}  responses.ErrorResponse
// @Failure      429      {object}  responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /api/v1/validate [post]
func (h *AddressHandler) ValidateAddress(c *gin.Context) {
	var req requests.SingleAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp := h.service.ProcessSingle(c.Request.Context(), *req.Address, req.Options.Resolve())
	c.JSON(http.StatusOK, resp)
}

// BatchProcess godoc
// @Summary      Validate many addresses
// @Description  Processes a list of addresses and returns per-address results with a summary
// @Tags         address
// @Accept       json
// @Produce      json
// @Param        request  body      requests.BatchAddressRequest  true  "Addresses and options"
// @Success      200      {object}  responses.BatchResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      401      {object}  responses.ErrorResponse
// @Failure      429      {object}  responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /api/v1/batch [post]
func (h *AddressHandler) BatchProcess(c *gin.Context) {
	var req requests.BatchAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !h.checkBatchSize(c, len(req.Addresses)) {
		return
	}

	opts := requests.ProcessOptions{
		ReturnParsed:     req.ReturnParsed,
		ReturnConfidence: req.ReturnConfidence,
	}
	c.JSON(http.StatusOK, h.service.ProcessBatch(c.Request.Context(), req.Addresses, opts))
}

// BatchUpload godoc
// @Summary      Validate addresses from a file
// @Description  Processes the "address" column (or the first column) of an uploaded CSV or XLSX file
// @Tags         address
// @Accept       multipart/form-data
// @Produce      json
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        file               formData  file    true   "CSV or XLSX file"
// @Param        output_format      query     string  false  "json, csv or excel"  default(json)
// @Param        return_parsed      query     bool    false  "Include parsed components"
// @Param        return_confidence  query     bool    false  "Include confidence scores"
// @Success      200  {object}  responses.BatchResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      401  {object}  responses.ErrorResponse
// @Failure      429  {object}  responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /api/v1/batch/upload [post]
func (h *AddressHandler) BatchUpload(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("output_format", constants.FormatJSON))
	switch format {
	case constants.FormatJSON, constants.FormatCSV, constants.FormatExcel:
	default:
		sendError(c, http.StatusBadRequest, fmt.Sprintf("Unsupported output format: %s", format), nil)
		return
	}

	opts := requests.DefaultBatchOptions()
	var err error
	if opts.ReturnParsed, err = queryBool(c, "return_parsed"); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid return_parsed value", err)
		return
	}
	if opts.ReturnConfidence, err = queryBool(c, "return_confidence"); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid return_confidence value", err)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		sendError(c, http.StatusBadRequest, "A file must be uploaded in the \"file\" field", err)
		return
	}
	file, err := header.Open()
	if err != nil {
		sendError(c, http.StatusBadRequest, "Could not open uploaded file", err)
		return
	}
	defer file.Close()

	table, err := export.ReadTable(file, header.Filename)
	if err != nil {
		sendError(c, http.StatusBadRequest, fmt.Sprintf("Could not read uploaded file: %s", err), err)
		return
	}
	addresses := table.Values(table.AddressColumn())
	if !h.checkBatchSize(c, len(addresses)) {
		return
	}

	middleware.LogWithCorrelationID(c.Request.Context()).Info("Processing uploaded batch",
		zap.String("filename", header.Filename),
		zap.Int("addresses", len(addresses)),
		zap.String("output_format", format),
	)

	if format != constants.FormatJSON {
		opts.ReturnOriginal = true
	}
	result := h.service.ProcessBatch(c.Request.Context(), addresses, opts)

	var buf bytes.Buffer
	switch format {
	case constants.FormatCSV:
		if err := export.WriteResponsesCSV(&buf, result.Results); err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to write CSV output", err)
			return
		}
		attach(c, "results.csv", contentTypeCSV, buf.Bytes())
	case constants.FormatExcel:
		if err := export.WriteResponsesExcel(&buf, result.Results); err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to write Excel output", err)
			return
		}
		attach(c, "results.xlsx", contentTypeExcel, buf.Bytes())
	default:
		c.JSON(http.StatusOK, result)
	}
}

// GetStats godoc
// @Summary      Processing statistics
// @Description  Returns counters accumulated since the service started
// @Tags         address
// @Produce      json
// @Success      200  {object}  responses.StatsResponse
// @Failure      401  {object}  responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /api/v1/stats [get]
func (h *AddressHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stats())
}

func (h *AddressHandler) checkBatchSize(c *gin.Context, n int) bool {
	if h.maxBatchSize > 0 && n > h.maxBatchSize {
		sendError(c, http.StatusBadRequest,
			fmt.Sprintf("Batch size %d exceeds the maximum of %d addresses", n, h.maxBatchSize), nil)
		return false
	}
	return true
}

func queryBool(c *gin.Context, key string) (bool, error) {
	v := c.Query(key)
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

func attach(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}
