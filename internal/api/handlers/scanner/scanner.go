package scanner

import (
	"net/http"
	"regexp"
	"strconv"

	scannerService "nutriplan-api/internal/core/scanner"
	"nutriplan-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var barcodePattern = regexp.MustCompile(`^\d{4,14}$`)

// CompareRequest is the product comparison request body.
type CompareRequest struct {
	Barcodes []string `json:"barcodes" binding:"required"`
}

// Handler serves the food-scanner endpoints.
type Handler struct {
	analyzer *scannerService.Analyzer
	client   *scannerService.Client
}

// NewHandler creates the scanner handler.
func NewHandler(analyzer *scannerService.Analyzer, client *scannerService.Client) *Handler {
	return &Handler{analyzer: analyzer, client: client}
}

// HandleProduct analyzes one product by barcode.
func (h *Handler) HandleProduct(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	barcode := c.Param("barcode")
	if !barcodePattern.MatchString(barcode) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "barcode must be 4-14 digits"})
		return
	}

	analysis, err := h.analyzer.AnalyzeBarcode(c.Request.Context(), barcode)
	if err != nil {
		h.writeFetchError(c, err, requestID, barcode)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// HandleSearch searches the food-facts database by name.
func (h *Handler) HandleSearch(c *gin.Context) {
	query := c.Param("query")
	if len(query) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "query must be at least 2 characters"})
		return
	}

	pageSize := 20
	if raw := c.Query("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 50 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "page_size must be between 1 and 50"})
			return
		}
		pageSize = parsed
	}

	products, total, err := h.client.Search(c.Request.Context(), query, pageSize)
	if err != nil {
		common.LogError("Product search failed",
			zap.Error(err),
			zap.String("query", query),
		)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Product search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":      products,
		"query":         query,
		"total_results": total,
	})
}

// HandleCompare analyzes 2 to 5 products side by side.
func (h *Handler) HandleCompare(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	if len(req.Barcodes) < 2 || len(req.Barcodes) > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "barcodes must contain between 2 and 5 entries"})
		return
	}
	for _, barcode := range req.Barcodes {
		if !barcodePattern.MatchString(barcode) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "barcode must be 4-14 digits"})
			return
		}
	}

	comparison, err := h.analyzer.Compare(c.Request.Context(), req.Barcodes)
	if err != nil {
		h.writeFetchError(c, err, requestID, "")
		return
	}

	c.JSON(http.StatusOK, comparison)
}

// HandleNutritionFacts returns the label-style nutrition record for a barcode.
func (h *Handler) HandleNutritionFacts(c *gin.Context) {
	barcode := c.Param("barcode")
	if !barcodePattern.MatchString(barcode) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "barcode must be 4-14 digits"})
		return
	}

	facts, err := h.analyzer.NutritionFacts(c.Request.Context(), barcode)
	if err != nil {
		h.writeFetchError(c, err, "", barcode)
		return
	}

	c.JSON(http.StatusOK, facts)
}

func (h *Handler) writeFetchError(c *gin.Context, err error, requestID, barcode string) {
	common.LogWarn("Product fetch failed",
		zap.Error(err),
		zap.String("request_id", requestID),
		zap.String("barcode", barcode),
	)

	switch err {
	case common.ErrProductNotFound:
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
	case common.ErrExternalService:
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Food database is unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to analyze product"})
	}
}
