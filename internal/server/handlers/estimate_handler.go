package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/brushworks/paintquote/internal/engine"
	"github.com/brushworks/paintquote/internal/model"
	"github.com/brushworks/paintquote/internal/store"
)

// EstimateHandler serves estimation and catalog endpoints.
type EstimateHandler struct {
	catalogStore *store.CatalogStore
	dealerID     string
	logger       *zap.Logger
}

// NewEstimateHandler constructs the HTTP handler adapter.
func NewEstimateHandler(catalogStore *store.CatalogStore, dealerID string, logger *zap.Logger) *EstimateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EstimateHandler{catalogStore: catalogStore, dealerID: dealerID, logger: logger}
}

// EstimateRequest is the request body for a single estimation pass.
type EstimateRequest struct {
	Configurations []model.AreaConfiguration `json:"configurations" binding:"required"`
	Settings       *model.EstimateSettings   `json:"settings"`
	DealerID       string                    `json:"dealer_id"`
}

// Estimate runs one estimation pass over the submitted configurations.
func (h *EstimateHandler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid estimate payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := engine.ValidateConfigurations(req.Configurations); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	settings := model.DefaultSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}

	dealerID := req.DealerID
	if dealerID == "" {
		dealerID = h.dealerID
	}

	cat, err := h.catalogStore.LoadCatalog(c.Request.Context(), dealerID)
	if err != nil {
		h.logger.Error("failed loading catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load catalog"})
		return
	}

	est := engine.New(cat, settings, h.logger)
	result := est.Estimate(req.Configurations)

	c.JSON(http.StatusOK, result)
}

// CompareRequest is the request body for a scenario comparison.
type CompareRequest struct {
	Configurations []model.AreaConfiguration `json:"configurations" binding:"required"`
	Settings       *model.EstimateSettings   `json:"settings"`
	DealerID       string                    `json:"dealer_id"`
}

// Compare runs the default what-if scenarios over the submitted configurations.
func (h *EstimateHandler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid compare payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := engine.ValidateConfigurations(req.Configurations); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	settings := model.DefaultSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}

	dealerID := req.DealerID
	if dealerID == "" {
		dealerID = h.dealerID
	}

	cat, err := h.catalogStore.LoadCatalog(c.Request.Context(), dealerID)
	if err != nil {
		h.logger.Error("failed loading catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load catalog"})
		return
	}

	scenarios := engine.BuildDefaultScenarios(settings)
	results := engine.CompareScenarios(scenarios, cat, req.Configurations)

	c.JSON(http.StatusOK, gin.H{"scenarios": results})
}

// Catalog returns the catalog snapshot for a dealer.
func (h *EstimateHandler) Catalog(c *gin.Context) {
	dealerID := c.Query("dealer_id")
	if dealerID == "" {
		dealerID = h.dealerID
	}

	cat, err := h.catalogStore.LoadCatalog(c.Request.Context(), dealerID)
	if err != nil {
		h.logger.Error("failed loading catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load catalog"})
		return
	}

	c.JSON(http.StatusOK, cat)
}

// UpsertCoverageRequest adds or updates one coverage rate row.
type UpsertCoverageRequest struct {
	Product  string `json:"product" binding:"required"`
	Coats    int    `json:"coats" binding:"required"`
	Coverage string `json:"coverage" binding:"required"` // e.g. "100-120"
	Unit     string `json:"unit"`
}

// UpsertCoverage stores a coverage rate.
func (h *EstimateHandler) UpsertCoverage(c *gin.Context) {
	var req UpsertCoverageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.catalogStore.UpsertCoverageRate(c.Request.Context(), req.Product, req.Coats, req.Coverage, req.Unit); err != nil {
		h.logger.Error("failed storing coverage rate", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to store coverage rate"})
		return
	}

	c.Status(http.StatusNoContent)
}

// UpsertPriceRequest adds or updates one pack price row.
type UpsertPriceRequest struct {
	DealerID string  `json:"dealer_id"`
	Product  string  `json:"product" binding:"required"`
	Pack     string  `json:"pack" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
}

// UpsertPrice stores a pack price for a dealer.
func (h *EstimateHandler) UpsertPrice(c *gin.Context) {
	var req UpsertPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	dealerID := req.DealerID
	if dealerID == "" {
		dealerID = h.dealerID
	}

	if err := h.catalogStore.UpsertPackPrice(c.Request.Context(), dealerID, req.Product, req.Pack, req.Price); err != nil {
		h.logger.Error("failed storing pack price", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to store pack price"})
		return
	}

	c.Status(http.StatusNoContent)
}
