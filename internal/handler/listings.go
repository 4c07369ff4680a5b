package handler

import (
	"net/http"
	"strconv"
	"strings"

	"accessrealty/internal/model"
	"accessrealty/internal/service"

	"github.com/gin-gonic/gin"
)

// ListingsHandler handles listings-related HTTP requests
type ListingsHandler struct {
	listings     *service.ListingsService
	defaultLimit int
	maxLimit     int
}

// NewListingsHandler creates a new listings handler
func NewListingsHandler(listings *service.ListingsService, defaultLimit, maxLimit int) *ListingsHandler {
	return &ListingsHandler{
		listings:     listings,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// List handles GET /api/v1/listings
//
// A degraded store renders the same empty page a legitimately empty
// result would; the failure is only visible in the logs.
func (h *ListingsHandler) List(c *gin.Context) {
	filter := &model.ListingsFilter{
		Status: c.Query("status"),
	}
	if v := c.Query("office_ids"); v != "" {
		filter.OfficeIDs = strings.Split(v, ",")
	}
	if v := c.Query("agent_key"); v != "" {
		filter.AgentKey = &v
	}
	if v, ok := floatQuery(c, "min_price"); ok {
		filter.MinPrice = &v
	}
	if v, ok := floatQuery(c, "max_price"); ok {
		filter.MaxPrice = &v
	}
	if v, ok := intQuery(c, "min_beds"); ok {
		filter.MinBeds = &v
	}
	if v, ok := floatQuery(c, "min_baths"); ok {
		filter.MinBaths = &v
	}
	if v := c.Query("property_type"); v != "" {
		filter.PropertyType = &v
	}

	limit := h.defaultLimit
	if v, ok := intQuery(c, "limit"); ok && v > 0 {
		limit = v
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}
	offset := 0
	if v, ok := intQuery(c, "offset"); ok && v > 0 {
		offset = v
	}

	page, _ := h.listings.Fetch(c.Request.Context(), filter, limit, offset)
	c.JSON(http.StatusOK, page)
}

// Get handles GET /api/v1/listings/:id
func (h *ListingsHandler) Get(c *gin.Context) {
	listingID := c.Param("id")
	if listingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

	listing, _ := h.listings.FetchOne(c.Request.Context(), listingID)
	if listing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// ClosedDeals handles GET /api/v1/agents/:agent_id/closed-deals
func (h *ListingsHandler) ClosedDeals(c *gin.Context) {
	agentID := c.Param("agent_id")
	if agentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent ID"})
		return
	}

	summary, _ := h.listings.ClosedDeals(c.Request.Context(), agentID)
	c.JSON(http.StatusOK, summary)
}

func floatQuery(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
