package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mostface/internal/models"
	"mostface/internal/store"
)

// MarketplaceHandler manages the marketplace screen. Listing preconditions
// (title, non-negative price, image) are validated here; the store does not
// validate.
type MarketplaceHandler struct {
	store *store.Store
}

// NewMarketplaceHandler builds a MarketplaceHandler.
func NewMarketplaceHandler(st *store.Store) *MarketplaceHandler {
	return &MarketplaceHandler{store: st}
}

// ListItems returns listings, newest first.
func (h *MarketplaceHandler) ListItems(c *gin.Context) {
	state := h.store.GetState()
	c.JSON(http.StatusOK, gin.H{"items": state.Items})
}

// CreateItem adds an immutable listing sold by the current user.
func (h *MarketplaceHandler) CreateItem(c *gin.Context) {
	var req struct {
		Title       string  `json:"title" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price" binding:"gte=0"`
		Image       string  `json:"image" binding:"required"`
		Location    string  `json:"location"`
		Condition   string  `json:"condition"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := h.store.GetState()
	seller := *state.CurrentUser

	id := h.store.NextID()
	item := models.MarketplaceItem{
		ID:          id,
		SellerID:    seller.ID,
		Seller:      seller.Snapshot(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Location:    req.Location,
		Condition:   req.Condition,
		CreatedAt:   store.Timestamp(id),
	}

	h.store.Dispatch(c.Request.Context(), store.AddMarketplaceItem{Item: item})
	c.JSON(http.StatusCreated, item)
}
