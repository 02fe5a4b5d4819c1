package handlers

import (
	"errors"
	"net/http"

	"furnico-backend/cart"
	"furnico-backend/dtos"
	"furnico-backend/middleware"
	"furnico-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartHandler struct {
	Engine *cart.Engine
}

// respondCartError maps engine errors to HTTP statuses. notFound is the
// message for ErrNotFound, failure the message for anything unexpected.
func respondCartError(c *gin.Context, err error, notFound, failure string) {
	switch {
	case errors.Is(err, cart.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
	case errors.Is(err, cart.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, cart.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this cart item"})
	default:
		zap.L().Error(failure, zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failure})
	}
}

// respondWithCart answers a successful mutation with the owner's whole cart.
func (h *CartHandler) respondWithCart(c *gin.Context, owner uuid.UUID, message string, line *cart.Line) {
	current, err := h.Engine.GetCart(c.Request.Context(), owner)
	if err != nil {
		respondCartError(c, err, "Cart not found", "Failed to fetch cart")
		return
	}
	c.JSON(http.StatusOK, dtos.CartMutationResponse{
		Message: message,
		Line:    line,
		Cart:    dtos.NewCartResponse(current),
	})
}

func cartLineID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	current, err := h.Engine.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondCartError(c, err, "Cart not found", "Failed to fetch cart")
		return
	}

	c.JSON(http.StatusOK, dtos.NewCartResponse(current))
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dtos.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	line, err := h.Engine.AddItem(c.Request.Context(), userID, req.ProductUUID(), req.Quantity)
	if err != nil {
		respondCartError(c, err, "Product not found", "Failed to add product to cart")
		return
	}

	h.respondWithCart(c, userID, "Product added to cart!", &line)
}

func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	lineID, ok := cartLineID(c)
	if !ok {
		return
	}

	var req dtos.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	line, err := h.Engine.UpdateQuantity(c.Request.Context(), userID, lineID, req.Quantity)
	if err != nil {
		respondCartError(c, err, "Cart item not found", "Failed to update cart item")
		return
	}

	h.respondWithCart(c, userID, "Cart updated!", &line)
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	lineID, ok := cartLineID(c)
	if !ok {
		return
	}

	if err := h.Engine.RemoveItem(c.Request.Context(), userID, lineID); err != nil {
		respondCartError(c, err, "Cart item not found", "Failed to remove item from cart")
		return
	}

	h.respondWithCart(c, userID, "Item removed from cart!", nil)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Engine.ClearCart(c.Request.Context(), userID); err != nil {
		respondCartError(c, err, "Cart not found", "Failed to clear cart")
		return
	}

	h.respondWithCart(c, userID, "Cart cleared!", nil)
}
