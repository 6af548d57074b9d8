package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	orderingapp "github.com/pos/backend/internal/application/ordering"
)

// OrderHandler handles the order-building API endpoints. All routes address an
// order by its billing location (mode plus number), never by an internal ID.
type OrderHandler struct {
	BaseHandler
	orderService *orderingapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderingapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes registers order routes on the API group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("/:mode/:number/lines", h.AddLine)
		orders.PATCH("/:mode/:number/lines/:id", h.UpdateLine)
		orders.DELETE("/:mode/:number/lines/:id", h.RemoveLine)
		orders.GET("/:mode/:number/summary", h.Summary)
	}
}

// location parses the mode and number path parameters. Mode validation is left
// to the domain so TABLE and COUNTER stay the only accepted values in one place.
func (h *OrderHandler) location(c *gin.Context) (string, int, bool) {
	mode := c.Param("mode")
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		h.BadRequest(c, "Location number must be an integer")
		return "", 0, false
	}
	return mode, number, true
}

// AddLine adds a menu item to the location's order, opening the order if none
// is active. Adding an item that is already on the order tops up its quantity.
func (h *OrderHandler) AddLine(c *gin.Context) {
	mode, number, ok := h.location(c)
	if !ok {
		return
	}

	var req orderingapp.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orderService.AddLine(c.Request.Context(), mode, number, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// UpdateLine changes the quantity or add-on tier of one line
func (h *OrderHandler) UpdateLine(c *gin.Context) {
	mode, number, ok := h.location(c)
	if !ok {
		return
	}

	var req orderingapp.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orderService.UpdateLine(c.Request.Context(), mode, number, c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RemoveLine removes one line from the location's order
func (h *OrderHandler) RemoveLine(c *gin.Context) {
	mode, number, ok := h.location(c)
	if !ok {
		return
	}

	result, err := h.orderService.RemoveLine(c.Request.Context(), mode, number, c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Summary returns the priced view of the location's active order
func (h *OrderHandler) Summary(c *gin.Context) {
	mode, number, ok := h.location(c)
	if !ok {
		return
	}

	result, err := h.orderService.Summary(c.Request.Context(), mode, number)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
