package handler

import (
	"github.com/gin-gonic/gin"
	printingapp "github.com/pos/backend/internal/application/printing"
)

// PrintHandler handles print run and delivery audit endpoints
type PrintHandler struct {
	BaseHandler
	orchestrator *printingapp.PrintOrchestrator
}

// NewPrintHandler creates a new PrintHandler
func NewPrintHandler(orchestrator *printingapp.PrintOrchestrator) *PrintHandler {
	return &PrintHandler{orchestrator: orchestrator}
}

// RegisterRoutes registers print routes on the API group
func (h *PrintHandler) RegisterRoutes(rg *gin.RouterGroup) {
	print := rg.Group("/print")
	{
		print.POST("/orders", h.PrintOrder)
		print.GET("/deliveries", h.ListDeliveries)
	}
}

// PrintOrder runs the full print pipeline for a location's order: one kitchen
// ticket per routing station, then the customer bill. A 201 response does not
// mean every document reached paper; callers must inspect the per-document
// outcomes and the all_delivered flag.
func (h *PrintHandler) PrintOrder(c *gin.Context) {
	var req printingapp.PrintOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orchestrator.PrintOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListDeliveries pages through the delivery audit trail, newest first
func (h *PrintHandler) ListDeliveries(c *gin.Context) {
	var req printingapp.ListRecordsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orchestrator.ListRecords(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.Size)
}
