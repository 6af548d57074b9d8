package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	printingapp "github.com/pos/backend/internal/application/printing"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/ordering"
	"github.com/pos/backend/internal/domain/printing"
	"github.com/pos/backend/internal/domain/shared/valueobject"
)

func newPrintRouter(t *testing.T) (*gin.Engine, *stubOrderRepo, *stubMenuRepo, *stubRecordRepo) {
	t.Helper()
	orderRepo := newStubOrderRepo()
	menuRepo := menuFixture(t)
	recordRepo := &stubRecordRepo{}

	renderer, err := printing.NewRenderer(printing.ProfileNarrow, nil)
	require.NoError(t, err)

	cfg := printingapp.PrintOrchestratorConfig{
		Profile: printing.RestaurantProfile{
			Name:         "Hotel Udupi Grand",
			AddressLines: []string{"12 MG Road, Bengaluru"},
		},
		ServiceFeePercent: decimal.NewFromInt(10),
		BillPrefix:        "UDP",
	}
	orchestrator := printingapp.NewPrintOrchestrator(
		orderRepo, menuRepo, recordRepo, &stubPipeline{}, renderer, nil, cfg, nil)

	router := gin.New()
	api := router.Group("/api/v1")
	NewPrintHandler(orchestrator).RegisterRoutes(api)
	return router, orderRepo, menuRepo, recordRepo
}

func seedOrder(t *testing.T, orderRepo *stubOrderRepo, menuRepo *stubMenuRepo) {
	t.Helper()
	location, err := ordering.NewBillingLocation(ordering.ModeTable, 5)
	require.NoError(t, err)
	order, err := ordering.NewOrder(location)
	require.NoError(t, err)
	for i := range menuRepo.items {
		item := menuRepo.items[i]
		line, err := ordering.NewOrderLine(item.ID, item.Name, item.Price, 1)
		require.NoError(t, err)
		require.NoError(t, order.AddLine(line))
	}
	require.NoError(t, orderRepo.Save(context.Background(), order))
}

func TestPrintHandler_PrintOrder(t *testing.T) {
	router, orderRepo, menuRepo, recordRepo := newPrintRouter(t)
	seedOrder(t, orderRepo, menuRepo)

	payload, err := json.Marshal(gin.H{"mode": "TABLE", "number": 5})
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/print/orders", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeResponse(t, w)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "Table 5", data["location"])
	assert.Equal(t, true, data["all_delivered"])

	// one ticket per station plus the bill
	docs := data["documents"].([]any)
	assert.Len(t, docs, 3)
	assert.Len(t, recordRepo.saved, 3)

	// bill delivered, so the order was closed out
	assert.Equal(t, []string{"TABLE:5"}, orderRepo.deleted)
}

func TestPrintHandler_PrintOrder_NoActiveOrder(t *testing.T) {
	router, _, _, _ := newPrintRouter(t)

	payload, err := json.Marshal(gin.H{"mode": "TABLE", "number": 7})
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/print/orders", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// an empty location is benign, not an error in the order lookup
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "NOTHING_TO_PRINT", resp.Error.Code)
}

func TestPrintHandler_PrintOrder_BadMode(t *testing.T) {
	router, _, _, _ := newPrintRouter(t)

	payload, err := json.Marshal(gin.H{"mode": "BOOTH", "number": 5})
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/print/orders", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// binding rejects the mode before the service is even called
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPrintHandler_ListDeliveries(t *testing.T) {
	router, _, _, recordRepo := newPrintRouter(t)

	renderer, err := printing.NewRenderer(printing.ProfileNarrow, nil)
	require.NoError(t, err)
	location, err := ordering.NewBillingLocation(ordering.ModeTable, 5)
	require.NoError(t, err)
	line, err := ordering.NewOrderLine(uuid.New(), "Masala Dosa", valueobject.NewMoneyFromFloat(80), 1)
	require.NoError(t, err)
	doc, err := renderer.RenderTicket(
		catalog.Group{Station: "kitchen", Lines: []ordering.OrderLine{line}},
		location,
		time.Date(2026, 8, 23, 13, 45, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	rec, err := printing.NewDeliveryRecord(doc, location.Key(), printing.ProfileNarrow)
	require.NoError(t, err)
	require.NoError(t, rec.StartDelivering(printing.ChannelSilent))
	require.NoError(t, rec.MarkDelivered(printing.DeliveredVia(printing.ChannelSilent, 1, 100*time.Millisecond), time.Now()))
	recordRepo.saved = append(recordRepo.saved, rec)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/print/deliveries?page=1&page_size=20", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	require.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.Total)

	items := resp.Data.([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "TICKET", item["kind"])
	assert.Equal(t, "kitchen", item["station"])
	assert.Equal(t, "DELIVERED", item["status"])
}

func TestPrintHandler_ListDeliveries_BadPageSize(t *testing.T) {
	router, _, _, _ := newPrintRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/print/deliveries?page_size=1000", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
