package printing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/ordering"
	"github.com/pos/backend/internal/domain/printing"
	"github.com/pos/backend/internal/domain/shared"
)

// PrintOrchestrator runs the full print sequence for an order: one ticket
// per routing station, then the customer bill. Tickets and bill are delivered
// independently; one failed document never stops the rest, and every outcome
// lands in the audit trail.
type PrintOrchestrator struct {
	orderRepo  ordering.OrderRepository
	menuRepo   catalog.MenuItemRepository
	recordRepo printing.DeliveryRecordRepository
	pipeline   printing.DeliveryPipeline
	renderer   *printing.Renderer
	guard      printing.PrintGuard
	profile    printing.RestaurantProfile
	feePercent decimal.Decimal
	billPrefix string
	clock      func() time.Time
	logger     *zap.Logger
}

// guardTTL bounds how long a crashed run can keep a location locked
const guardTTL = 2 * time.Minute

// PrintOrchestratorConfig carries the operator-controlled print settings
type PrintOrchestratorConfig struct {
	Profile           printing.RestaurantProfile
	ServiceFeePercent decimal.Decimal
	BillPrefix        string
}

// NewPrintOrchestrator creates a new PrintOrchestrator
func NewPrintOrchestrator(
	orderRepo ordering.OrderRepository,
	menuRepo catalog.MenuItemRepository,
	recordRepo printing.DeliveryRecordRepository,
	pipeline printing.DeliveryPipeline,
	renderer *printing.Renderer,
	guard printing.PrintGuard,
	cfg PrintOrchestratorConfig,
	logger *zap.Logger,
) *PrintOrchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	prefix := cfg.BillPrefix
	if prefix == "" {
		prefix = "BILL"
	}
	return &PrintOrchestrator{
		orderRepo:  orderRepo,
		menuRepo:   menuRepo,
		recordRepo: recordRepo,
		pipeline:   pipeline,
		renderer:   renderer,
		guard:      guard,
		profile:    cfg.Profile,
		feePercent: cfg.ServiceFeePercent,
		billPrefix: prefix,
		clock:      time.Now,
		logger:     logger,
	}
}

// WithClock overrides the orchestrator clock. Intended for tests.
func (s *PrintOrchestrator) WithClock(clock func() time.Time) *PrintOrchestrator {
	s.clock = clock
	return s
}

// PrintOrder renders and delivers the ticket-then-bill sequence for the
// active order at a location
func (s *PrintOrchestrator) PrintOrder(ctx context.Context, req PrintOrderRequest) (*PrintOrderResponse, error) {
	location, err := ordering.NewBillingLocation(ordering.LocationMode(req.Mode), req.Number)
	if err != nil {
		return nil, err
	}

	if s.guard != nil {
		acquired, err := s.guard.Acquire(ctx, location.Key(), guardTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire print guard: %w", err)
		}
		if !acquired {
			return nil, shared.NewDomainError("PRINT_IN_PROGRESS",
				"A print run is already in progress for "+location.Text())
		}
		defer func() {
			if err := s.guard.Release(context.WithoutCancel(ctx), location.Key()); err != nil {
				s.logger.Warn("failed to release print guard",
					zap.String("location", location.Key()),
					zap.Error(err))
			}
		}()
	}

	order, err := s.orderRepo.FindByLocation(ctx, location)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewDomainError("NOTHING_TO_PRINT", "No active order at "+location.Text())
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order.IsEmpty() {
		return nil, shared.NewDomainError("NOTHING_TO_PRINT", "Order at "+location.Text()+" has no lines")
	}
	if err := order.Validate(); err != nil {
		s.logger.Error("refusing to print corrupt order",
			zap.String("location", location.Key()),
			zap.Error(err))
		return nil, err
	}

	snapshot, err := s.menuRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}

	classification := catalog.Classify(order.Lines, snapshot)
	pricing := ordering.ComputeSummary(order.Lines, s.feePercent)
	now := s.clock()

	billNumber, err := s.nextBillNumber(ctx, now)
	if err != nil {
		return nil, err
	}

	// Render everything up front. A render failure is a layout or catalog
	// defect and aborts the run before anything reaches a printer.
	docs := make([]*printing.Document, 0, len(classification.Groups)+1)
	for _, group := range classification.Groups {
		doc, err := s.renderer.RenderTicket(group, location, now)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	bill, err := s.renderer.RenderBill(order.Lines, pricing, location, s.profile, billNumber, now)
	if err != nil {
		return nil, err
	}
	docs = append(docs, bill)

	resp := &PrintOrderResponse{
		BillNumber:  billNumber,
		Location:    location.Text(),
		PrintedAt:   now,
		Diagnostics: classification.Diagnostics,
		GrandTotal:  pricing.GrandTotal.Display(),
	}

	billDelivered := false
	allDelivered := true
	for _, doc := range docs {
		resp.Diagnostics = append(resp.Diagnostics, doc.Diagnostics()...)

		outcome, delivered := s.deliver(ctx, doc, location)
		resp.Documents = append(resp.Documents, outcome)
		if !delivered {
			allDelivered = false
		}
		if doc.Kind == printing.KindBill && delivered {
			billDelivered = true
		}
	}
	resp.AllDelivered = allDelivered
	resp.BillDelivered = billDelivered

	if billDelivered {
		if err := order.MarkBilled(billNumber, pricing); err != nil {
			return nil, err
		}
		if err := s.orderRepo.Delete(ctx, location); err != nil {
			return nil, fmt.Errorf("failed to clear billed order: %w", err)
		}
	}

	s.logger.Info("print run finished",
		zap.String("location", location.Key()),
		zap.String("billNumber", billNumber),
		zap.Int("documents", len(docs)),
		zap.Bool("allDelivered", allDelivered),
		zap.Bool("billDelivered", billDelivered))

	return resp, nil
}

// deliver pushes one document through the pipeline and records the outcome.
// It never returns an error: a delivery failure becomes a FAILED audit
// record and a failed outcome in the response.
func (s *PrintOrchestrator) deliver(ctx context.Context, doc *printing.Document, location ordering.BillingLocation) (DocumentOutcome, bool) {
	rec, err := printing.NewDeliveryRecord(doc, location.Key(), s.renderer.Profile())
	if err != nil {
		// unreachable with a valid renderer, but never drop silently
		s.logger.Error("failed to open delivery record", zap.Error(err))
		return DocumentOutcome{
			Kind:       doc.Kind.String(),
			Station:    doc.Station,
			FailureMsg: err.Error(),
		}, false
	}

	channels := printing.AllDeliveryChannels()
	if err := rec.StartDelivering(channels[0]); err != nil {
		s.logger.Error("failed to start delivery", zap.Error(err))
	}

	result := s.pipeline.Deliver(ctx, doc)

	// replay the pipeline's channel hops into the audit record
	for i := 1; i < result.Attempts && i < len(channels); i++ {
		if err := rec.Escalate(channels[i]); err != nil {
			s.logger.Error("failed to record escalation", zap.Error(err))
		}
	}

	if result.Delivered {
		if err := rec.MarkDelivered(result, s.clock()); err != nil {
			s.logger.Error("failed to mark record delivered", zap.Error(err))
		}
	} else {
		reason := result.FailureMsg
		if reason == "" {
			reason = "all delivery channels exhausted"
			result.FailureMsg = reason
		}
		if err := rec.MarkFailed(result); err != nil {
			s.logger.Error("failed to mark record failed", zap.Error(err))
		}
		s.logger.Warn("document delivery failed",
			zap.String("kind", doc.Kind.String()),
			zap.String("station", doc.Station),
			zap.String("reason", reason))
	}

	if err := s.recordRepo.Save(ctx, rec); err != nil {
		// the paper outcome stands; losing the audit row is logged loudly
		s.logger.Error("failed to persist delivery record",
			zap.String("record", rec.ID.String()),
			zap.Error(err))
	}

	return DocumentOutcome{
		Kind:       doc.Kind.String(),
		Station:    doc.Station,
		Channel:    result.Channel.String(),
		Printer:    result.Printer,
		Delivered:  result.Delivered,
		Escalated:  result.Escalated,
		Attempts:   result.Attempts,
		FailureMsg: result.FailureMsg,
		RecordID:   rec.ID.String(),
	}, result.Delivered
}

// ListRecords pages through the delivery audit trail, newest first
func (s *PrintOrchestrator) ListRecords(ctx context.Context, req ListRecordsRequest) (*ListRecordsResponse, error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}

	page, err := s.recordRepo.FindRecent(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery records: %w", err)
	}

	items := make([]RecordResponse, 0, len(page.Items))
	for _, rec := range page.Items {
		items = append(items, toRecordResponse(rec))
	}
	return &ListRecordsResponse{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Size:  page.PageSize,
	}, nil
}

// nextBillNumber derives the day-scoped bill sequence from the audit trail,
// so numbering survives restarts without a separate counter table
func (s *PrintOrchestrator) nextBillNumber(ctx context.Context, now time.Time) (string, error) {
	count, err := s.recordRepo.CountBillsOn(ctx, now)
	if err != nil {
		return "", fmt.Errorf("failed to derive bill number: %w", err)
	}
	return fmt.Sprintf("%s-%s-%d", s.billPrefix, now.Format("20060102"), count+1), nil
}

func toRecordResponse(rec *printing.DeliveryRecord) RecordResponse {
	return RecordResponse{
		ID:          rec.ID.String(),
		Kind:        rec.Kind.String(),
		Station:     rec.Station,
		BillNumber:  rec.BillNumber,
		Location:    rec.LocationText,
		Status:      rec.Status.String(),
		Channel:     rec.Channel.String(),
		Attempts:    rec.Attempts,
		Escalated:   rec.Escalated,
		FailureMsg:  rec.FailureMsg,
		CreatedAt:   rec.CreatedAt,
		DeliveredAt: rec.DeliveredAt,
	}
}
