package ordering

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/ordering"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/shared/valueobject"
)

// OrderService maintains the active order per billing location. Every
// mutation is persisted immediately, so a crashed terminal never loses an
// order that was already taken.
type OrderService struct {
	orderRepo   ordering.OrderRepository
	menuRepo    catalog.MenuItemRepository
	feePercent  decimal.Decimal
	parcelTiers map[string]valueobject.Money
	logger      *zap.Logger
}

// NewOrderService creates a new OrderService. parcelTiers maps the
// operator-configured add-on tier labels to their per-unit charges.
func NewOrderService(
	orderRepo ordering.OrderRepository,
	menuRepo catalog.MenuItemRepository,
	feePercent decimal.Decimal,
	parcelTiers map[string]valueobject.Money,
	logger *zap.Logger,
) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if parcelTiers == nil {
		parcelTiers = make(map[string]valueobject.Money)
	}
	return &OrderService{
		orderRepo:   orderRepo,
		menuRepo:    menuRepo,
		feePercent:  feePercent,
		parcelTiers: parcelTiers,
		logger:      logger,
	}
}

// AddLine adds a menu item to the order at a location, opening the order if
// the location has none yet. Re-adding an item increases its quantity.
func (s *OrderService) AddLine(ctx context.Context, mode string, number int, req AddLineRequest) (*OrderSummaryResponse, error) {
	location, err := ordering.NewBillingLocation(ordering.LocationMode(mode), number)
	if err != nil {
		return nil, err
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid item id")
	}

	item, err := s.menuRepo.FindByID(ctx, itemID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewDomainError("NOT_FOUND", "Menu item not found")
		}
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}
	if !item.Active {
		return nil, shared.NewDomainError("INVALID_INPUT", "Menu item is not on the active menu")
	}

	order, err := s.loadOrOpen(ctx, location)
	if err != nil {
		return nil, err
	}

	line, err := ordering.NewOrderLine(item.ID, item.Name, item.Price, req.Quantity)
	if err != nil {
		return nil, err
	}
	if err := order.AddLine(line); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.logger.Info("order line added",
		zap.String("location", location.Key()),
		zap.String("item", item.Name),
		zap.Int("quantity", req.Quantity))

	return s.toSummary(order), nil
}

// UpdateLine changes the quantity and/or add-on of an existing line.
// Quantity zero removes the line; removing the last line leaves an empty
// order in place so the location keeps its claim until billed or abandoned.
func (s *OrderService) UpdateLine(ctx context.Context, mode string, number int, itemID string, req UpdateLineRequest) (*OrderSummaryResponse, error) {
	location, err := ordering.NewBillingLocation(ordering.LocationMode(mode), number)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid item id")
	}

	order, err := s.load(ctx, location)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		if err := order.UpdateQuantity(id, *req.Quantity); err != nil {
			return nil, err
		}
	}
	if req.AddOnTier != nil {
		charge, tier, err := s.resolveTier(*req.AddOnTier)
		if err != nil {
			return nil, err
		}
		if err := order.SetAddOn(id, charge, tier); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	return s.toSummary(order), nil
}

// RemoveLine deletes a line from the order
func (s *OrderService) RemoveLine(ctx context.Context, mode string, number int, itemID string) (*OrderSummaryResponse, error) {
	location, err := ordering.NewBillingLocation(ordering.LocationMode(mode), number)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid item id")
	}

	order, err := s.load(ctx, location)
	if err != nil {
		return nil, err
	}
	if err := order.RemoveLine(id); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	return s.toSummary(order), nil
}

// Summary returns the priced view of the order at a location
func (s *OrderService) Summary(ctx context.Context, mode string, number int) (*OrderSummaryResponse, error) {
	location, err := ordering.NewBillingLocation(ordering.LocationMode(mode), number)
	if err != nil {
		return nil, err
	}
	order, err := s.load(ctx, location)
	if err != nil {
		return nil, err
	}
	return s.toSummary(order), nil
}

func (s *OrderService) load(ctx context.Context, location ordering.BillingLocation) (*ordering.Order, error) {
	order, err := s.orderRepo.FindByLocation(ctx, location)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewDomainError("NOT_FOUND", "No active order at "+location.Text())
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return order, nil
}

func (s *OrderService) loadOrOpen(ctx context.Context, location ordering.BillingLocation) (*ordering.Order, error) {
	order, err := s.orderRepo.FindByLocation(ctx, location)
	if err == nil {
		return order, nil
	}
	if !shared.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return ordering.NewOrder(location)
}

// resolveTier maps a tier label to its configured per-unit charge. The empty
// label clears the add-on.
func (s *OrderService) resolveTier(tier string) (valueobject.Money, string, error) {
	if tier == "" {
		return valueobject.ZeroMoney(), "", nil
	}
	charge, ok := s.parcelTiers[tier]
	if !ok {
		return valueobject.ZeroMoney(), "", shared.NewDomainError("INVALID_INPUT", "Unknown add-on tier: "+tier)
	}
	return charge, tier, nil
}

func (s *OrderService) toSummary(order *ordering.Order) *OrderSummaryResponse {
	pricing := ordering.ComputeSummary(order.Lines, s.feePercent)

	lines := make([]LineResponse, 0, len(order.Lines))
	for _, l := range order.Lines {
		resp := LineResponse{
			ItemID:    l.ItemID.String(),
			Name:      l.Name,
			UnitPrice: l.UnitPrice.StringFixed(),
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal().Add(l.AddOnTotal()).StringFixed(),
		}
		if l.HasAddOn() {
			resp.AddOnCharge = l.AddOnCharge.StringFixed()
			resp.AddOnTier = l.AddOnTier
		}
		lines = append(lines, resp)
	}

	return &OrderSummaryResponse{
		Location:          order.Location.Text(),
		ItemCount:         order.ItemCount(),
		Lines:             lines,
		Subtotal:          pricing.Subtotal.StringFixed(),
		AddOnTotal:        pricing.AddOnTotal.StringFixed(),
		ServiceFeePercent: pricing.ServiceFeePercent.String(),
		ServiceFee:        pricing.ServiceFee.StringFixed(),
		GrandTotal:        pricing.GrandTotal.StringFixed(),
	}
}
