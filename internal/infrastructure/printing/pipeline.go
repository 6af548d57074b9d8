package printing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/printing"
)

// Pipeline walks a document through the escalation chain: each channel gets
// one attempt under its own timeout, and the first success wins. A document
// leaves the pipeline either delivered or failed with one diagnostic per
// attempted channel, never dropped.
type Pipeline struct {
	channels []Channel
	logger   *zap.Logger
}

// NewPipeline creates a pipeline over the given channels, attempted in order
func NewPipeline(channels []Channel, logger *zap.Logger) (*Pipeline, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("pipeline needs at least one delivery channel")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{channels: channels, logger: logger}, nil
}

// Deliver pushes one document through the chain
func (p *Pipeline) Deliver(ctx context.Context, doc *printing.Document) printing.DeliveryResult {
	start := time.Now()
	var failures []string
	last := p.channels[0].Name()

	for attempt, channel := range p.channels {
		last = channel.Name()

		if err := ctx.Err(); err != nil {
			failures = append(failures, fmt.Sprintf("%s: not attempted: %v", channel.Name(), err))
			break
		}

		printer, err := channel.Deliver(ctx, doc)
		if err == nil {
			p.logger.Info("document delivered",
				zap.String("title", doc.Title()),
				zap.String("channel", channel.Name().String()),
				zap.String("printer", printer),
				zap.Int("attempt", attempt+1),
				zap.Duration("elapsed", time.Since(start)))
			return printing.DeliveredVia(channel.Name(), attempt+1, time.Since(start)).
				WithPrinter(printer)
		}

		failures = append(failures, fmt.Sprintf("%s: %v", channel.Name(), err))
		p.logger.Warn("delivery channel failed, escalating",
			zap.String("title", doc.Title()),
			zap.String("channel", channel.Name().String()),
			zap.Error(err))
	}

	reason := strings.Join(failures, "; ") +
		" (check printer power and cable, then the queue with lpstat)"
	p.logger.Error("document failed on every channel",
		zap.String("title", doc.Title()),
		zap.Int("attempts", len(failures)),
		zap.String("reason", reason))
	return printing.FailedDelivery(last, len(failures), time.Since(start), reason)
}

var _ printing.DeliveryPipeline = (*Pipeline)(nil)
