package printing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/printing"
)

const defaultEmbeddedTimeout = 5 * time.Second

// DeviceWriter writes an encoded job to a printer device. Extracted so tests
// run without a character device.
type DeviceWriter interface {
	Write(ctx context.Context, path string, data []byte) error
}

// FileDeviceWriter writes to the device node (or any file path) directly
type FileDeviceWriter struct{}

func (FileDeviceWriter) Write(ctx context.Context, path string, data []byte) error {
	done := make(chan error, 1)
	go func() {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			done <- err
			return
		}
		defer f.Close()
		_, err = f.Write(data)
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// EmbeddedConfig configures the last-resort in-process channel
type EmbeddedConfig struct {
	// TicketDevice and BillDevice are device nodes (e.g. /dev/usb/lp0).
	// Routing mirrors the spooler channel's kind-based routing.
	TicketDevice string
	BillDevice   string
	// SpoolDir receives the encoded job as a file when no device is
	// configured, so the document survives even with no printer attached
	SpoolDir string
	// Timeout bounds one write, 5s by default
	Timeout time.Duration
	Logger  *zap.Logger
}

// EmbeddedChannel encodes the document as ESC/POS and writes it straight to
// the printer device from inside the process. Final escalation step: no
// spooler, no browser, nothing between the process and the device.
type EmbeddedChannel struct {
	config EmbeddedConfig
	writer DeviceWriter
	logger *zap.Logger
}

// NewEmbeddedChannel creates the embedded ESC/POS channel
func NewEmbeddedChannel(config EmbeddedConfig, writer DeviceWriter) *EmbeddedChannel {
	if config.Timeout == 0 {
		config.Timeout = defaultEmbeddedTimeout
	}
	if writer == nil {
		writer = FileDeviceWriter{}
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmbeddedChannel{config: config, writer: writer, logger: logger}
}

// Name identifies the channel
func (c *EmbeddedChannel) Name() printing.DeliveryChannel {
	return printing.ChannelEmbedded
}

// Deliver writes the encoded document to the device for its kind, falling
// back to a spool file when no device is configured
func (c *EmbeddedChannel) Deliver(ctx context.Context, doc *printing.Document) (string, error) {
	target := c.deviceFor(doc.Kind)
	if target == "" {
		if c.config.SpoolDir == "" {
			return "", fmt.Errorf("no device or spool directory configured for %s", doc.Kind)
		}
		target = filepath.Join(c.config.SpoolDir,
			fmt.Sprintf("%s-%d.escpos", doc.Kind, time.Now().UnixNano()))
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := c.writer.Write(ctx, target, encodeESCPOS(doc)); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("device write timed out after %v", c.config.Timeout)
		}
		return "", fmt.Errorf("device write failed: %w", err)
	}

	c.logger.Info("document written to device",
		zap.String("target", target),
		zap.String("title", doc.Title()))
	return target, nil
}

func (c *EmbeddedChannel) deviceFor(kind printing.DocumentKind) string {
	if kind == printing.KindBill {
		return c.config.BillDevice
	}
	return c.config.TicketDevice
}

var _ Channel = (*EmbeddedChannel)(nil)
