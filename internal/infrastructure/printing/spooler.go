package printing

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/printing"
)

const defaultSilentTimeout = 8 * time.Second

// CommandRunner executes a spool command. Extracted so tests can fake the
// host spooler without a CUPS installation.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, stdin string) ([]byte, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args []string, stdin string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	return cmd.CombinedOutput()
}

// SpoolerConfig configures the silent spooler channel
type SpoolerConfig struct {
	// TicketPrinter and BillPrinter are CUPS queue names. A document is
	// routed by kind; an empty name falls back to the system default queue.
	TicketPrinter string
	BillPrinter   string
	// Command is the spool binary, "lp" by default
	Command string
	// Timeout bounds one submission, 8s by default
	Timeout time.Duration
	Logger  *zap.Logger
}

// SpoolerChannel submits rendered text to the host print spooler with no
// user-visible surface. This is the first, lowest-friction channel.
type SpoolerChannel struct {
	config SpoolerConfig
	runner CommandRunner
	logger *zap.Logger
}

// NewSpoolerChannel creates the silent spooler channel
func NewSpoolerChannel(config SpoolerConfig, runner CommandRunner) *SpoolerChannel {
	if config.Command == "" {
		config.Command = "lp"
	}
	if config.Timeout == 0 {
		config.Timeout = defaultSilentTimeout
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpoolerChannel{config: config, runner: runner, logger: logger}
}

// Name identifies the channel
func (c *SpoolerChannel) Name() printing.DeliveryChannel {
	return printing.ChannelSilent
}

// Deliver submits the document text to the spooler queue for its kind
func (c *SpoolerChannel) Deliver(ctx context.Context, doc *printing.Document) (string, error) {
	printer := c.printerFor(doc.Kind)

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	args := []string{"-t", doc.Title(), "-o", "raw"}
	if printer != "" {
		args = append(args, "-d", printer)
	}

	out, err := c.runner.Run(ctx, c.config.Command, args, doc.Text()+"\n")
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("spooler timed out after %v", c.config.Timeout)
		}
		return "", fmt.Errorf("spooler rejected job: %v: %s", err, strings.TrimSpace(string(out)))
	}

	c.logger.Debug("document spooled",
		zap.String("printer", printer),
		zap.String("title", doc.Title()))

	if printer == "" {
		printer = "default"
	}
	return printer, nil
}

// SpoolPDF submits already-rendered PDF bytes. Used by the visible channel,
// which produces PDF instead of raw text.
func (c *SpoolerChannel) SpoolPDF(ctx context.Context, doc *printing.Document, pdf []byte) (string, error) {
	printer := c.printerFor(doc.Kind)

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	args := []string{"-t", doc.Title()}
	if printer != "" {
		args = append(args, "-d", printer)
	}

	out, err := c.runner.Run(ctx, c.config.Command, args, string(pdf))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("spooler timed out after %v", c.config.Timeout)
		}
		return "", fmt.Errorf("spooler rejected pdf job: %v: %s", err, strings.TrimSpace(string(out)))
	}

	if printer == "" {
		printer = "default"
	}
	return printer, nil
}

func (c *SpoolerChannel) printerFor(kind printing.DocumentKind) string {
	if kind == printing.KindBill {
		return c.config.BillPrinter
	}
	return c.config.TicketPrinter
}

var _ Channel = (*SpoolerChannel)(nil)
