package printing

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/printing"
)

const (
	defaultSettleDelay    = 2500 * time.Millisecond
	defaultVisibleTimeout = 20 * time.Second
	defaultCloseGrace     = 2 * time.Second
)

// PDFSpooler hands finished PDF bytes to the host spooler
type PDFSpooler interface {
	SpoolPDF(ctx context.Context, doc *printing.Document, pdf []byte) (string, error)
}

// ChromedpConfig configures the visible browser channel
type ChromedpConfig struct {
	// RemoteURL points at an existing Chrome instance; empty launches one
	RemoteURL string
	// Headless hides the window. The channel exists to put a visible page on
	// screen when silent spooling misbehaves, so this defaults to false.
	Headless bool
	// NoSandbox is required when running as root in containers
	NoSandbox bool
	// SettleDelay is how long the page is left to settle before printing
	SettleDelay time.Duration
	// Timeout bounds one whole attempt, navigation to PDF
	Timeout time.Duration
	// CloseGrace is how long the page stays open after printing before the
	// surface is released
	CloseGrace time.Duration
	Logger     *zap.Logger
}

// ChromedpChannel renders the document in a browser page, prints it to PDF
// over the DevTools protocol and spools the PDF. Second escalation step.
type ChromedpChannel struct {
	config      ChromedpConfig
	spooler     PDFSpooler
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromedpChannel creates the visible browser channel
func NewChromedpChannel(config ChromedpConfig, spooler PDFSpooler) *ChromedpChannel {
	if config.SettleDelay == 0 {
		config.SettleDelay = defaultSettleDelay
	}
	if config.Timeout == 0 {
		config.Timeout = defaultVisibleTimeout
	}
	if config.CloseGrace == 0 {
		config.CloseGrace = defaultCloseGrace
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &ChromedpChannel{
		config:  config,
		spooler: spooler,
		logger:  logger,
	}
	c.initAllocator()
	return c
}

func (c *ChromedpChannel) initAllocator() {
	if c.config.RemoteURL != "" {
		c.allocCtx, c.allocCancel = chromedp.NewRemoteAllocator(context.Background(), c.config.RemoteURL)
		return
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", c.config.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if c.config.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}
	c.allocCtx, c.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
}

// Name identifies the channel
func (c *ChromedpChannel) Name() printing.DeliveryChannel {
	return printing.ChannelVisible
}

// Deliver opens a page with the document, waits for it to settle, prints it
// to PDF and spools the PDF. The page is always released, success or not.
func (c *ChromedpChannel) Deliver(ctx context.Context, doc *printing.Document) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(c.allocCtx)
	defer c.release(browserCancel)

	html := documentHTML(doc)
	widthIn := float64(printing.ProfileNarrow.PaperWidthMM()) / 25.4
	if doc.Width > printing.ProfileNarrow.Columns() {
		widthIn = float64(printing.ProfileWide.PaperWidthMM()) / 25.4
	}

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.Sleep(c.config.SettleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPaperWidth(widthIn).
				// continuous receipt stock, tall page avoids pagination
				WithPaperHeight(3000.0/25.4).
				WithMarginTop(0).
				WithMarginRight(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithPrintBackground(false).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("visible surface timed out after %v", c.config.Timeout)
		}
		return "", fmt.Errorf("visible surface failed: %w", err)
	}
	if len(pdf) == 0 {
		return "", fmt.Errorf("visible surface produced an empty pdf")
	}

	printer, err := c.spooler.SpoolPDF(ctx, doc, pdf)
	if err != nil {
		return "", fmt.Errorf("failed to spool visible-surface pdf: %w", err)
	}

	c.logger.Info("document printed via visible surface",
		zap.String("title", doc.Title()),
		zap.String("printer", printer),
		zap.Int("pdfBytes", len(pdf)))
	return printer, nil
}

// release closes the page after the configured grace period, off the
// delivery path so a slow close never blocks the pipeline
func (c *ChromedpChannel) release(cancel context.CancelFunc) {
	grace := c.config.CloseGrace
	go func() {
		time.Sleep(grace)
		cancel()
	}()
}

// Close releases the browser allocator
func (c *ChromedpChannel) Close() error {
	if c.allocCancel != nil {
		c.allocCancel()
	}
	return nil
}

var _ Channel = (*ChromedpChannel)(nil)
