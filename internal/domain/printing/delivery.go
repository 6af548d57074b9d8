package printing

import (
	"time"
)

// DeliveryResult records the outcome of pushing one document through the
// delivery pipeline. A result always names the channel that was attempted
// last, so a failure is attributable even after escalation.
type DeliveryResult struct {
	Channel    DeliveryChannel
	Printer    string // resolved printer/device name, when known
	Delivered  bool
	Escalated  bool // a lower-friction channel failed first
	Attempts   int
	Elapsed    time.Duration
	FailureMsg string
}

// WithPrinter returns a copy of the result naming the printer that served it
func (r DeliveryResult) WithPrinter(printer string) DeliveryResult {
	r.Printer = printer
	return r
}

// DeliveredVia builds the result for a successful delivery
func DeliveredVia(channel DeliveryChannel, attempts int, elapsed time.Duration) DeliveryResult {
	return DeliveryResult{
		Channel:   channel,
		Delivered: true,
		Escalated: attempts > 1,
		Attempts:  attempts,
		Elapsed:   elapsed,
	}
}

// FailedDelivery builds the result for a delivery that exhausted every channel
func FailedDelivery(lastChannel DeliveryChannel, attempts int, elapsed time.Duration, reason string) DeliveryResult {
	return DeliveryResult{
		Channel:    lastChannel,
		Delivered:  false,
		Escalated:  attempts > 1,
		Attempts:   attempts,
		Elapsed:    elapsed,
		FailureMsg: reason,
	}
}
