package printing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pos/backend/internal/domain/printing"
)

type fakeWriter struct {
	path string
	data []byte
	err  error
}

func (w *fakeWriter) Write(_ context.Context, path string, data []byte) error {
	w.path = path
	w.data = data
	return w.err
}

func TestEmbeddedChannel_WritesToDevice(t *testing.T) {
	writer := &fakeWriter{}
	channel := NewEmbeddedChannel(EmbeddedConfig{
		TicketDevice: "/dev/usb/lp0",
		BillDevice:   "/dev/usb/lp1",
	}, writer)

	target, err := channel.Deliver(context.Background(), ticketDocument(t))
	require.NoError(t, err)
	assert.Equal(t, "/dev/usb/lp0", target)
	assert.Equal(t, "/dev/usb/lp0", writer.path)

	// encoded stream: reset first, cut last, document text in between
	require.NotEmpty(t, writer.data)
	assert.Equal(t, []byte{0x1b, 0x40}, writer.data[:2])
	assert.Equal(t, []byte{0x1d, 0x56, 0x42, 0x00}, writer.data[len(writer.data)-4:])
	assert.Contains(t, string(writer.data), "Masala Dosa")
}

func TestEmbeddedChannel_RoutesBillsSeparately(t *testing.T) {
	writer := &fakeWriter{}
	channel := NewEmbeddedChannel(EmbeddedConfig{
		TicketDevice: "/dev/usb/lp0",
		BillDevice:   "/dev/usb/lp1",
	}, writer)

	target, err := channel.Deliver(context.Background(), billDocument(t))
	require.NoError(t, err)
	assert.Equal(t, "/dev/usb/lp1", target)
}

func TestEmbeddedChannel_SpoolDirFallback(t *testing.T) {
	writer := &fakeWriter{}
	channel := NewEmbeddedChannel(EmbeddedConfig{SpoolDir: t.TempDir()}, writer)

	target, err := channel.Deliver(context.Background(), ticketDocument(t))
	require.NoError(t, err)
	assert.Contains(t, target, ".escpos")
	assert.Contains(t, target, "TICKET")
}

func TestEmbeddedChannel_NoTargetConfigured(t *testing.T) {
	channel := NewEmbeddedChannel(EmbeddedConfig{}, &fakeWriter{})

	_, err := channel.Deliver(context.Background(), ticketDocument(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no device or spool directory")
}

func TestEmbeddedChannel_WriteFailure(t *testing.T) {
	writer := &fakeWriter{err: errors.New("device busy")}
	channel := NewEmbeddedChannel(EmbeddedConfig{TicketDevice: "/dev/usb/lp0"}, writer)

	_, err := channel.Deliver(context.Background(), ticketDocument(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device busy")
}

func TestEmbeddedChannel_Name(t *testing.T) {
	channel := NewEmbeddedChannel(EmbeddedConfig{}, &fakeWriter{})
	assert.Equal(t, printing.ChannelEmbedded, channel.Name())
}

func TestEncodeESCPOS_EmphasisToggled(t *testing.T) {
	doc := billDocument(t)
	data := encodeESCPOS(doc)

	// the grand total row is emphasized, so the stream must toggle emphasis
	assert.Contains(t, string(data), string([]byte{0x1b, 0x45, 0x01}))
	assert.Contains(t, string(data), string([]byte{0x1b, 0x45, 0x00}))
	assert.Contains(t, string(data), "TOTAL")
}
