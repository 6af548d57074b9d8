package printing

// DocumentKind distinguishes the two printable document kinds
type DocumentKind string

const (
	// KindTicket is the price-free preparation ticket routed to a station
	KindTicket DocumentKind = "TICKET"
	// KindBill is the priced customer bill covering the whole order
	KindBill DocumentKind = "BILL"
)

// IsValid checks if the DocumentKind is a valid value
func (k DocumentKind) IsValid() bool {
	switch k {
	case KindTicket, KindBill:
		return true
	}
	return false
}

// String returns the string representation of DocumentKind
func (k DocumentKind) String() string {
	return string(k)
}

// AllDocumentKinds returns all valid DocumentKind values
func AllDocumentKinds() []DocumentKind {
	return []DocumentKind{KindTicket, KindBill}
}

// WidthProfile selects the receipt stock the documents are laid out for
type WidthProfile string

const (
	// ProfileNarrow targets 58mm thermal receipt stock
	ProfileNarrow WidthProfile = "NARROW"
	// ProfileWide targets 80mm thermal receipt stock
	ProfileWide WidthProfile = "WIDE"
)

// IsValid checks if the WidthProfile is a valid value
func (p WidthProfile) IsValid() bool {
	switch p {
	case ProfileNarrow, ProfileWide:
		return true
	}
	return false
}

// String returns the string representation of WidthProfile
func (p WidthProfile) String() string {
	return string(p)
}

// Columns returns the number of character columns the stock fits
func (p WidthProfile) Columns() int {
	switch p {
	case ProfileWide:
		return 42
	default:
		return 32
	}
}

// PaperWidthMM returns the physical paper width in millimetres
func (p WidthProfile) PaperWidthMM() int {
	switch p {
	case ProfileWide:
		return 80
	default:
		return 58
	}
}

// AllWidthProfiles returns all valid WidthProfile values
func AllWidthProfiles() []WidthProfile {
	return []WidthProfile{ProfileNarrow, ProfileWide}
}

// DeliveryChannel names one of the escalating delivery mechanisms
type DeliveryChannel string

const (
	// ChannelSilent asks the host spooler to print without any UI
	ChannelSilent DeliveryChannel = "SILENT"
	// ChannelVisible opens a visible rendering surface and invokes print on it
	ChannelVisible DeliveryChannel = "VISIBLE"
	// ChannelEmbedded prints from an isolated in-process surface
	ChannelEmbedded DeliveryChannel = "EMBEDDED"
)

// IsValid checks if the DeliveryChannel is a valid value
func (c DeliveryChannel) IsValid() bool {
	switch c {
	case ChannelSilent, ChannelVisible, ChannelEmbedded:
		return true
	}
	return false
}

// String returns the string representation of DeliveryChannel
func (c DeliveryChannel) String() string {
	return string(c)
}

// AllDeliveryChannels returns the channels in escalation order
func AllDeliveryChannels() []DeliveryChannel {
	return []DeliveryChannel{ChannelSilent, ChannelVisible, ChannelEmbedded}
}

// DeliveryStatus is the status of a delivery audit record
type DeliveryStatus string

const (
	StatusPending    DeliveryStatus = "PENDING"
	StatusDelivering DeliveryStatus = "DELIVERING"
	StatusDelivered  DeliveryStatus = "DELIVERED"
	StatusFailed     DeliveryStatus = "FAILED"
)

// IsValid checks if the DeliveryStatus is a valid value
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusDelivering, StatusDelivered, StatusFailed:
		return true
	}
	return false
}

// String returns the string representation of DeliveryStatus
func (s DeliveryStatus) String() string {
	return string(s)
}

// IsTerminal returns true if this is a terminal status
func (s DeliveryStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailed
}

// CanTransitionTo checks if the status can transition to the target status
func (s DeliveryStatus) CanTransitionTo(target DeliveryStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusDelivering || target == StatusFailed
	case StatusDelivering:
		return target == StatusDelivered || target == StatusFailed
	case StatusDelivered, StatusFailed:
		return false
	}
	return false
}
