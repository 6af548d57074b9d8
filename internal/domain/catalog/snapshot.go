package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// SnapshotEntry is the per-item routing metadata held by a snapshot.
// Station is the raw catalog label; it may be empty or refer to a station
// the catalog never declared.
type SnapshotEntry struct {
	ItemID  uuid.UUID
	Name    string
	Station Station
}

// Snapshot is an immutable view of the catalog taken at classification time.
// It resolves item identity (or display name, as a fallback) to a routing
// station and fixes the station emission order: default station first, then
// declaration order.
type Snapshot struct {
	byID     map[uuid.UUID]SnapshotEntry
	byName   map[string]SnapshotEntry
	stations []Station
}

// NewSnapshot builds a snapshot from menu items, deriving the declared
// station set from the item labels themselves. Items are expected in catalog
// declaration order (ascending Position); inactive items are skipped.
func NewSnapshot(items []MenuItem) *Snapshot {
	var declared []Station
	seen := map[Station]bool{}
	for _, item := range items {
		if !item.Active || item.Station.IsZero() || seen[item.Station] {
			continue
		}
		seen[item.Station] = true
		declared = append(declared, item.Station)
	}
	return NewSnapshotWithStations(items, declared)
}

// NewSnapshotWithStations builds a snapshot with an explicit declared station
// list. Item labels outside the declared set are kept verbatim in the entries
// and treated as unrecognised at classification time.
func NewSnapshotWithStations(items []MenuItem, declared []Station) *Snapshot {
	s := &Snapshot{
		byID:   make(map[uuid.UUID]SnapshotEntry, len(items)),
		byName: make(map[string]SnapshotEntry, len(items)),
	}

	seen := map[Station]bool{DefaultStation: true}
	s.stations = append(s.stations, DefaultStation)
	for _, station := range declared {
		if station.IsZero() || seen[station] {
			continue
		}
		seen[station] = true
		s.stations = append(s.stations, station)
	}

	for _, item := range items {
		if !item.Active {
			continue
		}
		entry := SnapshotEntry{ItemID: item.ID, Name: item.Name, Station: item.Station}
		s.byID[item.ID] = entry
		s.byName[normaliseName(item.Name)] = entry
	}

	return s
}

// Stations returns the fixed station emission order
func (s *Snapshot) Stations() []Station {
	out := make([]Station, len(s.stations))
	copy(out, s.stations)
	return out
}

// Knows reports whether the station was declared by the catalog
func (s *Snapshot) Knows(station Station) bool {
	for _, st := range s.stations {
		if st == station {
			return true
		}
	}
	return false
}

// Resolve looks up routing metadata by item identity, falling back to the
// display name. The boolean is false when neither lookup matched.
func (s *Snapshot) Resolve(itemID uuid.UUID, name string) (SnapshotEntry, bool) {
	if entry, ok := s.byID[itemID]; ok {
		return entry, true
	}
	entry, ok := s.byName[normaliseName(name)]
	return entry, ok
}

// Len returns the number of items in the snapshot
func (s *Snapshot) Len() int {
	return len(s.byID)
}

func normaliseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
