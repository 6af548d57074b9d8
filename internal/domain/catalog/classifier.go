package catalog

import (
	"fmt"

	"github.com/pos/backend/internal/domain/ordering"
)

// Group is one routing group of an order: the station label plus the lines
// that should appear on that station's preparation ticket.
type Group struct {
	Station Station
	Lines   []ordering.OrderLine
}

// Classification is the result of partitioning an order into routing groups.
// Groups are emitted in the snapshot's fixed station order so ticket printing
// order is stable across runs. Diagnostics record lines that needed the
// default-station fallback; they never make classification fail.
type Classification struct {
	Groups      []Group
	Diagnostics []string
}

// Classify partitions order lines into routing groups using the catalog
// snapshot. Resolution per line: lookup by item identity, then by display
// name, then the default station. Unrecognised station labels also fall back
// to the default station. Deterministic: same lines and snapshot always give
// the same grouping. Empty groups are omitted.
func Classify(lines []ordering.OrderLine, snapshot *Snapshot) Classification {
	byStation := make(map[Station][]ordering.OrderLine)
	var diagnostics []string

	for _, line := range lines {
		station := DefaultStation

		entry, ok := snapshot.Resolve(line.ItemID, line.Name)
		switch {
		case !ok:
			diagnostics = append(diagnostics,
				fmt.Sprintf("item %q not found in catalog, routed to %s", line.Name, DefaultStation))
		case entry.Station.IsZero():
			diagnostics = append(diagnostics,
				fmt.Sprintf("item %q has no routing label, routed to %s", line.Name, DefaultStation))
		case !snapshot.Knows(entry.Station):
			diagnostics = append(diagnostics,
				fmt.Sprintf("item %q has unrecognised routing label %q, routed to %s", line.Name, entry.Station, DefaultStation))
		default:
			station = entry.Station
		}

		byStation[station] = append(byStation[station], line)
	}

	var groups []Group
	for _, station := range snapshot.Stations() {
		if stationLines, ok := byStation[station]; ok {
			groups = append(groups, Group{Station: station, Lines: stationLines})
		}
	}

	return Classification{Groups: groups, Diagnostics: diagnostics}
}

// ItemCount returns the total unit count across the group's lines
func (g Group) ItemCount() int {
	count := 0
	for _, l := range g.Lines {
		count += l.Quantity
	}
	return count
}
