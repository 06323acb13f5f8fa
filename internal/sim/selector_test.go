package sim

import (
	"slices"
	"testing"

	"foors"
)

func TestGreedyCoverage(t *testing.T) {
	a, b, c, d := foors.NodeID("A"), foors.NodeID("B"), foors.NodeID("C"), foors.NodeID("D")
	s1, s2 := foors.SinkID("S1"), foors.SinkID("S2")
	noLoad := func(foors.NodeID) int { return 0 }

	tests := []struct {
		name       string
		candidates []foors.NodeID
		coverage   map[foors.NodeID]map[foors.SinkID]struct{}
		limit      int
		load       loadFunc
		want       []foors.NodeID
	}{
		{
			name:       "fills the cap with a redundant candidate once coverage is exhausted",
			candidates: []foors.NodeID{a, b, c, d},
			coverage: map[foors.NodeID]map[foors.SinkID]struct{}{
				a: {s1: {}},
				b: {s1: {}},
				c: {s2: {}},
				d: {s1: {}},
			},
			limit: 3,
			load:  noLoad,
			want:  []foors.NodeID{a, c, b},
		},
		{
			name:       "limit below distinct sink count still covers the higher-gain sink first",
			candidates: []foors.NodeID{a, b, c},
			coverage: map[foors.NodeID]map[foors.SinkID]struct{}{
				a: {s1: {}},
				b: {s2: {}},
				c: {s1: {}, s2: {}},
			},
			limit: 1,
			load:  noLoad,
			want:  []foors.NodeID{c},
		},
		{
			name:       "tie on gain breaks toward lower current load",
			candidates: []foors.NodeID{a, b},
			coverage: map[foors.NodeID]map[foors.SinkID]struct{}{
				a: {s1: {}},
				b: {s1: {}},
			},
			limit: 1,
			load:  func(peer foors.NodeID) int { return map[foors.NodeID]int{a: 3, b: 0}[peer] },
			want:  []foors.NodeID{b},
		},
		{
			name:       "candidates exhausted before limit returns only what exists",
			candidates: []foors.NodeID{a},
			coverage: map[foors.NodeID]map[foors.SinkID]struct{}{
				a: {s1: {}},
			},
			limit: 3,
			load:  noLoad,
			want:  []foors.NodeID{a},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := greedyCoverage(tt.candidates, tt.coverage, tt.limit, tt.load)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("greedyCoverage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCapFor(t *testing.T) {
	tests := []struct {
		name     string
		kind     foors.MessageKind
		severity foors.Severity
		want     int
	}{
		{"normal message always caps at 1", foors.Normal, foors.Red, 1},
		{"black triage", foors.TriageMessage, foors.Black, foors.Black.SeverityCap()},
		{"green triage", foors.TriageMessage, foors.Green, foors.Green.SeverityCap()},
		{"yellow triage", foors.TriageMessage, foors.Yellow, foors.Yellow.SeverityCap()},
		{"red triage", foors.TriageMessage, foors.Red, foors.Red.SeverityCap()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := capFor(tt.kind, tt.severity); got != tt.want {
				t.Fatalf("capFor(%v, %v) = %d, want %d", tt.kind, tt.severity, got, tt.want)
			}
		})
	}
}
