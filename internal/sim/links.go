package sim

import (
	"math"

	"foors"
)

// recomputeLinks derives each node's symmetric neighbor set:
// a ∈ neighbors(b) ⇔ b ∈ neighbors(a) ⇔ dist(a,b) ≤ max(r_a, r_b), where
// r_x = x.connectionRadius. Before overwriting, it snapshots each node's
// previous neighbor set and had-any-neighbors flag, which new-link replay
// diffs against afterwards.
//
// Deterministic, O(n^2): every pair is tested once.
func recomputeLinks(nodes map[foors.NodeID]*node) {
	ids := make([]foors.NodeID, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}

	next := make(map[foors.NodeID]map[foors.NodeID]struct{}, len(nodes))
	for _, id := range ids {
		next[id] = make(map[foors.NodeID]struct{})
	}

	for i := 0; i < len(ids); i++ {
		a := nodes[ids[i]]
		for j := i + 1; j < len(ids); j++ {
			b := nodes[ids[j]]
			cutoff := math.Max(a.connectionRadius, b.connectionRadius)
			if distance(a.pos, b.pos) <= cutoff {
				next[a.id][b.id] = struct{}{}
				next[b.id][a.id] = struct{}{}
			}
		}
	}

	for _, id := range ids {
		n := nodes[id]
		n.prevNeighbors = n.neighbors
		n.hadAnyNeighbors = len(n.neighbors) > 0
		n.neighbors = next[id]
	}
}

func distance(a, b foors.Position) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// newNeighbors returns the set of peers present in n.neighbors but absent
// from n.prevNeighbors — the peers that newly appeared this tick, which
// drive §4.6's new-link boundary replay.
func newNeighbors(n *node) []foors.NodeID {
	var fresh []foors.NodeID
	for id := range n.neighbors {
		if _, existed := n.prevNeighbors[id]; !existed {
			fresh = append(fresh, id)
		}
	}
	return fresh
}

// becameConnected reports whether n had zero neighbors before the most
// recent link recompute and has at least one now.
func becameConnected(n *node) bool {
	return !n.hadAnyNeighbors && len(n.neighbors) > 0
}
