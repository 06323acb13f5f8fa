package sim

import (
	"sort"

	"foors"
)

// loadFunc returns the current load on a candidate next-hop: the count of
// in-flight messages from the selecting node to that peer (progress < 1).
type loadFunc func(peer foors.NodeID) int

// selectTargets picks the peers to send to, given a node, an optional
// excluded peer (used on forward to avoid immediate echo), and a
// (kind, severity) pair.
func selectTargets(n *node, exclude *foors.NodeID, kind foors.MessageKind, severity foors.Severity, load loadFunc) []foors.NodeID {
	switch n.routingState.mode {
	case foors.ModeNoConnections:
		return nil
	case foors.ModeFlooding, foors.ModeInactive:
		return floodTargets(n, exclude)
	case foors.ModeIntelligent:
		limit := capFor(kind, severity)
		return intelligentTargets(n, exclude, limit, load)
	default:
		return nil
	}
}

// capFor returns the multi-route cap on distinct next-hops.
func capFor(kind foors.MessageKind, severity foors.Severity) int {
	if kind != foors.TriageMessage {
		return 1
	}
	return severity.SeverityCap()
}

func floodTargets(n *node, exclude *foors.NodeID) []foors.NodeID {
	var out []foors.NodeID
	for peer := range n.neighbors {
		if exclude != nil && peer == *exclude {
			continue
		}
		out = append(out, peer)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// intelligentTargets runs the greedy maximum-coverage selection with load
// tie-break.
func intelligentTargets(n *node, exclude *foors.NodeID, limit int, load loadFunc) []foors.NodeID {
	coverage := neighborCoverage(n, exclude)
	if len(coverage) == 0 {
		return nil
	}

	candidates := make([]foors.NodeID, 0, len(coverage))
	for peer := range coverage {
		candidates = append(candidates, peer)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	if len(candidates) <= limit {
		return candidates
	}

	selected := greedyCoverage(candidates, coverage, limit, load)
	if len(selected) == 0 {
		return []foors.NodeID{lowestLoadCandidate(candidates, load)}
	}
	return selected
}

// neighborCoverage maps peer -> set of sinks reachable via an active route
// through that peer, excluding the given peer if any.
func neighborCoverage(n *node, exclude *foors.NodeID) map[foors.NodeID]map[foors.SinkID]struct{} {
	coverage := make(map[foors.NodeID]map[foors.SinkID]struct{})
	for sink, entry := range n.routingTable {
		for peer := range entry.nextHops {
			if exclude != nil && peer == *exclude {
				continue
			}
			set, ok := coverage[peer]
			if !ok {
				set = make(map[foors.SinkID]struct{})
				coverage[peer] = set
			}
			set[sink] = struct{}{}
		}
	}
	return coverage
}

// greedyCoverage picks up to limit peers from candidates by repeatedly
// choosing the one with the highest marginal sink-coverage gain, breaking
// ties by lower current load and then by neighbor-id ordering, so two runs
// over identical state always pick the same targets. It keeps selecting
// until either limit is reached or candidates are exhausted, even once
// every remaining candidate's marginal gain drops to zero — once a cap
// allows more next-hops than there are distinct sinks to cover, the extra
// slots go to redundant candidates rather than being left unused.
func greedyCoverage(candidates []foors.NodeID, coverage map[foors.NodeID]map[foors.SinkID]struct{}, limit int, load loadFunc) []foors.NodeID {
	covered := make(map[foors.SinkID]struct{})
	remaining := append([]foors.NodeID(nil), candidates...)
	var selected []foors.NodeID

	for len(selected) < limit && len(remaining) > 0 {
		bestIdx := 0
		bestGain := marginalGain(coverage[remaining[0]], covered)
		bestLoad := load(remaining[0])
		for i := 1; i < len(remaining); i++ {
			peer := remaining[i]
			gain := marginalGain(coverage[peer], covered)
			peerLoad := load(peer)
			switch {
			case gain > bestGain:
				bestIdx, bestGain, bestLoad = i, gain, peerLoad
			case gain == bestGain && peerLoad < bestLoad:
				bestIdx, bestLoad = i, peerLoad
			}
		}
		winner := remaining[bestIdx]
		for s := range coverage[winner] {
			covered[s] = struct{}{}
		}
		selected = append(selected, winner)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return selected
}

func marginalGain(peerCoverage, covered map[foors.SinkID]struct{}) int {
	gain := 0
	for s := range peerCoverage {
		if _, ok := covered[s]; !ok {
			gain++
		}
	}
	return gain
}

func lowestLoadCandidate(candidates []foors.NodeID, load loadFunc) foors.NodeID {
	best := candidates[0]
	bestLoad := load(best)
	for _, c := range candidates[1:] {
		if l := load(c); l < bestLoad {
			best, bestLoad = c, l
		}
	}
	return best
}
