package sim

import "foors"

// boundaryReplayPhase runs queue flush and new-link replay for every node.
// It must run after recomputeTopology so routing tables and modes reflect
// this tick's topology. New-sink replay is not run here — recomputeTopology
// already drives it directly, off a reachability diff rather than off the
// tick boundary (see recomputeTopology's doc comment).
func (m *Model) boundaryReplayPhase() {
	for _, n := range m.nodes {
		// A triage is only ever queued while its node is isolated, so a
		// non-empty queue on a node that now has neighbors means it has
		// reconnected since queuing, whichever call formed the link.
		if len(n.triageQueue) > 0 && len(n.neighbors) > 0 {
			m.flushQueue(n)
		}
		for _, peer := range newNeighbors(n) {
			m.newLinkReplay(n, peer)
		}
	}
}

// flushQueue handles a node whose neighbor set just became non-empty: it
// floods every queued triage to every current neighbor, then clears the
// queue. The queue is cleared before emission so a triage that
// somehow re-queues during this same pass (it can't, since emit never
// re-enters triageQueue synchronously) is never dropped silently.
func (m *Model) flushQueue(n *node) {
	queue := n.triageQueue
	n.triageQueue = nil
	for _, q := range queue {
		for peer := range n.neighbors {
			m.emit(n.id, peer, foors.TriageMessage, q.triageID, q.severity)
		}
	}
}

// newLinkReplay handles the new-link case: when node n gains neighbor p,
// n replays every triage it has already seen that p (or, via p's own
// routing table, some sink reachable through p) has not.
func (m *Model) newLinkReplay(n *node, p foors.NodeID) {
	peer, ok := m.nodes[p]
	if !ok {
		return
	}

	if peer.typ == foors.Sink {
		for t := range n.triageStore {
			if _, seen := peer.triageStore[t]; seen {
				continue
			}
			m.emit(n.id, p, foors.TriageMessage, t, m.triageSeverity[t])
		}
		return
	}

	reachable := make(map[foors.SinkID]struct{}, len(peer.routingTable))
	for s := range peer.routingTable {
		reachable[s] = struct{}{}
	}

	for t := range n.triageStore {
		if _, seen := peer.triageStore[t]; seen {
			continue
		}
		if !anyUnsent(n.sentTriagesToSinks[t], reachable) {
			continue
		}
		m.emit(n.id, p, foors.TriageMessage, t, m.triageSeverity[t])
		n.markTargeted(t, reachable)
	}
}

// anyUnsent reports whether some sink in candidates is absent from sent.
func anyUnsent(sent map[foors.SinkID]struct{}, candidates map[foors.SinkID]struct{}) bool {
	for s := range candidates {
		if _, ok := sent[s]; !ok {
			return true
		}
	}
	return false
}

// sinkReachability returns, for every sink S, the set of other sinks that
// currently hold a route to S (S present in that sink's routing table).
func sinkReachability(nodes map[foors.NodeID]*node) map[foors.SinkID]map[foors.SinkID]struct{} {
	reach := make(map[foors.SinkID]map[foors.SinkID]struct{})
	for id, n := range nodes {
		if n.typ != foors.Sink {
			continue
		}
		for s := range n.routingTable {
			if reach[s] == nil {
				reach[s] = make(map[foors.SinkID]struct{})
			}
			reach[s][id] = struct{}{}
		}
	}
	return reach
}

// newlyReachableSinks compares two sinkReachability snapshots and returns
// every sink that gained at least one new reaching sink between them. This
// is the "newly reachable by another sink" new-sink-replay trigger: it
// also covers a sink's own creation or promotion, since neither has any
// reaching sink in the "before" snapshot.
func newlyReachableSinks(before, after map[foors.SinkID]map[foors.SinkID]struct{}) []foors.SinkID {
	var newly []foors.SinkID
	for s, froms := range after {
		for from := range froms {
			if _, had := before[s][from]; !had {
				newly = append(newly, s)
				break
			}
		}
	}
	return newly
}

// newSinkReplay handles the new-sink case: a sink S that just became
// reachable from another sink (because it was just created, just toggled
// from source, or an ordinary topology change newly bridged it to an
// already-existing sink) prompts every other sink S' that now has a route
// to S to replay, via that route's next-hops, every triage S' holds that S
// has not already seen and has not already targeted towards S.
func (m *Model) newSinkReplay(s foors.SinkID) {
	target := sinkSet(s)
	sNode, ok := m.nodes[s]
	if !ok {
		return
	}

	for id, other := range m.nodes {
		if id == s || other.typ != foors.Sink {
			continue
		}
		entry, reachable := other.routingTable[s]
		if !reachable {
			continue
		}
		for t := range other.triageStore {
			if _, seen := sNode.triageStore[t]; seen {
				continue
			}
			if other.allSinksTargeted(t, target) {
				continue
			}
			for hop := range entry.nextHops {
				m.emit(other.id, hop, foors.TriageMessage, t, m.triageSeverity[t])
			}
			other.markTargeted(t, target)
		}
	}
}
