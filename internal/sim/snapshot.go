package sim

import (
	"sort"

	"foors"
)

// GetNodes returns a snapshot of every node, ordered by id for a stable,
// reproducible read.
func (m *Model) GetNodes() []foors.NodeView {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]foors.NodeID, 0, len(m.nodes))
	for id := range m.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	views := make([]foors.NodeView, 0, len(ids))
	for _, id := range ids {
		views = append(views, nodeView(m.nodes[id]))
	}
	return views
}

// GetNode returns one node's snapshot, if it exists.
func (m *Model) GetNode(id foors.NodeID) (foors.NodeView, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.nodes[id]
	if !ok {
		return foors.NodeView{}, false
	}
	return nodeView(n), true
}

func nodeView(n *node) foors.NodeView {
	neighbors := make([]foors.NodeID, 0, len(n.neighbors))
	for id := range n.neighbors {
		neighbors = append(neighbors, id)
	}
	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })

	routingTable := make(map[foors.SinkID]foors.RoutingTableEntry, len(n.routingTable))
	for s, entry := range n.routingTable {
		hops := make(map[foors.NodeID]int, len(entry.nextHops))
		for h, d := range entry.nextHops {
			hops[h] = d
		}
		routingTable[s] = foors.RoutingTableEntry{NextHops: hops, LastUpdate: entry.lastUpdate}
	}

	inactive := make(map[foors.SinkID]foors.InactiveRoutingEntry, len(n.inactiveRouting))
	for s, entry := range n.inactiveRouting {
		hops := make(map[foors.NodeID]int, len(entry.nextHops))
		for h, d := range entry.nextHops {
			hops[h] = d
		}
		inactive[s] = foors.InactiveRoutingEntry{NextHops: hops, InactiveSince: entry.inactiveSince}
	}

	return foors.NodeView{
		ID:               n.id,
		Type:             n.typ,
		Position:         n.pos,
		Velocity:         n.vel,
		Radius:           n.radius,
		ConnectionRadius: n.connectionRadius,
		Neighbors:        neighbors,
		RoutingTable:     routingTable,
		InactiveRouting:  inactive,
		RoutingState: foors.RoutingState{
			Mode:            n.routingState.mode,
			FloodingReason:  n.routingState.reason,
			ActiveRoutes:    n.routingState.activeRoutes,
			ExpiredRoutes:   n.routingState.expiredRoutes,
			InactiveRoutes:  n.routingState.inactiveRoutes,
			LastStateChange: n.routingState.lastStateChange,
		},
		QueuedTriages:  len(n.triageQueue),
		LastMessageAt:  n.lastMessageReceivedAt,
	}
}

// GetMessages returns a snapshot of every in-flight message, ordered by id.
func (m *Model) GetMessages() []foors.MessageView {
	m.mu.Lock()
	defer m.mu.Unlock()

	views := make([]foors.MessageView, 0, len(m.messages))
	for _, msg := range m.messages {
		views = append(views, foors.MessageView{
			ID:        msg.id,
			From:      msg.from,
			To:        msg.to,
			Progress:  msg.progress,
			Speed:     msg.speed,
			CreatedAt: msg.createdAt,
			Kind:      msg.kind,
			TriageID:  msg.triageID,
			Severity:  msg.severity,
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}

// GetConnections returns every symmetric link as one Connection per pair,
// with the lexicographically smaller id first so a pair is never reported
// twice in opposite orientations.
func (m *Model) GetConnections() []foors.Connection {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := m.connectionsLocked()
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// GetStats returns aggregate counters over the current world.
func (m *Model) GetStats() foors.Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := foors.Stats{
		ModeCounts:      make(map[foors.RoutingMode]int),
		TriagesObserved: len(m.sinkObserved),
	}
	for _, n := range m.nodes {
		stats.NodeCount++
		if n.typ == foors.Sink {
			stats.SinkCount++
		} else {
			stats.SourceCount++
		}
		stats.ModeCounts[n.routingState.mode]++
		stats.QueuedTriages += len(n.triageQueue)
	}
	stats.LinkCount = len(m.connectionsLocked())
	stats.InFlightCount = len(m.messages)
	return stats
}

// connectionsLocked is GetConnections' body without locking or sorting, for
// callers that already hold mu.
func (m *Model) connectionsLocked() []foors.Connection {
	seen := make(map[[2]foors.NodeID]struct{})
	var out []foors.Connection
	for id, n := range m.nodes {
		for peer := range n.neighbors {
			a, b := id, peer
			if b < a {
				a, b = b, a
			}
			key := [2]foors.NodeID{a, b}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, foors.Connection{A: a, B: b})
		}
	}
	return out
}
