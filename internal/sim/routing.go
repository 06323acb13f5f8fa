package sim

import (
	"time"

	"foors"
	"foors/internal/check"
)

// bfsDistances runs breadth-first search over the undirected neighbor
// graph starting at start, mirroring the queue/depth-map idiom used by
// graph libraries in the wild (enqueue with depth, pop in FIFO order,
// record first-seen depth). It returns hop count per reachable node;
// start itself has distance 0 and unreachable nodes are absent from the
// map.
func bfsDistances(nodes map[foors.NodeID]*node, start foors.NodeID) map[foors.NodeID]int {
	dist := map[foors.NodeID]int{start: 0}
	queue := []foors.NodeID{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curDist := dist[cur]

		n, ok := nodes[cur]
		if !ok {
			continue
		}
		for peer := range n.neighbors {
			if _, seen := dist[peer]; seen {
				continue
			}
			dist[peer] = curDist + 1
			queue = append(queue, peer)
		}
	}
	return dist
}

// rebuildRoutes demotes routes to sinks that no longer exist, runs BFS
// from every remaining sink to (re)populate or demote every node's
// routing_table entry for that sink, then deletes inactive entries past
// the configured timeout.
//
// Every node N != S gets a routing_table[N][S] entry when reachable, sink
// or source alike; only the self-route is excluded. This matters for
// sink-to-sink reachability: new-sink replay walks every other sink's
// routing-table entry for the newly-joined sink, which requires sinks to
// hold routes to other sinks, not just sources. See DESIGN.md.
func rebuildRoutes(nodes map[foors.NodeID]*node, sinks map[foors.SinkID]struct{}, now time.Time, inactiveTimeout time.Duration) {
	demoteVanishedSinks(nodes, sinks, now)

	for s := range sinks {
		dist := bfsDistances(nodes, s)
		for id, n := range nodes {
			if id == s {
				continue
			}
			updateRouteForSink(n, s, dist, now)
		}
	}

	pruneExpiredInactive(nodes, now, inactiveTimeout)

	for _, n := range nodes {
		for s := range n.routingTable {
			_, alsoInactive := n.inactiveRouting[s]
			check.Assertf(!alsoInactive, "sink %s present in both active and inactive routing tables for node %s", s, n.id)
		}
	}
}

// demoteVanishedSinks moves routing_table[N][S] to inactive for every S
// that is no longer in the sink set — this runs before BFS so a sink that
// was removed or toggled to source this tick demotes immediately.
func demoteVanishedSinks(nodes map[foors.NodeID]*node, sinks map[foors.SinkID]struct{}, now time.Time) {
	for _, n := range nodes {
		for s, entry := range n.routingTable {
			if _, stillSink := sinks[s]; stillSink {
				continue
			}
			demote(n, s, entry, now)
		}
	}
}

func demote(n *node, s foors.SinkID, entry *routeEntry, now time.Time) {
	n.inactiveRouting[s] = &inactiveEntry{
		nextHops:      entry.nextHops,
		inactiveSince: now,
	}
	delete(n.routingTable, s)
}

// updateRouteForSink applies one sink's BFS result to one node.
func updateRouteForSink(n *node, s foors.SinkID, dist map[foors.NodeID]int, now time.Time) {
	d, reachable := dist[n.id]
	if reachable {
		nextHops := make(map[foors.NodeID]int)
		for peer := range n.neighbors {
			if pd, ok := dist[peer]; ok && pd == d-1 {
				nextHops[peer] = pd + 1
			}
		}
		if len(nextHops) == 0 {
			// BFS guarantees a predecessor at d-1 for any d>0; an empty
			// result here means our own bookkeeping is inconsistent.
			return
		}
		n.routingTable[s] = &routeEntry{nextHops: nextHops, lastUpdate: now}
		delete(n.inactiveRouting, s)
		return
	}

	if existing, ok := n.routingTable[s]; ok {
		demote(n, s, existing, now)
	}
	// No prior entry and still unreachable: nothing to do.
}

func pruneExpiredInactive(nodes map[foors.NodeID]*node, now time.Time, timeout time.Duration) {
	for _, n := range nodes {
		for s, entry := range n.inactiveRouting {
			if now.Sub(entry.inactiveSince) > timeout {
				delete(n.inactiveRouting, s)
			}
		}
	}
}
