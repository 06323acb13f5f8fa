package sim

import (
	"time"

	"foors"
)

// classifyModes recomputes the routing-mode precedence table for every
// node. last_state_change is only touched on an actual mode transition.
func classifyModes(nodes map[foors.NodeID]*node, now time.Time, routeExpiry time.Duration) {
	for _, n := range nodes {
		mode, reason, active, expired, inactive := classifyOne(n, now, routeExpiry)

		n.routingState.activeRoutes = active
		n.routingState.expiredRoutes = expired
		n.routingState.inactiveRoutes = inactive

		if n.routingState.mode != mode {
			n.routingState.lastStateChange = now
		}
		n.routingState.mode = mode
		n.routingState.reason = reason
	}
}

func classifyOne(n *node, now time.Time, routeExpiry time.Duration) (mode foors.RoutingMode, reason foors.FloodingReason, active, expired, inactiveCount int) {
	active, expired = countActiveExpired(n, now, routeExpiry)
	inactiveCount = len(n.inactiveRouting)

	if len(n.neighbors) == 0 {
		return foors.ModeNoConnections, foors.ReasonNoConnections, active, expired, inactiveCount
	}
	if n.typ == foors.Sink && active == 0 && expired == 0 && inactiveCount == 0 {
		return foors.ModeIntelligent, foors.ReasonNone, active, expired, inactiveCount
	}
	if inactiveCount > 0 {
		return foors.ModeInactive, foors.ReasonHasInactiveRoutes, active, expired, inactiveCount
	}
	if active > 0 {
		return foors.ModeIntelligent, foors.ReasonNone, active, expired, inactiveCount
	}
	if expired > 0 {
		return foors.ModeFlooding, foors.ReasonRoutesExpired, active, expired, inactiveCount
	}
	return foors.ModeFlooding, foors.ReasonNoRoutes, active, expired, inactiveCount
}

func countActiveExpired(n *node, now time.Time, routeExpiry time.Duration) (active, expired int) {
	for _, entry := range n.routingTable {
		if now.Sub(entry.lastUpdate) > routeExpiry {
			expired++
		} else {
			active++
		}
	}
	return active, expired
}
