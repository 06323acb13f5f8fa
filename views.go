package foors

import "time"

// Position is a 2D coordinate in abstract simulation units.
type Position struct {
	X, Y float64
}

// RoutingTableEntry is a read-only view of routing_table[node][sink]:
// next-hop -> total hop count via that hop, plus the last BFS update.
type RoutingTableEntry struct {
	NextHops   map[NodeID]int
	LastUpdate time.Time
}

// InactiveRoutingEntry is a read-only view of a demoted route.
type InactiveRoutingEntry struct {
	NextHops      map[NodeID]int
	InactiveSince time.Time
}

// RoutingState summarizes a node's routing-mode classification.
type RoutingState struct {
	Mode            RoutingMode
	FloodingReason  FloodingReason
	ActiveRoutes    int
	ExpiredRoutes   int
	InactiveRoutes  int
	LastStateChange time.Time
}

// NodeView is a read-only snapshot of a single node, the shape external
// collaborators (renderer, CLI, gRPC daemon) observe through the
// subscription hook and the observation API. It never aliases engine
// memory: every field is copied or deep-copied at snapshot time.
type NodeView struct {
	ID               NodeID
	Type             NodeType
	Position         Position
	Velocity         Position
	Radius           float64
	ConnectionRadius float64
	Neighbors        []NodeID

	RoutingTable     map[SinkID]RoutingTableEntry
	InactiveRouting  map[SinkID]InactiveRoutingEntry
	RoutingState     RoutingState
	QueuedTriages    int
	LastMessageAt    time.Time
}

// MessageView is a read-only snapshot of a single in-flight message.
type MessageView struct {
	ID        MessageID
	From, To  NodeID
	Progress  float64
	Speed     float64
	CreatedAt time.Time
	Kind      MessageKind
	TriageID  TriageID
	Severity  Severity
}

// Connection is an undirected link between two nodes, as exposed to
// external collaborators (the renderer draws one line per connection).
type Connection struct {
	A, B NodeID
}

// Stats is the aggregate health/observability snapshot returned by
// get_stats().
type Stats struct {
	NodeCount      int
	LinkCount      int
	SinkCount      int
	SourceCount    int
	ModeCounts     map[RoutingMode]int
	QueuedTriages  int
	InFlightCount  int
	TriagesObserved int // distinct triages ever seen by any sink
}
