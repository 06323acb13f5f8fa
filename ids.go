// Package foors implements the FOORS+ routing core: a decentralized,
// event-driven routing engine for intermittent short-range mesh networks.
// The engine itself lives in internal/sim; this package holds the stable
// identifier types and read-only snapshot types external collaborators
// (renderer, CLI, gRPC daemon) observe the engine through.
package foors

import "github.com/google/uuid"

// NodeID identifies a node for the life of the simulation.
type NodeID string

// SinkID identifies a sink. A SinkID always equals the NodeID of the node
// while it is acting as a sink — they share a namespace, not two.
type SinkID = NodeID

// MessageID identifies an in-flight message.
type MessageID string

// TriageID identifies a triage report, globally unique and stable.
type TriageID string

// NewNodeID allocates a fresh, globally unique NodeID.
func NewNodeID() NodeID { return NodeID(uuid.NewString()) }

// NewMessageID allocates a fresh, globally unique MessageID.
func NewMessageID() MessageID { return MessageID(uuid.NewString()) }

// NewTriageID allocates a fresh, globally unique TriageID.
func NewTriageID() TriageID { return TriageID(uuid.NewString()) }

// NodeType distinguishes triage producers from triage collectors.
type NodeType uint8

const (
	Source NodeType = iota
	Sink
)

func (t NodeType) String() string {
	switch t {
	case Source:
		return "source"
	case Sink:
		return "sink"
	default:
		return "unknown"
	}
}

// Severity ranks triage urgency. Red is highest, black lowest.
type Severity uint8

const (
	Black Severity = iota
	Green
	Yellow
	Red
)

func (s Severity) String() string {
	switch s {
	case Black:
		return "black"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// SeverityCap returns the multi-route cap for a triage send/forward of this
// severity: the maximum number of distinct next-hops that may be targeted.
func (s Severity) SeverityCap() int {
	switch s {
	case Red:
		return 3
	case Yellow:
		return 2
	default: // Green, Black
		return 1
	}
}

// MessageKind distinguishes plain connectivity traffic from triage payloads.
type MessageKind uint8

const (
	Normal MessageKind = iota
	TriageMessage
)

func (k MessageKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case TriageMessage:
		return "triage"
	default:
		return "unknown"
	}
}

// RoutingMode is a node's current forwarding discipline.
type RoutingMode uint8

const (
	ModeIntelligent RoutingMode = iota
	ModeFlooding
	ModeInactive
	ModeNoConnections
)

func (m RoutingMode) String() string {
	switch m {
	case ModeIntelligent:
		return "intelligent"
	case ModeFlooding:
		return "flooding"
	case ModeInactive:
		return "inactive"
	case ModeNoConnections:
		return "no-connections"
	default:
		return "unknown"
	}
}

// FloodingReason explains why a node is in flooding (or inactive) mode,
// for observability only — it never drives behavior.
type FloodingReason uint8

const (
	ReasonNone FloodingReason = iota
	ReasonNoConnections
	ReasonHasInactiveRoutes
	ReasonRoutesExpired
	ReasonNoRoutes
)

func (r FloodingReason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonNoConnections:
		return "no-connections"
	case ReasonHasInactiveRoutes:
		return "has-inactive-routes"
	case ReasonRoutesExpired:
		return "routes-expired"
	case ReasonNoRoutes:
		return "no-routes"
	default:
		return "unknown"
	}
}
