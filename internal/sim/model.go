package sim

import (
	"math/rand"
	"sync"
	"time"

	"foors"
	"foors/internal/check"
	"foors/internal/watch"
)

// Ledger durably records triage-observed events across restarts. A Model
// with no ledger configured keeps its counters in memory only.
type Ledger interface {
	RecordObserved(triageID foors.TriageID)
}

// Telemetry receives per-tick operational measurements. A Model with no
// telemetry configured simply skips every call.
type Telemetry interface {
	RecordTick(d time.Duration, nodeCount, messageCount int)
	RecordMessageDelivered(kind foors.MessageKind)
	RecordTriageQueued()
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithParams overrides the starting simulation parameters.
func WithParams(p Params) Option {
	return func(m *Model) {
		p.Clamp()
		m.params = p
	}
}

// WithLedger attaches a durable triage-observed ledger.
func WithLedger(l Ledger) Option {
	return func(m *Model) { m.ledger = l }
}

// WithTelemetry attaches an operational-metrics sink.
func WithTelemetry(t Telemetry) Option {
	return func(m *Model) { m.telemetry = t }
}

// WithSeed fixes the auto-generation PRNG seed, for reproducible tests.
func WithSeed(seed int64) Option {
	return func(m *Model) { m.rng = newRand(seed) }
}

// Model is the full simulation aggregate: every node, every in-flight
// message, current parameters, and the subscription hub. All mutation and
// observation methods lock mu, so a Model can be safely exposed to a
// daemon's gRPC handlers running on arbitrary goroutines — the lock
// protects cross-goroutine access only; there is no concurrency within a
// single tick or mutation call.
type Model struct {
	mu sync.Mutex

	params Params
	now    time.Time

	nodes    map[foors.NodeID]*node
	messages []*message

	triageSeverity map[foors.TriageID]foors.Severity
	sinkObserved   map[foors.TriageID]struct{}

	autoGen autoGenState

	rng *rand.Rand

	ledger    Ledger
	telemetry Telemetry

	hub *watch.Hub
}

// New creates an empty Model with default parameters.
func New(opts ...Option) *Model {
	m := &Model{
		params:         DefaultParams(),
		nodes:          make(map[foors.NodeID]*node),
		triageSeverity: make(map[foors.TriageID]foors.Severity),
		sinkObserved:   make(map[foors.TriageID]struct{}),
		rng:            newRand(1),
		hub:            watch.NewHub(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe registers a listener to be called after every tick and every
// mutation. The returned func unsubscribes.
func (m *Model) Subscribe(l watch.Listener) func() {
	return m.hub.Subscribe(l)
}

// Reset clears every node, message, and triage record, returning the Model
// to its just-constructed state (parameters and auto-generation setting
// are preserved — Reset rewinds state, not configuration).
func (m *Model) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nodes = make(map[foors.NodeID]*node)
	m.messages = nil
	m.triageSeverity = make(map[foors.TriageID]foors.Severity)
	m.sinkObserved = make(map[foors.TriageID]struct{})
	m.autoGen.elapsed = 0
	m.now = time.Time{}

	m.hub.Notify()
}

// recomputeTopology re-derives links, routes, and modes from current node
// state. Every mutation that can affect topology (adding, removing,
// moving, or retyping a node, or changing the connection radius) calls
// this before returning, so reads are never stale relative to the
// mutation that just completed.
//
// It deliberately stops short of most boundary replay: new-link replay and
// queue flush are keyed off this tick's newly-appeared neighbors and are
// only run from Tick. New-sink replay is the exception — it runs right
// here, off a before/after diff of which sinks can reach which other
// sinks, so it fires for all three of its triggers alike: a sink being
// created, a sink being promoted from source, and two pre-existing sinks
// becoming mutually reachable through an ordinary topology change (e.g.
// motion reconnecting a previously-partitioned mesh). Driving it from the
// diff rather than from specific call sites means add_node and
// toggle_node_type don't need to invoke it themselves.
func (m *Model) recomputeTopology() {
	sinks := make(map[foors.SinkID]struct{})
	for id, n := range m.nodes {
		if n.typ == foors.Sink {
			sinks[id] = struct{}{}
		}
	}

	before := sinkReachability(m.nodes)
	recomputeLinks(m.nodes)
	rebuildRoutes(m.nodes, sinks, m.now, m.params.InactiveRoutingTimeout)
	classifyModes(m.nodes, m.now, m.params.RouteExpiry)
	after := sinkReachability(m.nodes)

	for _, s := range newlyReachableSinks(before, after) {
		m.newSinkReplay(s)
	}
}

// Tick advances the simulation by deltaSeconds, running the full
// apply_motion -> rebuild_links -> rebuild_routes -> classify_modes ->
// boundary_replay -> maybe_auto_generate -> advance_messages ->
// deliver_arrivals -> notify pipeline exactly once.
func (m *Model) Tick(deltaSeconds float64) {
	check.Assertf(deltaSeconds >= 0, "negative tick delta: %v", deltaSeconds)

	m.mu.Lock()
	defer m.mu.Unlock()

	start := time.Now()
	m.now = m.now.Add(time.Duration(deltaSeconds * float64(time.Second)))

	applyMotion(m.nodes, deltaSeconds)
	m.recomputeTopology()
	m.boundaryReplayPhase()
	m.maybeAutoGenerate(deltaSeconds)
	m.advanceAndDeliver(deltaSeconds)

	if m.telemetry != nil {
		m.telemetry.RecordTick(time.Since(start), len(m.nodes), len(m.messages))
	}

	m.hub.Notify()
}

func applyMotion(nodes map[foors.NodeID]*node, dt float64) {
	for _, n := range nodes {
		n.pos.X += n.vel.X * dt
		n.pos.Y += n.vel.Y * dt
	}
}

// AddNode places a new node and synchronizes the world immediately. If the
// node is a sink, recomputeTopology's reachability diff triggers new-sink
// replay for it right away, not on the next tick.
func (m *Model) AddNode(typ foors.NodeType, pos foors.Position) foors.NodeID {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := foors.NewNodeID()
	n := newNode(id, typ, pos, m.params.ConnectionRadius)
	m.nodes[id] = n

	m.recomputeTopology()
	m.hub.Notify()
	return id
}

// RemoveNode deletes a node and purges it from every other node's neighbor
// set. Unknown ids are a silent no-op with no notification.
func (m *Model) RemoveNode(id foors.NodeID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.nodes[id]; !ok {
		return
	}
	delete(m.nodes, id)
	for _, n := range m.nodes {
		delete(n.neighbors, id)
		delete(n.prevNeighbors, id)
	}

	m.recomputeTopology()
	m.hub.Notify()
}

// ToggleNodeType flips a node between source and sink. Becoming a sink
// triggers new-sink replay right away, via recomputeTopology's
// reachability diff.
func (m *Model) ToggleNodeType(id foors.NodeID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.nodes[id]
	if !ok {
		return
	}
	if n.typ == foors.Source {
		n.typ = foors.Sink
	} else {
		n.typ = foors.Source
	}

	m.recomputeTopology()
	m.hub.Notify()
}

// UpdateNodePosition sets a node's absolute position.
func (m *Model) UpdateNodePosition(id foors.NodeID, pos foors.Position) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.nodes[id]
	if !ok {
		return
	}
	n.pos = pos

	m.recomputeTopology()
	m.hub.Notify()
}

// UpdateNodeVelocity sets a node's per-second drift.
func (m *Model) UpdateNodeVelocity(id foors.NodeID, vel foors.Position) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.nodes[id]
	if !ok {
		return
	}
	n.vel = vel
	m.hub.Notify()
}

// SetConnectionRadius updates the global default and propagates it to
// every existing node.
func (m *Model) SetConnectionRadius(r float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.params.ConnectionRadius = r
	m.params.Clamp()
	for _, n := range m.nodes {
		n.connectionRadius = m.params.ConnectionRadius
	}

	m.recomputeTopology()
	m.hub.Notify()
}

// SetInactiveRoutingTimeout updates how long a demoted route is retained
// before deletion.
func (m *Model) SetInactiveRoutingTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.params.InactiveRoutingTimeout = d
	m.params.Clamp()

	m.recomputeTopology()
	m.hub.Notify()
}

// SetRouteExpiry updates the active-route freshness window used by mode
// classification.
func (m *Model) SetRouteExpiry(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.params.RouteExpiry = d
	m.params.Clamp()
	classifyModes(m.nodes, m.now, m.params.RouteExpiry)
	m.hub.Notify()
}

// SetMessageSpeed updates the progress-per-second rate applied to messages
// emitted from now on; in-flight messages keep their original speed.
func (m *Model) SetMessageSpeed(speed float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.params.MessageSpeed = speed
	m.params.Clamp()
	m.hub.Notify()
}

// SetTriageGenerationInterval updates the auto-generation cadence.
func (m *Model) SetTriageGenerationInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.params.GenerationInterval = d
	m.params.Clamp()
	m.hub.Notify()
}

// StartAutoGeneration enables automatic periodic triage generation.
func (m *Model) StartAutoGeneration() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoGen.enabled = true
	m.autoGen.elapsed = 0
	m.hub.Notify()
}

// StopAutoGeneration disables automatic periodic triage generation.
func (m *Model) StopAutoGeneration() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoGen.enabled = false
	m.hub.Notify()
}

// IsAutoGenerationActive reports whether auto-generation is currently on.
func (m *Model) IsAutoGenerationActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.autoGen.enabled
}

// SendMessage sends a message from the given node. Unknown ids are a
// silent no-op.
func (m *Model) SendMessage(from foors.NodeID, kind foors.MessageKind, severity foors.Severity) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.nodes[from]
	if !ok {
		return
	}
	if kind == foors.TriageMessage {
		m.sendTriage(n, severity)
	} else {
		m.sendNormal(n)
	}
	m.hub.Notify()
}
