package sim

import (
	"time"

	"foors"
	"foors/internal/check"
)

// message is the mutable in-flight unit.
type message struct {
	id        foors.MessageID
	from, to  foors.NodeID
	progress  float64
	speed     float64
	createdAt time.Time
	kind      foors.MessageKind
	triageID  foors.TriageID
	severity  foors.Severity
}

// sinksBeingTargeted computes the set used identically by a fresh send and
// by forward suppression: the sinks a node is currently pushing a triage
// towards — itself, if it is a sink, plus every sink in its routing table.
func sinksBeingTargeted(n *node) map[foors.SinkID]struct{} {
	set := make(map[foors.SinkID]struct{}, len(n.routingTable)+1)
	if n.typ == foors.Sink {
		set[n.id] = struct{}{}
	}
	for s := range n.routingTable {
		set[s] = struct{}{}
	}
	return set
}

// loadFuncFor returns a loadFunc counting in-flight messages from `from`
// to each candidate peer (progress < 1).
func (m *Model) loadFuncFor(from foors.NodeID) loadFunc {
	return func(peer foors.NodeID) int {
		count := 0
		for _, msg := range m.messages {
			if msg.from == from && msg.to == peer && msg.progress < 1 {
				count++
			}
		}
		return count
	}
}

// assertForwardTargetsAreNeighbors checks that selectTargets never hands
// back a peer that has since dropped out of n's neighbor set; targets are
// computed from the routing table and mode, both of which must stay
// consistent with n.neighbors at the moment of forwarding.
func assertForwardTargetsAreNeighbors(n *node, targets []foors.NodeID) {
	for _, t := range targets {
		_, ok := n.neighbors[t]
		check.Assertf(ok, "next-hop %s is not a current neighbor of %s at forward time", t, n.id)
	}
}

func (m *Model) emit(from, to foors.NodeID, kind foors.MessageKind, triageID foors.TriageID, severity foors.Severity) {
	m.messages = append(m.messages, &message{
		id:        foors.NewMessageID(),
		from:      from,
		to:        to,
		progress:  0,
		speed:     m.params.MessageSpeed,
		createdAt: m.now,
		kind:      kind,
		triageID:  triageID,
		severity:  severity,
	})
}

// sendTriage allocates a new triage report from a node and either queues
// it (if isolated) or emits it to the node's selected targets.
func (m *Model) sendTriage(from *node, severity foors.Severity) foors.TriageID {
	triageID := foors.NewTriageID()
	from.triageStore[triageID] = struct{}{}
	m.triageSeverity[triageID] = severity
	if from.typ == foors.Sink {
		m.recordSinkObserved(triageID)
	}

	if len(from.neighbors) == 0 {
		from.triageQueue = append(from.triageQueue, queuedTriage{triageID: triageID, severity: severity, queuedAt: m.now})
		if m.telemetry != nil {
			m.telemetry.RecordTriageQueued()
		}
		return triageID
	}

	targets := selectTargets(from, nil, foors.TriageMessage, severity, m.loadFuncFor(from.id))
	assertForwardTargetsAreNeighbors(from, targets)
	for _, t := range targets {
		m.emit(from.id, t, foors.TriageMessage, triageID, severity)
	}

	from.markTargeted(triageID, sinksBeingTargeted(from))
	return triageID
}

// sendNormal emits a non-triage message to the node's selected targets, if
// any. It follows the same target-selection contract as a triage send
// (capFor returns 1 for non-triage kinds) with no store/queue interaction,
// since only triage reports are deduplicated or queued on disconnection.
func (m *Model) sendNormal(from *node) {
	targets := selectTargets(from, nil, foors.Normal, foors.Black, m.loadFuncFor(from.id))
	assertForwardTargetsAreNeighbors(from, targets)
	for _, t := range targets {
		m.emit(from.id, t, foors.Normal, "", 0)
	}
}

// advanceAndDeliver progresses every message, processes arrivals for
// messages that crossed from <1 to >=1 in insertion order, then drops
// delivered messages. Messages emitted during arrival processing are
// appended to m.messages but are never visited within this same pass,
// since arrived is computed up front — this guarantees termination.
func (m *Model) advanceAndDeliver(dt float64) {
	arrived := make([]*message, 0)
	for _, msg := range m.messages {
		before := msg.progress
		msg.progress += msg.speed * dt
		if before < 1 && msg.progress >= 1 {
			arrived = append(arrived, msg)
		}
	}

	for _, msg := range arrived {
		m.processArrival(msg)
	}

	kept := m.messages[:0]
	for _, msg := range m.messages {
		if msg.progress < 1 {
			kept = append(kept, msg)
		}
	}
	m.messages = kept
}

// processArrival handles one message reaching its destination: dedup and
// store-insert for triage reports, then forwarding to any next targets.
func (m *Model) processArrival(msg *message) {
	n, ok := m.nodes[msg.to]
	if !ok {
		return // node removed mid-flight; message simply vanishes
	}
	n.lastMessageReceivedAt = m.now
	if m.telemetry != nil {
		m.telemetry.RecordMessageDelivered(msg.kind)
	}

	isTriage := msg.kind == foors.TriageMessage
	if isTriage {
		_, inStore := n.triageStore[msg.triageID]
		if inStore && (n.routingState.mode == foors.ModeFlooding || n.routingState.mode == foors.ModeInactive) {
			return // strict loop-prevention drop
		}
		n.triageStore[msg.triageID] = struct{}{}
		if _, known := m.triageSeverity[msg.triageID]; !known {
			m.triageSeverity[msg.triageID] = msg.severity
		}
		if n.typ == foors.Sink {
			m.recordSinkObserved(msg.triageID)
		}
		if len(n.neighbors) == 0 {
			n.triageQueue = append(n.triageQueue, queuedTriage{triageID: msg.triageID, severity: msg.severity, queuedAt: m.now})
			if m.telemetry != nil {
				m.telemetry.RecordTriageQueued()
			}
			return
		}
	}

	exclude := msg.from
	forwardTargets := selectTargets(n, &exclude, msg.kind, msg.severity, m.loadFuncFor(n.id))
	assertForwardTargetsAreNeighbors(n, forwardTargets)

	if isTriage && n.routingState.mode == foors.ModeIntelligent {
		targeting := sinksBeingTargeted(n)
		if n.allSinksTargeted(msg.triageID, targeting) {
			return // per-sink suppression: drop without forwarding
		}
	}

	for _, t := range forwardTargets {
		m.emit(n.id, t, msg.kind, msg.triageID, msg.severity)
	}

	if isTriage {
		n.markTargeted(msg.triageID, sinksBeingTargeted(n))
	}
}

func (m *Model) recordSinkObserved(triageID foors.TriageID) {
	if _, ok := m.sinkObserved[triageID]; !ok {
		m.sinkObserved[triageID] = struct{}{}
		if m.ledger != nil {
			m.ledger.RecordObserved(triageID)
		}
	}
}
