package sim

import (
	"testing"
	"time"

	"foors"
)

func newTestModel(connRadius float64) *Model {
	p := DefaultParams()
	p.ConnectionRadius = connRadius
	return New(WithParams(p), WithSeed(1))
}

// TestLinearRelay covers a three-node relay: a source forwards a red
// triage two hops to a sink.
func TestLinearRelay(t *testing.T) {
	m := newTestModel(2.0)
	a := m.AddNode(foors.Source, foors.Position{X: 0, Y: 0})
	b := m.AddNode(foors.Source, foors.Position{X: 1.5, Y: 0})
	c := m.AddNode(foors.Sink, foors.Position{X: 3, Y: 0})

	av, _ := m.GetNode(a)
	bv, _ := m.GetNode(b)
	if av.RoutingState.Mode != foors.ModeIntelligent || bv.RoutingState.Mode != foors.ModeIntelligent {
		t.Fatalf("expected both relay nodes intelligent, got A=%v B=%v", av.RoutingState.Mode, bv.RoutingState.Mode)
	}
	if entry, ok := av.RoutingTable[c]; !ok || entry.NextHops[b] != 2 {
		t.Fatalf("expected A.routingTable[C] = {B: 2}, got %+v ok=%v", entry, ok)
	}
	if entry, ok := bv.RoutingTable[c]; !ok || entry.NextHops[c] != 1 {
		t.Fatalf("expected B.routingTable[C] = {C: 1}, got %+v ok=%v", entry, ok)
	}

	m.SendMessage(a, foors.TriageMessage, foors.Red)
	if len(m.GetMessages()) != 1 {
		t.Fatalf("expected 1 outgoing message after send, got %d", len(m.GetMessages()))
	}

	m.Tick(0.6)
	msgs := m.GetMessages()
	if len(msgs) != 1 || msgs[0].From != b || msgs[0].To != c {
		t.Fatalf("expected exactly one B->C message in flight, got %+v", msgs)
	}

	m.Tick(0.6)
	cv, _ := m.GetNode(c)
	if len(m.GetMessages()) != 0 {
		t.Fatalf("expected no in-flight messages after final hop, got %d", len(m.GetMessages()))
	}
	if cv.LastMessageAt.IsZero() {
		t.Fatal("expected C to have received the triage")
	}
}

// TestSeverityMultiPath covers a diamond topology where severity controls
// how many next-hops a send fans out to, one subtest per severity against
// a topology whose two relays give every severity the same two candidate
// next-hops to choose from.
func TestSeverityMultiPath(t *testing.T) {
	tests := []struct {
		severity foors.Severity
		want     int
	}{
		{foors.Black, 1},
		{foors.Green, 1},
		{foors.Yellow, 2},
		{foors.Red, 2},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			m := newTestModel(1.6)
			a := m.AddNode(foors.Source, foors.Position{X: 0, Y: 0})
			m.AddNode(foors.Source, foors.Position{X: 1, Y: 1})
			m.AddNode(foors.Source, foors.Position{X: 1, Y: -1})
			d := m.AddNode(foors.Sink, foors.Position{X: 2, Y: 0})

			av, _ := m.GetNode(a)
			entry, ok := av.RoutingTable[d]
			if !ok || len(entry.NextHops) != 2 {
				t.Fatalf("expected A to have 2 next-hops to D, got %+v ok=%v", entry, ok)
			}

			m.SendMessage(a, foors.TriageMessage, tt.severity)
			if got := len(m.GetMessages()); got != tt.want {
				t.Fatalf("severity %v: expected %d outgoing messages, got %d", tt.severity, tt.want, got)
			}
		})
	}
}

// TestReconnectionFlush covers an isolated source queuing a triage and
// flushing it once a peer comes into range.
func TestReconnectionFlush(t *testing.T) {
	m := newTestModel(2.0)
	a := m.AddNode(foors.Source, foors.Position{X: 0, Y: 0})

	m.SendMessage(a, foors.TriageMessage, foors.Yellow)
	av, _ := m.GetNode(a)
	if av.QueuedTriages != 1 {
		t.Fatalf("expected 1 queued triage, got %d", av.QueuedTriages)
	}
	if len(m.GetMessages()) != 0 {
		t.Fatalf("expected 0 outgoing messages while isolated, got %d", len(m.GetMessages()))
	}

	b := m.AddNode(foors.Source, foors.Position{X: 1, Y: 0})
	av, _ = m.GetNode(a)
	if av.QueuedTriages != 1 {
		t.Fatalf("placing a peer alone must not flush the queue yet, got %d queued", av.QueuedTriages)
	}

	m.Tick(0.1)
	av, _ = m.GetNode(a)
	if av.QueuedTriages != 0 {
		t.Fatalf("expected queue drained after the next tick, got %d", av.QueuedTriages)
	}
	msgs := m.GetMessages()
	if len(msgs) != 1 || msgs[0].From != a || msgs[0].To != b {
		t.Fatalf("expected exactly one A->B message, got %+v", msgs)
	}
}

// TestBoundaryReplayOnNewLink covers two previously-disjoint components
// bridging into range, where the newly-joined node must receive the
// catalog its new neighbor already holds.
func TestBoundaryReplayOnNewLink(t *testing.T) {
	m := newTestModel(2.0)
	a := m.AddNode(foors.Source, foors.Position{X: -10, Y: 0})
	s1 := m.AddNode(foors.Sink, foors.Position{X: -9, Y: 0})
	b := m.AddNode(foors.Source, foors.Position{X: 10, Y: 0})
	s2 := m.AddNode(foors.Sink, foors.Position{X: 11, Y: 0})

	m.SendMessage(a, foors.TriageMessage, foors.Red)
	m.Tick(1.0) // deliver A's triage to S1
	s1v, _ := m.GetNode(s1)
	if s1v.LastMessageAt.IsZero() {
		t.Fatal("expected S1 to have observed the triage before the bridge")
	}

	// B and S2 drift together so their own link survives the move; only the
	// gap between the two components closes.
	m.UpdateNodeVelocity(b, foors.Position{X: -180, Y: 0})
	m.UpdateNodeVelocity(s2, foors.Position{X: -180, Y: 0})
	m.Tick(0.1) // motion carries B from x=10 to x=-8, into range of A at x=-10

	msgsAfterBridge := m.GetMessages()
	replayed := 0
	for _, msg := range msgsAfterBridge {
		if msg.From == a && msg.To == b && msg.TriageID != "" {
			replayed++
		}
	}
	if replayed != 1 {
		t.Fatalf("expected the bridging tick to emit exactly one replayed A->B message, got %+v", msgsAfterBridge)
	}

	m.UpdateNodeVelocity(b, foors.Position{})
	m.UpdateNodeVelocity(s2, foors.Position{})
	m.Tick(1.0) // deliver the replayed message to B

	bv, _ := m.GetNode(b)
	if bv.LastMessageAt.IsZero() {
		t.Fatal("expected B to have received the replayed triage")
	}
	msgs := m.GetMessages()
	forwarded := false
	for _, msg := range msgs {
		if msg.From == b {
			forwarded = true
		}
	}
	if !forwarded {
		t.Fatal("expected B to be forwarding the replayed triage toward S2")
	}
	_ = s2
}

// TestLoopPrevention covers a flooding triangle: duplicate arrivals must be
// dropped, bounding the total number of messages ever created.
func TestLoopPrevention(t *testing.T) {
	m := newTestModel(2.0)
	a := m.AddNode(foors.Source, foors.Position{X: 0, Y: 0})
	m.AddNode(foors.Source, foors.Position{X: 1, Y: 0})
	m.AddNode(foors.Source, foors.Position{X: 0.5, Y: 0.8})

	m.SendMessage(a, foors.TriageMessage, foors.Red)

	for i := 0; i < 20 && len(m.GetMessages()) > 0; i++ {
		m.Tick(1.0)
	}

	if got := len(m.GetMessages()); got != 0 {
		t.Fatalf("expected the flood to terminate with no messages left in flight, got %d", got)
	}
	stats := m.GetStats()
	if stats.TriagesObserved != 0 {
		t.Fatalf("no sinks exist in this topology; expected 0 observed, got %d", stats.TriagesObserved)
	}
}

func TestSinkDisappearanceDemotion(t *testing.T) {
	m := newTestModel(2.0)
	a := m.AddNode(foors.Source, foors.Position{X: 0, Y: 0})
	b := m.AddNode(foors.Source, foors.Position{X: 1.5, Y: 0})
	c := m.AddNode(foors.Sink, foors.Position{X: 3, Y: 0})
	m.SetInactiveRoutingTimeout(1 * time.Second)

	m.RemoveNode(c)

	av, _ := m.GetNode(a)
	bv, _ := m.GetNode(b)
	if _, ok := av.RoutingTable[c]; ok {
		t.Fatal("expected A's active route to C to be gone")
	}
	if _, ok := av.InactiveRouting[c]; !ok {
		t.Fatal("expected A's route to C to be demoted to inactive")
	}
	if av.RoutingState.Mode != foors.ModeInactive || bv.RoutingState.Mode != foors.ModeInactive {
		t.Fatalf("expected both nodes inactive after sink removal, got A=%v B=%v", av.RoutingState.Mode, bv.RoutingState.Mode)
	}

	for i := 0; i < 20; i++ {
		m.Tick(0.1) // 2s total, past the 1s inactive timeout
	}
	av, _ = m.GetNode(a)
	if _, ok := av.InactiveRouting[c]; ok {
		t.Fatal("expected the inactive entry to be pruned after the timeout")
	}
	if av.RoutingState.Mode != foors.ModeFlooding || av.RoutingState.FloodingReason != foors.ReasonNoRoutes {
		t.Fatalf("expected A to settle into flooding/no-routes, got mode=%v reason=%v", av.RoutingState.Mode, av.RoutingState.FloodingReason)
	}
}

// TestNewSinkReplayOnReconnection covers two pre-existing sinks that become
// mutually reachable through an ordinary topology change (motion closing a
// gap) with no AddNode or ToggleNodeType call anywhere near the bridge: the
// reachability diff inside recomputeTopology must still trigger new-sink
// replay, carrying S1's already-observed triage toward S2.
func TestNewSinkReplayOnReconnection(t *testing.T) {
	m := newTestModel(2.0)
	a := m.AddNode(foors.Source, foors.Position{X: -10, Y: 0})
	s1 := m.AddNode(foors.Sink, foors.Position{X: -9, Y: 0})
	b := m.AddNode(foors.Source, foors.Position{X: 10, Y: 0})
	s2 := m.AddNode(foors.Sink, foors.Position{X: 11, Y: 0})

	m.SendMessage(s1, foors.TriageMessage, foors.Red)
	m.Tick(1.0) // S1 reaches no other sink yet, so the triage stays in S1's store

	// B and S2 drift together toward A so only the inter-component gap
	// closes; no node is added or retyped anywhere in this sequence.
	m.UpdateNodeVelocity(b, foors.Position{X: -180, Y: 0})
	m.UpdateNodeVelocity(s2, foors.Position{X: -180, Y: 0})
	m.Tick(0.1) // motion carries B (and S2) into range of A, bridging the two sink components
	m.UpdateNodeVelocity(b, foors.Position{})
	m.UpdateNodeVelocity(s2, foors.Position{})

	for i := 0; i < 10; i++ {
		m.Tick(1.0)
	}

	s2v, _ := m.GetNode(s2)
	if s2v.LastMessageAt.IsZero() {
		t.Fatal("expected S2 to have received S1's triage via new-sink replay after the reconnection")
	}
	_ = a
}
