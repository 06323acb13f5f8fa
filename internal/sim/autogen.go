package sim

import (
	"math/rand"
	"sort"

	"foors"
)

// autoGenState tracks the auto-generation timer. It advances purely off
// accumulated tick deltas — there is no free-running real-time timer inside
// the single-threaded tick loop.
type autoGenState struct {
	enabled bool
	elapsed float64 // seconds since the last generation (or start)
}

var allSeverities = []foors.Severity{foors.Black, foors.Green, foors.Yellow, foors.Red}

// maybeAutoGenerate fires synthetic triage traffic: once auto-generation is
// on, every GenerationInterval seconds of accumulated sim time it picks one eligible
// source node uniformly at random and has it send a triage of a uniformly
// random severity. Eligible sources are source-typed nodes with at least
// one neighbor; if none are eligible the tick is skipped and the timer is
// still reset, so a single disconnected source can't build up a backlog of
// simultaneous generations the instant it reconnects.
func (m *Model) maybeAutoGenerate(dt float64) {
	if !m.autoGen.enabled {
		return
	}
	m.autoGen.elapsed += dt
	interval := m.params.GenerationInterval.Seconds()
	if interval <= 0 || m.autoGen.elapsed < interval {
		return
	}
	m.autoGen.elapsed = 0

	eligible := m.eligibleSources()
	if len(eligible) == 0 {
		return
	}
	pick := eligible[m.rng.Intn(len(eligible))]
	severity := allSeverities[m.rng.Intn(len(allSeverities))]
	m.sendTriage(m.nodes[pick], severity)
}

func (m *Model) eligibleSources() []foors.NodeID {
	var out []foors.NodeID
	for id, n := range m.nodes {
		if n.typ == foors.Source && len(n.neighbors) > 0 {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
