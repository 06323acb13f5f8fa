// Package sim implements the FOORS+ routing core: the per-tick control
// flow (apply_motion -> rebuild_links -> rebuild_routes -> classify_modes
// -> boundary_replay_on_new_links -> maybe_auto_generate -> advance_messages
// -> deliver_arrivals -> notify), its routing-table builder, mode
// classifier, target selector, message pipeline, and boundary replay.
package sim

import "time"

// Params holds the five dynamically-settable configuration values exposed
// on Model. Clamp enforces their documented bounds; every setter on Model
// funnels through Clamp so an out-of-range value never needs to be
// reported as an error — it is silently brought back into range.
type Params struct {
	ConnectionRadius       float64
	InactiveRoutingTimeout time.Duration
	RouteExpiry            time.Duration
	MessageSpeed           float64
	GenerationInterval     time.Duration
}

const (
	minInactiveRoutingTimeout = 1 * time.Second
	maxInactiveRoutingTimeout = 5 * time.Minute

	minGenerationInterval = 500 * time.Millisecond
	maxGenerationInterval  = 10 * time.Second
)

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		ConnectionRadius:       2.0,
		InactiveRoutingTimeout: 1 * time.Second,
		RouteExpiry:            5 * time.Minute,
		MessageSpeed:           2.0,
		GenerationInterval:     3 * time.Second,
	}
}

// Clamp brings every field back within its documented bounds in place.
func (p *Params) Clamp() {
	if p.ConnectionRadius <= 0 {
		p.ConnectionRadius = DefaultParams().ConnectionRadius
	}
	if p.InactiveRoutingTimeout < minInactiveRoutingTimeout {
		p.InactiveRoutingTimeout = minInactiveRoutingTimeout
	} else if p.InactiveRoutingTimeout > maxInactiveRoutingTimeout {
		p.InactiveRoutingTimeout = maxInactiveRoutingTimeout
	}
	if p.RouteExpiry <= 0 {
		p.RouteExpiry = DefaultParams().RouteExpiry
	}
	if p.MessageSpeed <= 0 {
		p.MessageSpeed = DefaultParams().MessageSpeed
	}
	if p.GenerationInterval < minGenerationInterval {
		p.GenerationInterval = minGenerationInterval
	} else if p.GenerationInterval > maxGenerationInterval {
		p.GenerationInterval = maxGenerationInterval
	}
}
