// Package trafficsim implements a discrete-time traffic micro-simulation:
// vehicles advance along fixed-length lanes governed by timed traffic
// lights, with probabilistic spawning and a fixed simulation horizon.
//
// A Simulation is assembled with a Builder and advanced one tick at a time
// with Step. Each tick runs in fixed phases: the clock advances, at most
// one vehicle spawns, then every lane updates its light and its vehicles
// in insertion order. Observers receive spawn, exit, stop, light-change
// and tick notifications as the simulation runs; the visualization
// package renders snapshots as terminal text.
package trafficsim

// New builds a simulation from the given configuration with a clock-seeded
// random source. Use NewBuilder for deterministic seeding or observers.
func New(cfg Config) (*Simulation, error) {
	return NewBuilder().WithConfig(cfg).Build()
}
