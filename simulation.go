package trafficsim

import "math/rand"

// StepResult summarizes one simulation tick
type StepResult struct {
	Elapsed int
	Spawned *Vehicle   // nil when no vehicle spawned this tick
	Exited  []*Vehicle // vehicles that left their lane this tick
}

// Simulation owns the lanes, the vehicle fleet and the clock. Every tick
// runs in fixed phases: time advance, probabilistic spawn, then per-lane
// update with the light before the vehicles. Simulation is not safe for
// concurrent use; callers driving it from several goroutines must
// serialize access themselves.
type Simulation struct {
	runID     string
	cfg       Config
	lanes     []*Lane
	fleet     *Fleet
	rng       *rand.Rand
	elapsed   int
	observers *ObserverManager
}

// Step advances the simulation by step time units and reports what
// happened. Vehicles that exit a lane are released from the fleet before
// Step returns.
func (s *Simulation) Step(step int) StepResult {
	s.elapsed += step
	res := StepResult{Elapsed: s.elapsed}

	if s.rng.Float64() < s.cfg.SpawnProbability {
		v := s.spawnVehicle()
		res.Spawned = v
		s.observers.NotifyVehicleSpawned(v, v.Lane())
	}

	for _, lane := range s.lanes {
		lr := lane.Update(step, s.fleet)
		if lr.LightChanged {
			s.observers.NotifyLightChanged(lane, lr.LightFrom, lr.LightTo)
		}
		for _, v := range lr.Stopped {
			s.observers.NotifyVehicleStopped(v, lane)
		}
		for _, v := range lr.Exited {
			s.fleet.Release(v.ID())
			s.observers.NotifyVehicleExited(v, lane)
		}
		res.Exited = append(res.Exited, lr.Exited...)
	}

	s.observers.NotifyTickCompleted(res)
	return res
}

// spawnVehicle draws a type, a speed and a lane, then registers the new
// vehicle with the fleet and the chosen lane
func (s *Simulation) spawnVehicle() *Vehicle {
	vtype := VehicleType(s.rng.Intn(int(numVehicleTypes)))
	speed := s.cfg.MinSpeed + s.rng.Float64()*(s.cfg.MaxSpeed-s.cfg.MinSpeed)
	lane := s.lanes[s.rng.Intn(len(s.lanes))]

	v := NewVehicle(s.fleet.NextID(), vtype, speed)
	s.fleet.Add(v)
	lane.AddVehicle(v)
	return v
}

// Running reports whether elapsed time is still short of the horizon
func (s *Simulation) Running() bool {
	return s.elapsed < s.cfg.Horizon
}

// RunID returns the unique id of this simulation run
func (s *Simulation) RunID() string {
	return s.runID
}

// Elapsed returns the simulated time units advanced so far
func (s *Simulation) Elapsed() int {
	return s.elapsed
}

// Config returns a copy of the configuration the simulation was built with
func (s *Simulation) Config() Config {
	return s.cfg
}

// Lanes returns the lanes in their fixed update order
func (s *Simulation) Lanes() []*Lane {
	return s.lanes
}

// Fleet returns the canonical vehicle store
func (s *Simulation) Fleet() *Fleet {
	return s.fleet
}

// Vehicles returns the vehicles queued on the given lane in insertion
// order
func (s *Simulation) Vehicles(lane *Lane) []*Vehicle {
	return lane.Vehicles(s.fleet)
}

// AddObserver registers an observer for simulation lifecycle events
func (s *Simulation) AddObserver(o Observer) {
	s.observers.AddObserver(o)
}

// RemoveObserver unregisters a previously added observer
func (s *Simulation) RemoveObserver(o Observer) {
	s.observers.RemoveObserver(o)
}
