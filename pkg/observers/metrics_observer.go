package observers

import (
	"sync"

	"gonum.org/v1/gonum/stat"

	"trafficsim"
)

// MetricsObserver collects aggregate metrics about a simulation run
type MetricsObserver struct {
	spawned      map[trafficsim.VehicleType]int
	exited       map[trafficsim.VehicleType]int
	stopped      int
	ticks        int
	lightChanges int
	speeds       []float64
	transits     []float64
	spawnTick    map[int]int
	mutex        sync.RWMutex
}

// Summary is a point-in-time snapshot of the collected metrics
type Summary struct {
	Spawned      int
	Exited       int
	Stopped      int
	Active       int
	Ticks        int
	LightChanges int
	MeanSpeed    float64
	SpeedStdDev  float64
	MeanTransit  float64
}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{
		spawned:   make(map[trafficsim.VehicleType]int),
		exited:    make(map[trafficsim.VehicleType]int),
		spawnTick: make(map[int]int),
	}
}

// OnVehicleSpawned records the spawn count and entry speed
func (o *MetricsObserver) OnVehicleSpawned(v *trafficsim.Vehicle, lane *trafficsim.Lane) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.spawned[v.Type()]++
	o.speeds = append(o.speeds, v.Speed())
	o.spawnTick[v.ID()] = o.ticks + 1
}

// OnVehicleExited records the exit count and transit time
func (o *MetricsObserver) OnVehicleExited(v *trafficsim.Vehicle, lane *trafficsim.Lane) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.exited[v.Type()]++
	if spawnedAt, ok := o.spawnTick[v.ID()]; ok {
		o.transits = append(o.transits, float64(o.ticks+1-spawnedAt))
		delete(o.spawnTick, v.ID())
	}
}

// OnVehicleStopped records a halt at a stop line
func (o *MetricsObserver) OnVehicleStopped(v *trafficsim.Vehicle, lane *trafficsim.Lane) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.stopped++
}

// OnLightChanged records a traffic light transition
func (o *MetricsObserver) OnLightChanged(lane *trafficsim.Lane, from, to trafficsim.LightState) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.lightChanges++
}

// OnTickCompleted records the completed tick
func (o *MetricsObserver) OnTickCompleted(result trafficsim.StepResult) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.ticks++
}

// SpawnedCounts returns the number of spawned vehicles per type
func (o *MetricsObserver) SpawnedCounts() map[trafficsim.VehicleType]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[trafficsim.VehicleType]int)
	for vtype, count := range o.spawned {
		result[vtype] = count
	}
	return result
}

// ExitedCounts returns the number of exited vehicles per type
func (o *MetricsObserver) ExitedCounts() map[trafficsim.VehicleType]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[trafficsim.VehicleType]int)
	for vtype, count := range o.exited {
		result[vtype] = count
	}
	return result
}

// StoppedCount returns the number of halts recorded so far
func (o *MetricsObserver) StoppedCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return o.stopped
}

// TickCount returns the number of completed ticks
func (o *MetricsObserver) TickCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return o.ticks
}

// LightChangeCount returns the number of light transitions
func (o *MetricsObserver) LightChangeCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return o.lightChanges
}

// Summarize computes a snapshot of the run so far
func (o *MetricsObserver) Summarize() Summary {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	s := Summary{
		Stopped:      o.stopped,
		Ticks:        o.ticks,
		LightChanges: o.lightChanges,
	}
	for _, count := range o.spawned {
		s.Spawned += count
	}
	for _, count := range o.exited {
		s.Exited += count
	}
	s.Active = s.Spawned - s.Exited

	if len(o.speeds) > 0 {
		s.MeanSpeed = stat.Mean(o.speeds, nil)
	}
	if len(o.speeds) > 1 {
		s.SpeedStdDev = stat.StdDev(o.speeds, nil)
	}
	if len(o.transits) > 0 {
		s.MeanTransit = stat.Mean(o.transits, nil)
	}
	return s
}

// Reset clears all collected metrics
func (o *MetricsObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.spawned = make(map[trafficsim.VehicleType]int)
	o.exited = make(map[trafficsim.VehicleType]int)
	o.stopped = 0
	o.ticks = 0
	o.lightChanges = 0
	o.speeds = nil
	o.transits = nil
	o.spawnTick = make(map[int]int)
}
