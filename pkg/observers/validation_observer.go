package observers

import (
	"fmt"
	"sync"

	"trafficsim"
)

// ValidationObserver watches the event stream for impossible simulation
// behavior: lights skipping phases, vehicles exiting before spawning or
// after halting, and time running backwards. Violations are collected
// rather than reported immediately so a whole run can be checked at once.
type ValidationObserver struct {
	allowedTransitions map[trafficsim.LightState]trafficsim.LightState
	spawned            map[int]bool
	exited             map[int]bool
	stopped            map[int]bool
	lastElapsed        int
	violations         []string
	mutex              sync.RWMutex
}

// NewValidationObserver creates a new validation observer
func NewValidationObserver() *ValidationObserver {
	return &ValidationObserver{
		allowedTransitions: map[trafficsim.LightState]trafficsim.LightState{
			trafficsim.LightRed:    trafficsim.LightGreen,
			trafficsim.LightGreen:  trafficsim.LightYellow,
			trafficsim.LightYellow: trafficsim.LightRed,
		},
		spawned: make(map[int]bool),
		exited:  make(map[int]bool),
		stopped: make(map[int]bool),
	}
}

func (o *ValidationObserver) addViolation(message string) {
	o.violations = append(o.violations, message)
}

// OnVehicleSpawned validates vehicle creation
func (o *ValidationObserver) OnVehicleSpawned(v *trafficsim.Vehicle, lane *trafficsim.Lane) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if o.spawned[v.ID()] {
		o.addViolation(fmt.Sprintf("Vehicle #%d spawned twice", v.ID()))
	}
	o.spawned[v.ID()] = true
}

// OnVehicleExited validates the vehicle lifecycle. A vehicle that halted
// at a stop line keeps speed zero, so it can never reach the end of the
// lane afterwards.
func (o *ValidationObserver) OnVehicleExited(v *trafficsim.Vehicle, lane *trafficsim.Lane) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if !o.spawned[v.ID()] {
		o.addViolation(fmt.Sprintf("Vehicle #%d exited without spawning", v.ID()))
	}
	if o.exited[v.ID()] {
		o.addViolation(fmt.Sprintf("Vehicle #%d exited twice", v.ID()))
	}
	if o.stopped[v.ID()] {
		o.addViolation(fmt.Sprintf("Vehicle #%d exited after halting at a stop line", v.ID()))
	}
	o.exited[v.ID()] = true
}

// OnVehicleStopped validates a halt
func (o *ValidationObserver) OnVehicleStopped(v *trafficsim.Vehicle, lane *trafficsim.Lane) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if !o.spawned[v.ID()] {
		o.addViolation(fmt.Sprintf("Vehicle #%d stopped without spawning", v.ID()))
	}
	o.stopped[v.ID()] = true
}

// OnLightChanged validates the light against its fixed cycle
func (o *ValidationObserver) OnLightChanged(lane *trafficsim.Lane, from, to trafficsim.LightState) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if o.allowedTransitions[from] != to {
		o.addViolation(fmt.Sprintf("Lane %d: invalid light transition %s -> %s", lane.ID(), from, to))
	}
}

// OnTickCompleted validates that simulated time advances
func (o *ValidationObserver) OnTickCompleted(result trafficsim.StepResult) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if result.Elapsed <= o.lastElapsed {
		o.addViolation(fmt.Sprintf("Elapsed time did not advance: %d after %d", result.Elapsed, o.lastElapsed))
	}
	o.lastElapsed = result.Elapsed
}

// Violations returns all recorded violations
func (o *ValidationObserver) Violations() []string {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make([]string, len(o.violations))
	copy(result, o.violations)
	return result
}

// HasViolations returns whether any violations occurred
func (o *ValidationObserver) HasViolations() bool {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return len(o.violations) > 0
}

// Reset clears the recorded history
func (o *ValidationObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.spawned = make(map[int]bool)
	o.exited = make(map[int]bool)
	o.stopped = make(map[int]bool)
	o.lastElapsed = 0
	o.violations = nil
}
