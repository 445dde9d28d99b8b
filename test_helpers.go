package trafficsim

import (
	"sync"
	"testing"
)

// TestObserver is a mock observer for testing that captures all observer events
type TestObserver struct {
	mutex        sync.RWMutex
	Spawns       []VehicleEvent
	Exits        []VehicleEvent
	Stops        []VehicleEvent
	LightChanges []LightChangeEvent
	Ticks        []StepResult
}

type VehicleEvent struct {
	Vehicle *Vehicle
	Lane    *Lane
}

type LightChangeEvent struct {
	Lane *Lane
	From LightState
	To   LightState
}

// NewTestObserver creates a new test observer
func NewTestObserver() *TestObserver {
	return &TestObserver{
		Spawns:       make([]VehicleEvent, 0),
		Exits:        make([]VehicleEvent, 0),
		Stops:        make([]VehicleEvent, 0),
		LightChanges: make([]LightChangeEvent, 0),
		Ticks:        make([]StepResult, 0),
	}
}

// Observer interface implementations
func (o *TestObserver) OnVehicleSpawned(v *Vehicle, lane *Lane) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Spawns = append(o.Spawns, VehicleEvent{Vehicle: v, Lane: lane})
}

func (o *TestObserver) OnVehicleExited(v *Vehicle, lane *Lane) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Exits = append(o.Exits, VehicleEvent{Vehicle: v, Lane: lane})
}

func (o *TestObserver) OnTickCompleted(result StepResult) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Ticks = append(o.Ticks, result)
}

// ExtendedObserver interface implementations
func (o *TestObserver) OnVehicleStopped(v *Vehicle, lane *Lane) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Stops = append(o.Stops, VehicleEvent{Vehicle: v, Lane: lane})
}

func (o *TestObserver) OnLightChanged(lane *Lane, from LightState, to LightState) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.LightChanges = append(o.LightChanges, LightChangeEvent{Lane: lane, From: from, To: to})
}

// Helper methods for test assertions
func (o *TestObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Spawns = nil
	o.Exits = nil
	o.Stops = nil
	o.LightChanges = nil
	o.Ticks = nil
}

func (o *TestObserver) SpawnCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.Spawns)
}

func (o *TestObserver) ExitCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.Exits)
}

func (o *TestObserver) StopCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.Stops)
}

func (o *TestObserver) TickCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.Ticks)
}

func (o *TestObserver) LightChangeCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.LightChanges)
}

func (o *TestObserver) LastSpawn() *VehicleEvent {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if len(o.Spawns) == 0 {
		return nil
	}
	return &o.Spawns[len(o.Spawns)-1]
}

func (o *TestObserver) LastExit() *VehicleEvent {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if len(o.Exits) == 0 {
		return nil
	}
	return &o.Exits[len(o.Exits)-1]
}

func (o *TestObserver) LastLightChange() *LightChangeEvent {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if len(o.LightChanges) == 0 {
		return nil
	}
	return &o.LightChanges[len(o.LightChanges)-1]
}

// Test fixtures - common arrangements for testing

// CreateTestLight returns a default-cycle light driven to the given state
func CreateTestLight(state LightState) *TrafficLight {
	light := NewTrafficLight(10, 3, 7)
	for i := 0; light.State() != state && i < 20; i++ {
		light.Update(1)
	}
	return light
}

// CreateTestLane creates a lane with a fresh default-cycle light in the
// given state
func CreateTestLane(id int, length float64, state LightState) *Lane {
	return NewLane(id, length, 50, CreateTestLight(state))
}

// CreateTestSimulation builds a deterministic simulation from the default
// configuration
func CreateTestSimulation(t *testing.T, seed int64) *Simulation {
	t.Helper()
	sim, err := NewBuilder().WithSeed(seed).Build()
	if err != nil {
		t.Fatalf("Expected no error building simulation, got: %v", err)
	}
	return sim
}

// Test assertions and utilities

// AssertLightState checks if a light shows the expected state
func AssertLightState(t *testing.T, light *TrafficLight, expected LightState) {
	t.Helper()
	if light.State() != expected {
		t.Errorf("Expected light state %s, got %s", expected, light.State())
	}
}

// AssertVehicleCount checks how many vehicles a lane holds
func AssertVehicleCount(t *testing.T, lane *Lane, expected int) {
	t.Helper()
	if got := lane.VehicleCount(); got != expected {
		t.Errorf("Expected %d vehicles on lane %d, got %d", expected, lane.ID(), got)
	}
}

// AssertPosition checks a vehicle's position within a small tolerance
func AssertPosition(t *testing.T, v *Vehicle, expected float64) {
	t.Helper()
	const eps = 1e-9
	if diff := v.Position() - expected; diff > eps || diff < -eps {
		t.Errorf("Expected vehicle %d at position %v, got %v", v.ID(), expected, v.Position())
	}
}

// AssertHalted checks that a vehicle has been brought to a permanent stop
func AssertHalted(t *testing.T, v *Vehicle) {
	t.Helper()
	if v.Speed() != 0 {
		t.Errorf("Expected vehicle %d to be halted, speed is %v", v.ID(), v.Speed())
	}
}
