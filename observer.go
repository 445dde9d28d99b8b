package trafficsim

// Observer represents an entity that observes simulation lifecycle events
type Observer interface {
	// Required methods

	// OnVehicleSpawned is called when a new vehicle enters a lane
	OnVehicleSpawned(v *Vehicle, lane *Lane)

	// OnVehicleExited is called when a vehicle leaves the end of its lane
	OnVehicleExited(v *Vehicle, lane *Lane)

	// OnTickCompleted is called after every phase of a tick has run
	OnTickCompleted(result StepResult)
}

// ExtendedObserver provides additional optional observation methods
type ExtendedObserver interface {
	Observer

	// OnVehicleStopped is called when a vehicle halts at a stop line
	OnVehicleStopped(v *Vehicle, lane *Lane)

	// OnLightChanged is called when a lane's light transitions
	OnLightChanged(lane *Lane, from LightState, to LightState)
}

// BaseObserver provides a default implementation with no-op methods
type BaseObserver struct{}

// OnVehicleSpawned implements the required Observer method
func (o *BaseObserver) OnVehicleSpawned(v *Vehicle, lane *Lane) {
	// Default implementation - no operation
}

// OnVehicleExited implements the required Observer method
func (o *BaseObserver) OnVehicleExited(v *Vehicle, lane *Lane) {
	// Default implementation - no operation
}

// OnTickCompleted implements the required Observer method
func (o *BaseObserver) OnTickCompleted(result StepResult) {
	// Default implementation - no operation
}

// OnVehicleStopped implements the optional ExtendedObserver method
func (o *BaseObserver) OnVehicleStopped(v *Vehicle, lane *Lane) {
	// Default implementation - no operation
}

// OnLightChanged implements the optional ExtendedObserver method
func (o *BaseObserver) OnLightChanged(lane *Lane, from LightState, to LightState) {
	// Default implementation - no operation
}

// ObserverManager manages a collection of observers
type ObserverManager struct {
	observers []Observer
}

// NewObserverManager creates a new observer manager
func NewObserverManager() *ObserverManager {
	return &ObserverManager{
		observers: make([]Observer, 0),
	}
}

// AddObserver adds an observer to the manager
func (om *ObserverManager) AddObserver(observer Observer) {
	om.observers = append(om.observers, observer)
}

// RemoveObserver removes an observer from the manager
func (om *ObserverManager) RemoveObserver(observer Observer) {
	for i, obs := range om.observers {
		if obs == observer {
			om.observers = append(om.observers[:i], om.observers[i+1:]...)
			break
		}
	}
}

// NotifyVehicleSpawned notifies all observers of a new vehicle
func (om *ObserverManager) NotifyVehicleSpawned(v *Vehicle, lane *Lane) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		func() {
			defer func() {
				// Observer panicked - drop the panic rather than the tick
				recover()
			}()
			observer.OnVehicleSpawned(v, lane)
		}()
	}
}

// NotifyVehicleExited notifies all observers of a vehicle leaving its lane
func (om *ObserverManager) NotifyVehicleExited(v *Vehicle, lane *Lane) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		func() {
			defer func() {
				// Observer panicked - drop the panic rather than the tick
				recover()
			}()
			observer.OnVehicleExited(v, lane)
		}()
	}
}

// NotifyTickCompleted notifies all observers that a tick finished
func (om *ObserverManager) NotifyTickCompleted(result StepResult) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		func() {
			defer func() {
				// Observer panicked - drop the panic rather than the tick
				recover()
			}()
			observer.OnTickCompleted(result)
		}()
	}
}

// NotifyVehicleStopped notifies extended observers of a halt at a stop line
func (om *ObserverManager) NotifyVehicleStopped(v *Vehicle, lane *Lane) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			extObs.OnVehicleStopped(v, lane)
		}
	}
}

// NotifyLightChanged notifies extended observers of a light transition
func (om *ObserverManager) NotifyLightChanged(lane *Lane, from LightState, to LightState) {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			extObs.OnLightChanged(lane, from, to)
		}
	}
}
