package trafficsim

// DefaultStopLineOffset is the distance in meters before the lane end at
// which vehicles halt on a non-green light.
const DefaultStopLineOffset = 10.0

// Lane is a one-directional road segment with its own traffic light and an
// ordered queue of vehicle ids. Every vehicle queued on a lane holds a
// back-reference to it.
type Lane struct {
	id         int
	length     float64
	speedLimit float64 // km/h, informational only
	stopOffset float64
	light      *TrafficLight
	vehicleIDs []int
}

// NewLane creates a lane of the given length governed by the supplied
// light. The speed limit is recorded but does not constrain motion.
func NewLane(id int, length, speedLimit float64, light *TrafficLight) *Lane {
	return &Lane{
		id:         id,
		length:     length,
		speedLimit: speedLimit,
		stopOffset: DefaultStopLineOffset,
		light:      light,
		vehicleIDs: make([]int, 0),
	}
}

// AddVehicle appends the vehicle to the lane's queue and points it at this
// lane
func (l *Lane) AddVehicle(v *Vehicle) {
	v.setLane(l)
	l.vehicleIDs = append(l.vehicleIDs, v.ID())
}

// LaneResult reports what happened on one lane during a single update
type LaneResult struct {
	LightChanged bool
	LightFrom    LightState
	LightTo      LightState
	Stopped      []*Vehicle
	Exited       []*Vehicle
}

// Update advances the light first, then every queued vehicle in insertion
// order. A vehicle whose position reaches the lane length is dropped from
// the queue, detached from the lane, and reported as exited; the caller
// releases it from the fleet within the same tick. Queued ids no longer
// present in the fleet are discarded.
func (l *Lane) Update(step int, fleet *Fleet) LaneResult {
	res := LaneResult{LightFrom: l.light.State()}
	res.LightChanged = l.light.Update(step)
	res.LightTo = l.light.State()

	kept := l.vehicleIDs[:0]
	for _, id := range l.vehicleIDs {
		v, ok := fleet.Get(id)
		if !ok {
			continue
		}
		if v.Move(step) {
			res.Stopped = append(res.Stopped, v)
		}
		if v.Position() >= l.length {
			v.setLane(nil)
			res.Exited = append(res.Exited, v)
			continue
		}
		kept = append(kept, id)
	}
	l.vehicleIDs = kept

	return res
}

// Vehicles resolves the lane's queue against the fleet, preserving
// insertion order
func (l *Lane) Vehicles(fleet *Fleet) []*Vehicle {
	out := make([]*Vehicle, 0, len(l.vehicleIDs))
	for _, id := range l.vehicleIDs {
		if v, ok := fleet.Get(id); ok {
			out = append(out, v)
		}
	}
	return out
}

// ID returns the lane id
func (l *Lane) ID() int {
	return l.id
}

// Length returns the lane length in meters
func (l *Lane) Length() float64 {
	return l.length
}

// SpeedLimit returns the posted limit in km/h
func (l *Lane) SpeedLimit() float64 {
	return l.speedLimit
}

// Light returns the lane's traffic light
func (l *Lane) Light() *TrafficLight {
	return l.light
}

// StopLine returns the halt position in meters from the lane start
func (l *Lane) StopLine() float64 {
	return l.length - l.stopOffset
}

// VehicleIDs returns a copy of the queued vehicle ids in insertion order
func (l *Lane) VehicleIDs() []int {
	ids := make([]int, len(l.vehicleIDs))
	copy(ids, l.vehicleIDs)
	return ids
}

// VehicleCount returns the number of queued vehicles
func (l *Lane) VehicleCount() int {
	return len(l.vehicleIDs)
}
