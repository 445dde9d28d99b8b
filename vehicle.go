package trafficsim

// VehicleType identifies the kind of a vehicle
type VehicleType int

const (
	VehicleCar VehicleType = iota
	VehicleBus
	VehicleTruck
	VehicleMotorcycle

	numVehicleTypes // sentinel, keep last
)

// String returns the name of the vehicle type
func (t VehicleType) String() string {
	switch t {
	case VehicleCar:
		return "CAR"
	case VehicleBus:
		return "BUS"
	case VehicleTruck:
		return "TRUCK"
	case VehicleMotorcycle:
		return "MOTORCYCLE"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns the single-character marker drawn on a rendered track
func (t VehicleType) Symbol() byte {
	switch t {
	case VehicleCar:
		return 'C'
	case VehicleBus:
		return 'B'
	case VehicleTruck:
		return 'T'
	case VehicleMotorcycle:
		return 'M'
	default:
		return '?'
	}
}

// Vehicle is a single moving unit on a lane. Position is measured in
// meters from the lane start and never decreases while the vehicle is
// active.
type Vehicle struct {
	id       int
	vtype    VehicleType
	speed    float64 // km/h
	position float64 // meters
	lane     *Lane
}

// NewVehicle creates a vehicle at position zero with no lane assigned
func NewVehicle(id int, vtype VehicleType, speed float64) *Vehicle {
	return &Vehicle{
		id:    id,
		vtype: vtype,
		speed: speed,
	}
}

// Move advances the vehicle by one step of the given size. When the lane's
// light is not green and this step would carry the vehicle from before the
// stop line onto or past it, the vehicle halts instead: speed drops to
// zero and position stays put. A halted vehicle does not start again, even
// once the light turns green. Move returns true on the step the vehicle
// halts. A vehicle with no lane does not move.
func (v *Vehicle) Move(step int) bool {
	if v.lane == nil {
		return false
	}

	mps := v.speed * 1000.0 / 3600.0
	next := v.position + mps*float64(step)

	light := v.lane.Light()
	stop := v.lane.StopLine()
	if light != nil && light.State() != LightGreen && v.position < stop && next >= stop {
		v.speed = 0
		return true
	}

	v.position = next
	return false
}

// ID returns the vehicle id
func (v *Vehicle) ID() int {
	return v.id
}

// Type returns the vehicle type
func (v *Vehicle) Type() VehicleType {
	return v.vtype
}

// Symbol returns the marker for the vehicle's type
func (v *Vehicle) Symbol() byte {
	return v.vtype.Symbol()
}

// Speed returns the current speed in km/h
func (v *Vehicle) Speed() float64 {
	return v.speed
}

// SetSpeed overrides the current speed in km/h
func (v *Vehicle) SetSpeed(speed float64) {
	v.speed = speed
}

// Position returns the distance in meters from the lane start
func (v *Vehicle) Position() float64 {
	return v.position
}

// SetPosition places the vehicle at the given distance from the lane start
func (v *Vehicle) SetPosition(position float64) {
	v.position = position
}

// Lane returns the lane the vehicle is on, or nil once it has exited
func (v *Vehicle) Lane() *Lane {
	return v.lane
}

func (v *Vehicle) setLane(l *Lane) {
	v.lane = l
}
