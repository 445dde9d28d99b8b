package trafficsim

// LightState represents the signal a traffic light is showing
type LightState int

const (
	// LightRed halts traffic approaching the stop line
	LightRed LightState = iota
	// LightYellow warns that red is imminent
	LightYellow
	// LightGreen lets traffic pass
	LightGreen
)

// String returns the name of the light state
func (s LightState) String() string {
	switch s {
	case LightRed:
		return "RED"
	case LightYellow:
		return "YELLOW"
	case LightGreen:
		return "GREEN"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns the marker displayed for the light state
func (s LightState) Symbol() string {
	switch s {
	case LightGreen:
		return "🟢"
	case LightYellow:
		return "🟡"
	case LightRed:
		return "🔴"
	default:
		return "?"
	}
}

// TrafficLight is a timer-driven signal cycling GREEN -> YELLOW -> RED ->
// GREEN. Each state holds for its configured dwell time; on a transition
// the timer resets to zero and any time beyond the threshold is discarded,
// not carried over into the next state.
type TrafficLight struct {
	state  LightState
	green  int
	yellow int
	red    int
	timer  int
}

// NewTrafficLight creates a light with the given per-state dwell times,
// starting red with a zero timer
func NewTrafficLight(green, yellow, red int) *TrafficLight {
	return &TrafficLight{
		state:  LightRed,
		green:  green,
		yellow: yellow,
		red:    red,
	}
}

// Update advances the internal timer by step and performs at most one
// transition per call. It returns true when the state changed.
func (l *TrafficLight) Update(step int) bool {
	l.timer += step
	switch l.state {
	case LightGreen:
		if l.timer >= l.green {
			l.state = LightYellow
			l.timer = 0
			return true
		}
	case LightYellow:
		if l.timer >= l.yellow {
			l.state = LightRed
			l.timer = 0
			return true
		}
	case LightRed:
		if l.timer >= l.red {
			l.state = LightGreen
			l.timer = 0
			return true
		}
	}
	return false
}

// State returns the current light state
func (l *TrafficLight) State() LightState {
	return l.state
}
