package trafficsim

import "time"

// LaneConfig describes one lane to build
type LaneConfig struct {
	ID         int
	Length     float64 // meters
	SpeedLimit float64 // km/h, informational only
}

// Config holds every tunable of a simulation run
type Config struct {
	GreenDuration  int
	YellowDuration int
	RedDuration    int

	SpawnProbability float64
	MinSpeed         float64 // km/h
	MaxSpeed         float64 // km/h

	StopLineOffset float64 // meters before the lane end

	Horizon   int           // total simulated time units
	StepSize  int           // time units advanced per tick
	TickDelay time.Duration // wall-clock pause between ticks

	Lanes []LaneConfig
}

// DefaultConfig returns the canonical arrangement: a 10/3/7 light cycle,
// 0.3 spawn probability, speeds in [20, 50] km/h, two lanes of 500 and
// 600 meters, and a 60-unit horizon stepped one unit every 500ms.
func DefaultConfig() Config {
	return Config{
		GreenDuration:    10,
		YellowDuration:   3,
		RedDuration:      7,
		SpawnProbability: 0.3,
		MinSpeed:         20,
		MaxSpeed:         50,
		StopLineOffset:   DefaultStopLineOffset,
		Horizon:          60,
		StepSize:         1,
		TickDelay:        500 * time.Millisecond,
		Lanes: []LaneConfig{
			{ID: 1, Length: 500, SpeedLimit: 50},
			{ID: 2, Length: 600, SpeedLimit: 40},
		},
	}
}

// Validate checks the configuration and returns the first problem found
func (c Config) Validate() error {
	if c.GreenDuration < 1 {
		return NewInvalidDurationError("green_duration", c.GreenDuration)
	}
	if c.YellowDuration < 1 {
		return NewInvalidDurationError("yellow_duration", c.YellowDuration)
	}
	if c.RedDuration < 1 {
		return NewInvalidDurationError("red_duration", c.RedDuration)
	}
	if c.SpawnProbability < 0 || c.SpawnProbability > 1 {
		return NewInvalidProbabilityError(c.SpawnProbability)
	}
	if c.MinSpeed <= 0 || c.MaxSpeed < c.MinSpeed {
		return NewInvalidSpeedRangeError(c.MinSpeed, c.MaxSpeed)
	}
	if c.StopLineOffset < 0 {
		return NewConfigurationError(ErrCodeInvalidOffset, "stop_line_offset", "offset must not be negative")
	}
	if c.Horizon < 1 {
		return NewInvalidDurationError("horizon", c.Horizon)
	}
	if c.StepSize < 1 {
		return NewInvalidDurationError("step_size", c.StepSize)
	}
	if c.TickDelay < 0 {
		return NewConfigurationError(ErrCodeInvalidDuration, "tick_delay", "delay must not be negative")
	}
	if len(c.Lanes) == 0 {
		return NewNoLanesError()
	}
	seen := make(map[int]bool, len(c.Lanes))
	for _, lc := range c.Lanes {
		if lc.Length <= 0 {
			return NewInvalidLaneError(lc.ID, "length must be positive")
		}
		if seen[lc.ID] {
			return NewDuplicateLaneError(lc.ID)
		}
		seen[lc.ID] = true
	}
	return nil
}
