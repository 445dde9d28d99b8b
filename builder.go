package trafficsim

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Builder assembles a Simulation step by step. A fresh builder starts from
// DefaultConfig, so Build on an untouched builder yields the canonical
// two-lane arrangement.
type Builder struct {
	cfg       Config
	rng       *rand.Rand
	observers []Observer
	lanesSet  bool
}

// NewBuilder creates a builder seeded with DefaultConfig
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// WithConfig replaces the entire configuration
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.cfg = cfg
	b.lanesSet = true
	return b
}

// WithLane adds a lane. The first call discards the default lanes.
func (b *Builder) WithLane(id int, length, speedLimit float64) *Builder {
	if !b.lanesSet {
		b.cfg.Lanes = nil
		b.lanesSet = true
	}
	b.cfg.Lanes = append(b.cfg.Lanes, LaneConfig{
		ID:         id,
		Length:     length,
		SpeedLimit: speedLimit,
	})
	return b
}

// WithLightDurations sets the green, yellow and red dwell times
func (b *Builder) WithLightDurations(green, yellow, red int) *Builder {
	b.cfg.GreenDuration = green
	b.cfg.YellowDuration = yellow
	b.cfg.RedDuration = red
	return b
}

// WithSpawnProbability sets the per-tick chance of a new vehicle
func (b *Builder) WithSpawnProbability(p float64) *Builder {
	b.cfg.SpawnProbability = p
	return b
}

// WithSpeedRange sets the km/h bounds for spawned vehicles
func (b *Builder) WithSpeedRange(min, max float64) *Builder {
	b.cfg.MinSpeed = min
	b.cfg.MaxSpeed = max
	return b
}

// WithHorizon sets the simulated time after which Running reports false
func (b *Builder) WithHorizon(units int) *Builder {
	b.cfg.Horizon = units
	return b
}

// WithRand injects the random source used for spawning
func (b *Builder) WithRand(rng *rand.Rand) *Builder {
	b.rng = rng
	return b
}

// WithSeed is shorthand for WithRand over a deterministic source
func (b *Builder) WithSeed(seed int64) *Builder {
	b.rng = rand.New(rand.NewSource(seed))
	return b
}

// WithObserver registers an observer on the built simulation
func (b *Builder) WithObserver(o Observer) *Builder {
	b.observers = append(b.observers, o)
	return b
}

// Build validates the configuration and assembles the simulation. Without
// an injected random source the simulation is seeded from the clock.
func (b *Builder) Build() (*Simulation, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	rng := b.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	lanes := make([]*Lane, 0, len(b.cfg.Lanes))
	for _, lc := range b.cfg.Lanes {
		light := NewTrafficLight(b.cfg.GreenDuration, b.cfg.YellowDuration, b.cfg.RedDuration)
		lane := NewLane(lc.ID, lc.Length, lc.SpeedLimit, light)
		lane.stopOffset = b.cfg.StopLineOffset
		lanes = append(lanes, lane)
	}

	sim := &Simulation{
		runID:     uuid.New().String(),
		cfg:       b.cfg,
		lanes:     lanes,
		fleet:     NewFleet(),
		rng:       rng,
		observers: NewObserverManager(),
	}
	for _, o := range b.observers {
		sim.AddObserver(o)
	}
	return sim, nil
}
