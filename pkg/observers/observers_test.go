package observers_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trafficsim"
	"trafficsim/pkg/observers"
)

var (
	_ trafficsim.ExtendedObserver = (*observers.LoggingObserver)(nil)
	_ trafficsim.ExtendedObserver = (*observers.MetricsObserver)(nil)
	_ trafficsim.ExtendedObserver = (*observers.ValidationObserver)(nil)
)

func TestLoggingObserver(t *testing.T) {
	t.Run("Logs spawn with structured fields", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		obs := observers.NewLoggingObserver(logger).WithRunID("run-123")

		lane := trafficsim.NewLane(3, 500, 50, trafficsim.NewTrafficLight(10, 3, 7))
		vehicle := trafficsim.NewVehicle(7, trafficsim.VehicleBus, 42.5)
		obs.OnVehicleSpawned(vehicle, lane)

		require.Len(t, hook.Entries, 1)
		entry := hook.LastEntry()
		assert.Equal(t, logrus.InfoLevel, entry.Level)
		assert.Equal(t, "Vehicle spawned", entry.Message)
		assert.Equal(t, "run-123", entry.Data["run_id"])
		assert.Equal(t, 7, entry.Data["vehicle"])
		assert.Equal(t, "BUS", entry.Data["type"])
		assert.Equal(t, 3, entry.Data["lane"])
	})

	t.Run("Logs light change and exit", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		obs := observers.NewLoggingObserver(logger)

		lane := trafficsim.NewLane(1, 500, 50, trafficsim.NewTrafficLight(10, 3, 7))
		obs.OnLightChanged(lane, trafficsim.LightRed, trafficsim.LightGreen)
		obs.OnVehicleExited(trafficsim.NewVehicle(1, trafficsim.VehicleCar, 30), lane)

		require.Len(t, hook.Entries, 2)
		assert.Equal(t, "Light changed", hook.Entries[0].Message)
		assert.Equal(t, "RED", hook.Entries[0].Data["from"])
		assert.Equal(t, "GREEN", hook.Entries[0].Data["to"])
		assert.Equal(t, "Vehicle exited", hook.Entries[1].Message)
	})

	t.Run("Tick summary logs at debug level", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
		obs := observers.NewLoggingObserver(logger)

		obs.OnTickCompleted(trafficsim.StepResult{Elapsed: 5})

		require.Len(t, hook.Entries, 1)
		assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
		assert.Equal(t, 5, hook.LastEntry().Data["elapsed"])
	})

	t.Run("Nil logger falls back to standard logger", func(t *testing.T) {
		obs := observers.NewLoggingObserver(nil)
		assert.NotNil(t, obs)
	})
}

func TestMetricsObserver(t *testing.T) {
	t.Run("Counts events per vehicle type", func(t *testing.T) {
		obs := observers.NewMetricsObserver()
		lane := trafficsim.NewLane(1, 500, 50, trafficsim.NewTrafficLight(10, 3, 7))

		car1 := trafficsim.NewVehicle(1, trafficsim.VehicleCar, 30)
		car2 := trafficsim.NewVehicle(2, trafficsim.VehicleCar, 50)
		bus := trafficsim.NewVehicle(3, trafficsim.VehicleBus, 40)

		obs.OnVehicleSpawned(car1, lane)
		obs.OnVehicleSpawned(car2, lane)
		obs.OnVehicleSpawned(bus, lane)
		obs.OnVehicleExited(car1, lane)
		obs.OnVehicleStopped(bus, lane)
		obs.OnLightChanged(lane, trafficsim.LightRed, trafficsim.LightGreen)
		obs.OnTickCompleted(trafficsim.StepResult{Elapsed: 1})
		obs.OnTickCompleted(trafficsim.StepResult{Elapsed: 2})

		assert.Equal(t, 2, obs.SpawnedCounts()[trafficsim.VehicleCar])
		assert.Equal(t, 1, obs.SpawnedCounts()[trafficsim.VehicleBus])
		assert.Equal(t, 1, obs.ExitedCounts()[trafficsim.VehicleCar])
		assert.Equal(t, 1, obs.StoppedCount())
		assert.Equal(t, 1, obs.LightChangeCount())
		assert.Equal(t, 2, obs.TickCount())
	})

	t.Run("Summarize computes speed statistics", func(t *testing.T) {
		obs := observers.NewMetricsObserver()
		lane := trafficsim.NewLane(1, 500, 50, trafficsim.NewTrafficLight(10, 3, 7))

		obs.OnVehicleSpawned(trafficsim.NewVehicle(1, trafficsim.VehicleCar, 30), lane)
		obs.OnVehicleSpawned(trafficsim.NewVehicle(2, trafficsim.VehicleTruck, 50), lane)

		summary := obs.Summarize()
		assert.Equal(t, 2, summary.Spawned)
		assert.Equal(t, 0, summary.Exited)
		assert.Equal(t, 2, summary.Active)
		assert.InDelta(t, 40.0, summary.MeanSpeed, 1e-9)
		assert.InDelta(t, 14.142135623, summary.SpeedStdDev, 1e-6)
	})

	t.Run("Summarize computes transit time in ticks", func(t *testing.T) {
		obs := observers.NewMetricsObserver()
		lane := trafficsim.NewLane(1, 500, 50, trafficsim.NewTrafficLight(10, 3, 7))
		vehicle := trafficsim.NewVehicle(1, trafficsim.VehicleCar, 30)

		// Spawned during tick 1, exits during tick 3
		obs.OnVehicleSpawned(vehicle, lane)
		obs.OnTickCompleted(trafficsim.StepResult{Elapsed: 1})
		obs.OnTickCompleted(trafficsim.StepResult{Elapsed: 2})
		obs.OnVehicleExited(vehicle, lane)
		obs.OnTickCompleted(trafficsim.StepResult{Elapsed: 3})

		summary := obs.Summarize()
		assert.Equal(t, 1, summary.Exited)
		assert.InDelta(t, 2.0, summary.MeanTransit, 1e-9)
	})

	t.Run("Single speed sample has zero deviation", func(t *testing.T) {
		obs := observers.NewMetricsObserver()
		lane := trafficsim.NewLane(1, 500, 50, trafficsim.NewTrafficLight(10, 3, 7))

		obs.OnVehicleSpawned(trafficsim.NewVehicle(1, trafficsim.VehicleCar, 30), lane)

		summary := obs.Summarize()
		assert.InDelta(t, 30.0, summary.MeanSpeed, 1e-9)
		assert.Equal(t, 0.0, summary.SpeedStdDev)
	})

	t.Run("Reset clears everything", func(t *testing.T) {
		obs := observers.NewMetricsObserver()
		lane := trafficsim.NewLane(1, 500, 50, trafficsim.NewTrafficLight(10, 3, 7))

		obs.OnVehicleSpawned(trafficsim.NewVehicle(1, trafficsim.VehicleCar, 30), lane)
		obs.OnTickCompleted(trafficsim.StepResult{Elapsed: 1})
		obs.Reset()

		summary := obs.Summarize()
		assert.Equal(t, 0, summary.Spawned)
		assert.Equal(t, 0, summary.Ticks)
		assert.Equal(t, 0.0, summary.MeanSpeed)
	})

	t.Run("Collects from a live run", func(t *testing.T) {
		obs := observers.NewMetricsObserver()
		sim, err := trafficsim.NewBuilder().
			WithSpawnProbability(1.0).
			WithHorizon(10).
			WithSeed(42).
			WithObserver(obs).
			Build()
		require.NoError(t, err)

		for sim.Running() {
			sim.Step(1)
		}

		summary := obs.Summarize()
		assert.Equal(t, 10, summary.Spawned)
		assert.Equal(t, 10, summary.Ticks)
		assert.Equal(t, summary.Spawned-summary.Exited, summary.Active)
		assert.GreaterOrEqual(t, summary.MeanSpeed, 20.0)
		assert.LessOrEqual(t, summary.MeanSpeed, 50.0)
		// Both default lanes flip to green at tick 7
		assert.Equal(t, 2, summary.LightChanges)
	})
}

func TestValidationObserver(t *testing.T) {
	t.Run("Clean run produces no violations", func(t *testing.T) {
		obs := observers.NewValidationObserver()
		sim, err := trafficsim.NewBuilder().
			WithSeed(99).
			WithObserver(obs).
			Build()
		require.NoError(t, err)

		for sim.Running() {
			sim.Step(1)
		}

		assert.False(t, obs.HasViolations(), "Violations: %v", obs.Violations())
	})

	t.Run("Detects a light skipping a phase", func(t *testing.T) {
		obs := observers.NewValidationObserver()
		lane := trafficsim.NewLane(2, 500, 50, trafficsim.NewTrafficLight(10, 3, 7))

		obs.OnLightChanged(lane, trafficsim.LightRed, trafficsim.LightYellow)

		require.True(t, obs.HasViolations())
		assert.Contains(t, obs.Violations()[0], "invalid light transition RED -> YELLOW")
	})

	t.Run("Detects an exit after a halt", func(t *testing.T) {
		obs := observers.NewValidationObserver()
		lane := trafficsim.NewLane(1, 500, 50, trafficsim.NewTrafficLight(10, 3, 7))
		vehicle := trafficsim.NewVehicle(4, trafficsim.VehicleCar, 30)

		obs.OnVehicleSpawned(vehicle, lane)
		obs.OnVehicleStopped(vehicle, lane)
		obs.OnVehicleExited(vehicle, lane)

		require.True(t, obs.HasViolations())
		assert.Contains(t, obs.Violations()[0], "exited after halting")
	})

	t.Run("Detects an exit without a spawn", func(t *testing.T) {
		obs := observers.NewValidationObserver()
		lane := trafficsim.NewLane(1, 500, 50, trafficsim.NewTrafficLight(10, 3, 7))

		obs.OnVehicleExited(trafficsim.NewVehicle(9, trafficsim.VehicleBus, 30), lane)

		require.True(t, obs.HasViolations())
		assert.Contains(t, obs.Violations()[0], "exited without spawning")
	})

	t.Run("Detects a stalled clock", func(t *testing.T) {
		obs := observers.NewValidationObserver()

		obs.OnTickCompleted(trafficsim.StepResult{Elapsed: 1})
		obs.OnTickCompleted(trafficsim.StepResult{Elapsed: 1})

		require.True(t, obs.HasViolations())
		assert.Contains(t, obs.Violations()[0], "did not advance")
	})

	t.Run("Reset clears history", func(t *testing.T) {
		obs := observers.NewValidationObserver()
		obs.OnTickCompleted(trafficsim.StepResult{Elapsed: 0})
		require.True(t, obs.HasViolations())

		obs.Reset()
		assert.False(t, obs.HasViolations())
		assert.Empty(t, obs.Violations())
	})
}
