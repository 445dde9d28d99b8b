// Package observers provides ready-made observers for monitoring simulation runs
package observers

import (
	log "github.com/sirupsen/logrus"

	"trafficsim"
)

// LoggingObserver writes a structured log line for every simulation event
type LoggingObserver struct {
	logger *log.Logger
	runID  string
}

// NewLoggingObserver creates a logging observer backed by the given logger.
// A nil logger falls back to the logrus standard logger.
func NewLoggingObserver(logger *log.Logger) *LoggingObserver {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &LoggingObserver{logger: logger}
}

// WithRunID tags every log line with the given run identifier
func (o *LoggingObserver) WithRunID(runID string) *LoggingObserver {
	o.runID = runID
	return o
}

func (o *LoggingObserver) entry() *log.Entry {
	if o.runID == "" {
		return log.NewEntry(o.logger)
	}
	return o.logger.WithField("run_id", o.runID)
}

// OnVehicleSpawned logs the new vehicle and its starting lane
func (o *LoggingObserver) OnVehicleSpawned(v *trafficsim.Vehicle, lane *trafficsim.Lane) {
	o.entry().WithFields(log.Fields{
		"vehicle": v.ID(),
		"type":    v.Type().String(),
		"speed":   v.Speed(),
		"lane":    lane.ID(),
	}).Info("Vehicle spawned")
}

// OnVehicleExited logs a vehicle leaving the end of its lane
func (o *LoggingObserver) OnVehicleExited(v *trafficsim.Vehicle, lane *trafficsim.Lane) {
	o.entry().WithFields(log.Fields{
		"vehicle":  v.ID(),
		"type":     v.Type().String(),
		"lane":     lane.ID(),
		"position": v.Position(),
	}).Info("Vehicle exited")
}

// OnVehicleStopped logs a vehicle halting at the stop line
func (o *LoggingObserver) OnVehicleStopped(v *trafficsim.Vehicle, lane *trafficsim.Lane) {
	o.entry().WithFields(log.Fields{
		"vehicle":  v.ID(),
		"type":     v.Type().String(),
		"lane":     lane.ID(),
		"position": v.Position(),
	}).Info("Vehicle stopped at light")
}

// OnLightChanged logs a traffic light transition
func (o *LoggingObserver) OnLightChanged(lane *trafficsim.Lane, from, to trafficsim.LightState) {
	o.entry().WithFields(log.Fields{
		"lane": lane.ID(),
		"from": from.String(),
		"to":   to.String(),
	}).Info("Light changed")
}

// OnTickCompleted logs the tick summary at debug level
func (o *LoggingObserver) OnTickCompleted(result trafficsim.StepResult) {
	o.entry().WithFields(log.Fields{
		"elapsed": result.Elapsed,
		"spawned": result.Spawned != nil,
		"exited":  len(result.Exited),
	}).Debug("Tick completed")
}
