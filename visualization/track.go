// Package visualization provides plain-text rendering of simulation state
package visualization

import (
	"fmt"
	"strings"

	"trafficsim"
)

// FrameRenderer renders text frames of a running simulation
type FrameRenderer struct {
	options FrameOptions
}

// FrameOptions configures frame rendering
type FrameOptions struct {
	TrackWidth int
	RoadFill   byte
}

// DefaultFrameOptions returns sensible default options for frame rendering
func DefaultFrameOptions() FrameOptions {
	return FrameOptions{
		TrackWidth: 50,
		RoadFill:   '-',
	}
}

// NewFrameRenderer creates a new frame renderer
func NewFrameRenderer(options ...FrameOptions) *FrameRenderer {
	opts := DefaultFrameOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return &FrameRenderer{options: opts}
}

// Render creates a full frame for the current simulation state
func (r *FrameRenderer) Render(sim *trafficsim.Simulation) string {
	var frame strings.Builder

	frame.WriteString(fmt.Sprintf("Simulation Time: %ds\n", sim.Elapsed()))
	for _, lane := range sim.Lanes() {
		r.renderLane(&frame, lane, sim.Vehicles(lane))
	}

	return frame.String()
}

// RenderLane creates the frame block for a single lane
func (r *FrameRenderer) RenderLane(lane *trafficsim.Lane, vehicles []*trafficsim.Vehicle) string {
	var frame strings.Builder
	r.renderLane(&frame, lane, vehicles)
	return frame.String()
}

func (r *FrameRenderer) renderLane(frame *strings.Builder, lane *trafficsim.Lane, vehicles []*trafficsim.Vehicle) {
	frame.WriteString(fmt.Sprintf("Lane %d [Light: %s]\n", lane.ID(), lane.Light().State().Symbol()))
	frame.WriteString("  ")
	frame.WriteString(r.Track(lane, vehicles))
	frame.WriteString("\n\n")
}

// Track renders the road line for a lane. Each vehicle is placed at the
// cell proportional to its position; vehicles past either end are omitted,
// and overlapping vehicles overwrite earlier ones.
func (r *FrameRenderer) Track(lane *trafficsim.Lane, vehicles []*trafficsim.Vehicle) string {
	road := make([]byte, r.options.TrackWidth)
	for i := range road {
		road[i] = r.options.RoadFill
	}

	for _, v := range vehicles {
		idx := int(v.Position() / lane.Length() * float64(r.options.TrackWidth))
		if idx >= 0 && idx < len(road) {
			road[idx] = v.Symbol()
		}
	}

	return string(road)
}
