package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"trafficsim"
	"trafficsim/pkg/observers"
	"trafficsim/visualization"
)

const clearScreen = "\033[2J\033[H"

func main() {
	// Keep the animation clean; only build failures reach the console
	log.SetLevel(log.ErrorLevel)

	sim, err := trafficsim.NewBuilder().Build()
	if err != nil {
		log.WithError(err).Fatal("Failed to build simulation")
	}
	sim.AddObserver(observers.NewDefaultLoggingObserver().WithRunID(sim.RunID()))

	cfg := sim.Config()
	renderer := visualization.NewFrameRenderer()

	for sim.Running() {
		sim.Step(cfg.StepSize)
		fmt.Print(clearScreen)
		fmt.Print(renderer.Render(sim))
		time.Sleep(cfg.TickDelay)
	}

	fmt.Println("Simulation ended.")
}
