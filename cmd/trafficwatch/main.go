// trafficwatch is an interactive terminal viewer for the traffic simulation.
// It drives the simulation on a ticker and renders lanes, lights, and a
// rolling event feed with tcell.
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/akamensky/argparse"
	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"trafficsim"
	"trafficsim/pkg/observers"
	"trafficsim/visualization"
)

const maxEventLines = 12

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleHeader  = styleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleRoad    = styleDefault.Foreground(tcell.ColorDarkGray)
	styleVehicle = styleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleEvent   = styleDefault.Foreground(tcell.ColorGray)
	styleHelp    = styleDefault.Foreground(tcell.ColorSilver)
	stylePaused  = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)

	lightStyles = map[trafficsim.LightState]tcell.Style{
		trafficsim.LightRed:    styleDefault.Foreground(tcell.ColorRed).Bold(true),
		trafficsim.LightYellow: styleDefault.Foreground(tcell.ColorYellow).Bold(true),
		trafficsim.LightGreen:  styleDefault.Foreground(tcell.ColorLime).Bold(true),
	}
)

// eventLog keeps a rolling feed of simulation events for the events pane
type eventLog struct {
	trafficsim.BaseObserver
	sim   *trafficsim.Simulation
	lines []string
	mutex sync.Mutex
}

func (e *eventLog) push(line string) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.lines = append(e.lines, line)
	if len(e.lines) > maxEventLines {
		e.lines = e.lines[len(e.lines)-maxEventLines:]
	}
}

func (e *eventLog) snapshot() []string {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	return append([]string(nil), e.lines...)
}

func (e *eventLog) elapsed() int {
	if e.sim == nil {
		return 0
	}
	return e.sim.Elapsed()
}

func (e *eventLog) OnVehicleSpawned(v *trafficsim.Vehicle, lane *trafficsim.Lane) {
	e.push(fmt.Sprintf("t=%-3d lane %d: %s #%d in at %.1f km/h", e.elapsed(), lane.ID(), v.Type(), v.ID(), v.Speed()))
}

func (e *eventLog) OnVehicleExited(v *trafficsim.Vehicle, lane *trafficsim.Lane) {
	e.push(fmt.Sprintf("t=%-3d lane %d: %s #%d out", e.elapsed(), lane.ID(), v.Type(), v.ID()))
}

func (e *eventLog) OnVehicleStopped(v *trafficsim.Vehicle, lane *trafficsim.Lane) {
	e.push(fmt.Sprintf("t=%-3d lane %d: %s #%d stopped at light", e.elapsed(), lane.ID(), v.Type(), v.ID()))
}

func (e *eventLog) OnLightChanged(lane *trafficsim.Lane, from, to trafficsim.LightState) {
	e.push(fmt.Sprintf("t=%-3d lane %d: light %s -> %s", e.elapsed(), lane.ID(), from, to))
}

// App owns the screen and drives the simulation and render tickers
type App struct {
	screen    tcell.Screen
	sim       *trafficsim.Simulation
	renderer  *visualization.FrameRenderer
	metrics   *observers.MetricsObserver
	events    *eventLog
	simTicker *time.Ticker
	delay     time.Duration
	paused    bool
	mutex     sync.Mutex
	quit      chan struct{}
	quitOnce  sync.Once
}

// Run starts the input handler and loops until the viewer is closed
func (a *App) Run() {
	go a.handleInput()

	a.simTicker = time.NewTicker(a.delay)
	renderTicker := time.NewTicker(50 * time.Millisecond)
	defer a.simTicker.Stop()
	defer renderTicker.Stop()

	a.render()
	for {
		select {
		case <-a.quit:
			return
		case <-a.simTicker.C:
			a.mutex.Lock()
			if !a.paused && a.sim.Running() {
				a.sim.Step(a.sim.Config().StepSize)
			}
			a.mutex.Unlock()
		case <-renderTicker.C:
			a.render()
		}
	}
}

func (a *App) handleInput() {
	for {
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				a.stop()
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				a.stop()
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
				a.mutex.Lock()
				a.paused = !a.paused
				a.mutex.Unlock()
			case ev.Key() == tcell.KeyRune && (ev.Rune() == '+' || ev.Rune() == '='):
				a.adjustDelay(-100 * time.Millisecond)
			case ev.Key() == tcell.KeyRune && ev.Rune() == '-':
				a.adjustDelay(100 * time.Millisecond)
			}
		}
	}
}

func (a *App) stop() {
	a.quitOnce.Do(func() { close(a.quit) })
}

func (a *App) adjustDelay(delta time.Duration) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.delay += delta
	if a.delay < 50*time.Millisecond {
		a.delay = 50 * time.Millisecond
	}
	if a.delay > 2*time.Second {
		a.delay = 2 * time.Second
	}
	a.simTicker.Reset(a.delay)
}

func (a *App) render() {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.screen.Clear()
	w, h := a.screen.Size()
	if w < 64 || h < 16 {
		drawText(a.screen, 1, 1, "Screen too small, resize to at least 64x16", stylePaused)
		a.screen.Show()
		return
	}

	header := fmt.Sprintf("trafficwatch  run %s  t=%ds  vehicles=%d",
		shortID(a.sim.RunID()), a.sim.Elapsed(), a.sim.Fleet().Len())
	drawText(a.screen, 1, 0, header, styleHeader)

	row := 2
	for _, lane := range a.sim.Lanes() {
		vehicles := a.sim.Vehicles(lane)
		state := lane.Light().State()
		label := fmt.Sprintf("Lane %d [%s] %d vehicles", lane.ID(), state, len(vehicles))
		drawText(a.screen, 1, row, label, lightStyles[state])
		drawTrack(a.screen, 3, row+1, a.renderer.Track(lane, vehicles))
		row += 3
	}

	drawText(a.screen, 1, row, "Events", styleHeader)
	row++
	for _, line := range a.events.snapshot() {
		drawText(a.screen, 1, row, line, styleEvent)
		row++
	}

	switch {
	case a.paused:
		drawText(a.screen, 1, h-1, " PAUSED  space resume   +/- speed   q quit ", stylePaused)
	case !a.sim.Running():
		drawText(a.screen, 1, h-1, " FINISHED  q quit ", stylePaused)
	default:
		drawText(a.screen, 1, h-1, "space pause   +/- speed   q quit", styleHelp)
	}

	a.screen.Show()
}

// drawText is a helper to put strings on the screen
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// drawTrack draws a road line, highlighting vehicle markers
func drawTrack(s tcell.Screen, x, y int, track string) {
	for i := 0; i < len(track); i++ {
		style := styleRoad
		if track[i] != '-' {
			style = styleVehicle
		}
		s.SetContent(x+i, y, rune(track[i]), nil, style)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func main() {
	parser := argparse.NewParser("trafficwatch", "Interactive traffic simulation viewer")

	seed := parser.Int("s", "seed", &argparse.Options{Default: 0, Help: "Random seed, 0 seeds from the clock"})
	horizon := parser.Int("t", "horizon", &argparse.Options{Default: 60, Help: "Simulated time horizon in units"})
	delay := parser.Int("d", "delay", &argparse.Options{Default: 500, Help: "Milliseconds between ticks"})
	spawn := parser.Float("r", "spawn", &argparse.Options{Default: 0.3, Help: "Per-tick spawn probability"})
	logPath := parser.String("l", "log", &argparse.Options{Default: "", Help: "Append structured event logs to this file"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	if *delay < 50 {
		fmt.Fprintln(os.Stderr, "Error: Invalid value of delay - must be at least 50")
		os.Exit(1)
	}

	metrics := observers.NewMetricsObserver()
	events := &eventLog{}

	builder := trafficsim.NewBuilder().
		WithSpawnProbability(*spawn).
		WithHorizon(*horizon).
		WithObserver(metrics).
		WithObserver(events)
	if *seed != 0 {
		builder.WithSeed(int64(*seed))
	}

	sim, err := builder.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	events.sim = sim

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		defer f.Close()
		logger := log.New()
		logger.SetOutput(f)
		sim.AddObserver(observers.NewLoggingObserver(logger).WithRunID(sim.RunID()))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.SetStyle(styleDefault)

	app := &App{
		screen:   screen,
		sim:      sim,
		renderer: visualization.NewFrameRenderer(),
		metrics:  metrics,
		events:   events,
		delay:    time.Duration(*delay) * time.Millisecond,
		quit:     make(chan struct{}),
	}
	app.Run()
	screen.Fini()

	summary := metrics.Summarize()
	fmt.Printf("Run %s finished after %d ticks\n", sim.RunID(), summary.Ticks)
	fmt.Printf("Spawned: %d  Exited: %d  Active: %d  Stopped: %d  Light changes: %d\n",
		summary.Spawned, summary.Exited, summary.Active, summary.Stopped, summary.LightChanges)
	fmt.Printf("Mean speed: %.1f km/h  Mean transit: %.1f ticks\n", summary.MeanSpeed, summary.MeanTransit)
}
