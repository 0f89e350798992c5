package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/slidemenu/retained"
)

// Script is a recorded gesture replayed against a drawer with a virtual
// clock. Distances are pixels.
type Script struct {
	Width              int     `toml:"width"`
	Height             int     `toml:"height"`
	MenuWidth          int     `toml:"menu_width"`
	TouchSlop          float32 `toml:"touch_slop"`
	DurationPerPixelMs float64 `toml:"duration_per_pixel_ms"`
	Easing             string  `toml:"easing"`
	FrameIntervalMs    int     `toml:"frame_interval_ms"`
	InitialState       string  `toml:"initial_state"`

	Events []ScriptEvent `toml:"events"`
}

// ScriptEvent is one step of a script. Kind is a pointer event (down,
// move, up, cancel) or a programmatic call (open, close, toggle).
type ScriptEvent struct {
	Kind string  `toml:"kind"`
	X    float32 `toml:"x"`
	Y    float32 `toml:"y"`
	AtMs int64   `toml:"at_ms"`
}

// SimulationResult summarizes a finished replay.
type SimulationResult struct {
	Frames      int
	FinalOffset int
	FinalState  retained.State
	Elapsed     time.Duration
}

// defaultScript fills the gaps of a script with the core defaults.
func defaultScript() Script {
	return Script{
		Width:              480,
		Height:             800,
		MenuWidth:          240,
		TouchSlop:          retained.DefaultTouchSlop,
		DurationPerPixelMs: float64(retained.DefaultDurationPerPixel) / float64(time.Millisecond),
		Easing:             "viscous",
		FrameIntervalMs:    int(retained.DefaultFrameInterval / time.Millisecond),
		InitialState:       "main",
	}
}

// LoadScript reads a TOML script from path.
func LoadScript(path string) (Script, error) {
	script := defaultScript()

	data, err := os.ReadFile(path)
	if err != nil {
		return script, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &script); err != nil {
		return script, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return script, nil
}

// Simulate implements the 'slidemenu simulate' command
func Simulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	scriptPath := fs.String("script", "", "Path to a gesture script (TOML)")
	fs.Parse(args)

	if *scriptPath == "" {
		return fmt.Errorf("--script is required")
	}

	script, err := LoadScript(*scriptPath)
	if err != nil {
		return err
	}

	result, err := RunScript(script, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("settled: state=%s offset=%d frames=%d elapsed=%s\n",
		result.FinalState, result.FinalOffset, result.Frames, result.Elapsed)
	return nil
}

// RunScript replays the script and writes one line per event and per
// frame to out. Frames run at the script's interval whenever the drawer
// has one pending; after the last event the drawer is left to settle.
func RunScript(script Script, out io.Writer) (SimulationResult, error) {
	var result SimulationResult

	easing := retained.EasingByName(script.Easing)
	if easing == nil {
		return result, fmt.Errorf("unknown easing %q", script.Easing)
	}
	initial, err := retained.ParseState(script.InitialState)
	if err != nil {
		return result, err
	}
	interval := time.Duration(script.FrameIntervalMs) * time.Millisecond
	if interval <= 0 {
		return result, fmt.Errorf("frame_interval_ms must be positive, got %d", script.FrameIntervalMs)
	}

	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start

	drawer, err := retained.NewDrawer(
		retained.NewPanel(script.MenuWidth, nil),
		retained.NewPanel(0, nil),
		retained.WithTouchSlop(script.TouchSlop),
		retained.WithDurationPerPixel(time.Duration(script.DurationPerPixelMs*float64(time.Millisecond))),
		retained.WithEasing(easing),
		retained.WithInitialState(initial),
		retained.WithClock(func() time.Time { return now }),
	)
	if err != nil {
		return result, err
	}
	loop := retained.NewFrameLoop(drawer)
	dispatcher := retained.NewEventDispatcher(drawer)

	drawer.Measure(script.Width, script.Height)
	drawer.Layout(0, 0, script.Width, script.Height)

	printFrame := func(at time.Time) {
		result.Frames++
		fmt.Fprintf(out, "%6dms  frame   offset=%-5d state=%s\n",
			at.Sub(start).Milliseconds(), drawer.ScrollOffset(), drawer.CurrentState())
	}

	for i, ev := range script.Events {
		at := start.Add(time.Duration(ev.AtMs) * time.Millisecond)
		if at.Before(now) {
			return result, fmt.Errorf("event %d (%s): at_ms %d is before the previous event", i, ev.Kind, ev.AtMs)
		}

		for loop.Pending() && !now.Add(interval).After(at) {
			now = now.Add(interval)
			loop.Frame(now)
			printFrame(now)
		}
		now = at

		if err := applyScriptEvent(drawer, dispatcher, ev, now); err != nil {
			return result, fmt.Errorf("event %d: %w", i, err)
		}
		fmt.Fprintf(out, "%6dms  %-7s offset=%-5d state=%s\n",
			ev.AtMs, ev.Kind, drawer.ScrollOffset(), drawer.CurrentState())
	}

	now = loop.Settle(now, interval, 0, printFrame)

	result.FinalOffset = drawer.ScrollOffset()
	result.FinalState = drawer.CurrentState()
	result.Elapsed = now.Sub(start)
	return result, nil
}

func applyScriptEvent(d *retained.Drawer, dispatcher *retained.EventDispatcher, ev ScriptEvent, now time.Time) error {
	switch ev.Kind {
	case "open":
		d.Open()
		return nil
	case "close":
		d.Close()
		return nil
	case "toggle":
		d.Toggle()
		return nil
	}

	eventType, ok := retained.ParseEventType(ev.Kind)
	if !ok {
		return fmt.Errorf("unknown event kind %q", ev.Kind)
	}
	e := retained.NewPointerEvent(eventType, ev.X, ev.Y, now)
	dispatcher.Dispatch(e)
	e.Release()
	return nil
}
