// Package controller implements the adaptive brightness control loop: a
// fixed schedule (100ms by default) that reads one on-screen brightness
// sample per tick, smooths it over a short window, maps the average onto
// a discrete lift level through a hysteresis dead zone, and fades the
// applied gamma intensity toward that level's goal with asymmetric
// attack/decay steps.
package controller

import (
	"context"
	"math"
	"sync"
	"time"

	"codeberg.org/orvend/gammactl/internal/gamma"
	"codeberg.org/orvend/gammactl/internal/logger"
	"codeberg.org/orvend/gammactl/internal/monitor"
	"codeberg.org/orvend/gammactl/internal/sensor"
	"codeberg.org/orvend/gammactl/internal/telemetry"
)

// Level is one of three discrete adjustment tiers, each mapped to a fixed
// target intensity.
type Level int

const (
	LevelOff Level = iota
	LevelMedium
	LevelHigh
)

var levelIntensity = [...]float64{0.0, 0.35, 0.60}

// Intensity returns the gamma-ramp goal for this level.
func (l Level) Intensity() float64 {
	return levelIntensity[l]
}

func (l Level) String() string {
	switch l {
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	default:
		return "off"
	}
}

const (
	// DefaultTickInterval is the fixed control-loop period.
	DefaultTickInterval = 100 * time.Millisecond

	// SecondaryDimBrightness is the one-shot dim applied to non-target
	// monitors at activation. It is the floor the dim ramp clamps to,
	// so a weaker value would be indistinguishable anyway.
	SecondaryDimBrightness = 0.5

	sampleWindowSize = 3

	darkThreshold   = 0.30
	midThreshold    = 0.45
	brightThreshold = 0.60

	// Attack is fast so the lift is usable within ~0.6s of a scene
	// going dark; decay is slow so the return to normal is invisible.
	fadeInStep  = 0.10
	fadeOutStep = 0.02

	intensityEpsilon = 0.001
)

// state is the loop-private controller state. It is owned by exactly one
// run goroutine per activation and mutated only inside the tick boundary.
type state struct {
	level   Level
	applied float64
	history []float64
}

func newState() state {
	return state{history: make([]float64, 0, sampleWindowSize)}
}

func (s *state) push(sample float64) {
	s.history = append(s.history, sample)
	if len(s.history) > sampleWindowSize {
		s.history = s.history[1:]
	}
}

func (s *state) average() float64 {
	sum := 0.0
	for _, v := range s.history {
		sum += v
	}

	return sum / float64(len(s.history))
}

// nextLevel maps a smoothed brightness onto a lift level. The range
// (midThreshold, brightThreshold] is a deliberate dead zone: the current
// level is retained there so brightness hovering near the off boundary
// does not oscillate.
func nextLevel(avg float64, current Level) Level {
	switch {
	case avg < darkThreshold:
		return LevelHigh
	case avg < midThreshold:
		return LevelMedium
	case avg > brightThreshold:
		return LevelOff
	default:
		return current
	}
}

// stepToward moves applied one fade step toward goal, clamped so it never
// overshoots.
func stepToward(applied, goal float64) float64 {
	if applied < goal {
		next := applied + fadeInStep
		if next > goal {
			next = goal
		}
		return next
	}

	next := applied - fadeOutStep
	if next < goal {
		next = goal
	}

	return next
}

// Status is a read-only snapshot of the controller for logging.
type Status struct {
	Active  bool
	Target  int
	Level   Level
	Sample  float64
	Average float64
	Applied float64
}

// Controller owns the control-loop state machine for a single target
// monitor. All sensor reads and actuator writes happen on one loop
// goroutine per activation, which enforces the at-most-one-tick-in-flight
// invariant by construction.
type Controller struct {
	sensor    sensor.Source
	actuator  gamma.Actuator
	collector telemetry.Collector
	interval  time.Duration

	mu       sync.Mutex
	active   bool
	target   monitor.Descriptor
	monitors []monitor.Descriptor
	cancel   context.CancelFunc
	done     chan struct{}

	statusMu sync.Mutex
	status   Status
}

func New(src sensor.Source, act gamma.Actuator, collector telemetry.Collector, interval time.Duration) *Controller {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if collector == nil {
		collector = telemetry.NewNoop()
	}

	return &Controller{
		sensor:    src,
		actuator:  act,
		collector: collector,
		interval:  interval,
	}
}

// Activate binds the controller to target and starts the tick schedule.
// Every other known monitor receives a one-shot dim. Calling Activate
// while already active for the same target is a no-op; a different target
// resets the previous one first and then activates fresh.
func (c *Controller) Activate(target monitor.Descriptor, all []monitor.Descriptor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active {
		if c.target.Index == target.Index {
			return
		}

		// Switching: stop sampling, then clear the old target before
		// anything runs against the new one, so no residual lift
		// lingers on a monitor we no longer manage.
		prev := c.target
		c.stopLoopLocked()
		if err := c.actuator.SetGamma(prev, 0.0); err != nil {
			logger.Warn().Err(err).Int("monitor", prev.Index).Msg("Failed to reset previous target")
		}
		logger.Info().Int("from", prev.Index).Int("to", target.Index).Msg("Switching target monitor")
	}

	c.target = target
	c.monitors = make([]monitor.Descriptor, len(all))
	copy(c.monitors, all)

	for _, m := range c.monitors {
		if m.Index == target.Index {
			continue
		}
		if err := c.actuator.DimMonitor(m, SecondaryDimBrightness); err != nil {
			logger.Warn().Err(err).Int("monitor", m.Index).Msg("Failed to dim secondary monitor")
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done
	c.active = true

	c.setStatus(Status{Active: true, Target: target.Index})

	go c.run(ctx, target, done)

	logger.Info().
		Int("monitor", target.Index).
		Str("name", target.Name).
		Dur("interval", c.interval).
		Msg("Adaptive gamma control activated")
}

// Deactivate cancels the tick schedule synchronously, then resets the
// gamma ramp on every known monitor exactly once. Safe to call when
// already inactive.
func (c *Controller) Deactivate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return
	}

	c.stopLoopLocked()
	c.active = false

	for _, m := range c.monitors {
		if err := c.actuator.SetGamma(m, 0.0); err != nil {
			logger.Warn().Err(err).Int("monitor", m.Index).Msg("Failed to reset gamma ramp")
		}
	}
	c.monitors = nil

	c.setStatus(Status{})

	logger.Info().Msg("Adaptive gamma control deactivated")
}

// IsActive reports whether the loop is running.
func (c *Controller) IsActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.active
}

// Target returns the currently bound monitor; valid only while active.
func (c *Controller) Target() monitor.Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.target
}

// Status returns a snapshot of the last completed tick.
func (c *Controller) Status() Status {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()

	return c.status
}

// stopLoopLocked cancels the run goroutine and waits for any in-flight
// tick to finish, so a reset issued afterwards can never be overwritten
// by a stale tick result.
func (c *Controller) stopLoopLocked() {
	if c.cancel == nil {
		return
	}

	c.cancel()
	<-c.done
	c.cancel = nil
	c.done = nil
}

// run owns the ControllerState for one activation generation.
func (c *Controller) run(ctx context.Context, target monitor.Descriptor, done chan<- struct{}) {
	defer close(done)

	st := newState()
	region := captureRegion(target)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.tick(ctx, &st, target, region)
		}
	}
}

// tick performs one control-loop step. Any sensor or actuator failure
// aborts the step without corrupting state; the fixed schedule is the
// retry mechanism.
func (c *Controller) tick(ctx context.Context, st *state, target monitor.Descriptor, region sensor.Region) {
	sample, err := c.sensor.Sample(region)
	if err != nil {
		logger.Debug().Err(err).Msg("Brightness sample failed, skipping tick")
		return
	}

	st.push(sample)
	avg := st.average()
	st.level = nextLevel(avg, st.level)
	goal := st.level.Intensity()

	if math.Abs(st.applied-goal) > intensityEpsilon {
		// Cancellation fence: once Deactivate has run, a stale tick
		// must not touch the hardware again.
		if ctx.Err() != nil {
			return
		}

		next := stepToward(st.applied, goal)
		if err := c.actuator.SetGamma(target, next); err != nil {
			// Pessimistic on failure: the value was not confirmed
			// applied, so hold and retry on the next tick.
			logger.Debug().Err(err).Msg("Gamma apply failed, will retry next tick")
			return
		}
		st.applied = next
	}

	c.setStatus(Status{
		Active:  true,
		Target:  target.Index,
		Level:   st.level,
		Sample:  sample,
		Average: avg,
		Applied: st.applied,
	})

	snapshot := &telemetry.TickSnapshot{
		Timestamp:    time.Now(),
		MonitorIndex: target.Index,
		Sample:       sample,
		Average:      avg,
		Level:        int(st.level),
		Goal:         goal,
		Applied:      st.applied,
	}
	if err := c.collector.Record(ctx, snapshot); err != nil {
		logger.Debug().Err(err).Msg("Failed to record tick telemetry")
	}
}

func (c *Controller) setStatus(s Status) {
	c.statusMu.Lock()
	c.status = s
	c.statusMu.Unlock()
}

// captureRegion is the monitor's own absolute geometry, never the scaled
// presentation layout.
func captureRegion(m monitor.Descriptor) sensor.Region {
	return sensor.Region{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height}
}
