package component

// TimerMode decides what a Timer does once it reaches its duration.
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts elapsed seconds towards Duration.
type Timer struct {
	Duration float64
	Elapsed  float64
	Mode     TimerMode
	finished bool
}

func NewTimer(seconds float64, mode TimerMode) Timer {
	return Timer{Duration: seconds, Mode: mode}
}

// Tick advances the timer by dt seconds and reports whether it reached its
// duration during this tick. A repeating timer wraps and keeps the overflow.
func (t *Timer) Tick(dt float64) bool {
	if t == nil || t.Duration <= 0 || dt <= 0 {
		return false
	}
	if t.Mode == TimerOnce && t.finished {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		return false
	}
	if t.Mode == TimerRepeating {
		for t.Elapsed >= t.Duration {
			t.Elapsed -= t.Duration
		}
		return true
	}
	t.Elapsed = t.Duration
	t.finished = true
	return true
}

// Finished reports whether a one-shot timer has completed.
func (t *Timer) Finished() bool {
	return t != nil && t.finished
}

// Unit is an RTS unit. MovementTimer and Timer are set at spawn but no system
// reads them yet; wandering resamples its direction every frame.
type Unit struct {
	MovementTimer float64
	Timer         Timer
}

var UnitComponent = NewComponent[Unit]()
