package dispatch

import (
	"time"

	"github.com/charmbracelet/log"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithDelay sets the throttle pause inserted after every send attempt
// except the last. Zero disables throttling.
func WithDelay(d time.Duration) Option {
	return func(disp *Dispatcher) {
		if d > 0 {
			disp.delay = d
		}
	}
}

// WithLogger attaches a logger for per-recipient debug traces. The event
// stream stays the authoritative reporting surface; logging is advisory.
func WithLogger(logger *log.Logger) Option {
	return func(disp *Dispatcher) {
		if logger != nil {
			disp.logger = logger
		}
	}
}

// WithClock substitutes the throttle pause implementation. Tests inject a
// fake clock to verify pacing without real sleeps; the default waits on a
// timer or context cancellation, whichever fires first.
func WithClock(clock Clock) Option {
	return func(disp *Dispatcher) {
		if clock != nil {
			disp.clock = clock
		}
	}
}
