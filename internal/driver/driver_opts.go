package driver

import "time"

type TickDriverOpt func(*TickDriver)

// WithTickLength sets the wall-clock length of one tick
func WithTickLength(tickLength time.Duration) TickDriverOpt {
	return func(d *TickDriver) {
		if tickLength > 0 {
			d.tickLength = tickLength
		}
	}
}
