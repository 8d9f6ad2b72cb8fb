package skyisles

import (
	"time"
)

// Time is the frame clock. Dt and Elapsed are in seconds.
type Time struct {
	Time    time.Time
	Dt      float32
	Elapsed float32
	Frame   uint64

	maxDt float32
}

type TimeModule struct {
	// MaxDt caps a single step, e.g. after the window was dragged. Zero means 0.1s.
	MaxDt float32
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	maxDt := mod.MaxDt
	if maxDt <= 0 {
		maxDt = 0.1
	}
	cmd.AddResources(&Time{maxDt: maxDt})
}

func (t *Time) advance(now time.Time) {
	if t.Time.IsZero() {
		t.Time = now
	}
	dt := float32(now.Sub(t.Time).Seconds())
	if dt < 0 {
		dt = 0
	}
	if dt > t.maxDt {
		dt = t.maxDt
	}
	t.Dt = dt
	t.Elapsed += dt
	t.Time = now
	t.Frame++
}
