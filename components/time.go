package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// FixedTimeData is published by the fixed-tick clock. Systems only read it.
type FixedTimeData struct {
	Timestep time.Duration // length of one tick
	Elapsed  time.Duration // simulated time committed so far
	Tick     uint64        // number of ticks committed
	Overstep float64       // progress fraction of the tick in flight, [0, 1)
}

// Delta returns the tick length in seconds.
func (t *FixedTimeData) Delta() float64 {
	return t.Timestep.Seconds()
}

var FixedTime = donburi.NewComponentType[FixedTimeData]()
