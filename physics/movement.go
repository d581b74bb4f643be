package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/ferris-fighter/components"
	"github.com/lixenwraith/ferris-fighter/vmath"
)

// Velocity evaluates a movement rule at the given age, in px/s
// DriftingSine draws jitter from rng and must be re-evaluated every frame
func Velocity(m components.Movement, age time.Duration, rng *vmath.FastRand, seed float64) (vx, vy float64) {
	t := float64(age) / float64(time.Millisecond)

	switch mv := m.(type) {
	case components.Linear:
		return mv.DX, mv.DY

	case components.DriftingSine:
		jitter := 0.0
		if rng != nil && mv.Jitter > 0 {
			jitter = rng.Range(-mv.Jitter, mv.Jitter)
		}
		vx = (math.Sin(t/period(mv.LateralPeriod)+seed*1000) + jitter) * mv.Amplitude
		vy = (1 + math.Sin(t/period(mv.DescentPeriod)+seed*100)) * mv.Descent
		return vx, vy

	case components.ZigZag:
		return math.Cos(t/period(mv.Period)+seed*10) * mv.Amplitude, mv.Descent

	case components.Hover:
		if t < mv.Settle {
			return 0, mv.Descent
		}
		return math.Sin((t-mv.Settle)/period(mv.Period)+seed) * mv.Sway, 0
	}

	// Static and nil
	return 0, 0
}

// Displace applies one frame of movement to the entity
func Displace(e *components.Entity, dt time.Duration, rng *vmath.FastRand) {
	if e.Movement == nil || dt <= 0 {
		return
	}
	vx, vy := Velocity(e.Movement, e.Age, rng, e.Seed)
	s := dt.Seconds()
	e.Translate(vx*s, vy*s)
}

// period guards against a zero divisor so every rule stays finite
func period(p float64) float64 {
	if p <= 0 {
		return 1
	}
	return p
}
