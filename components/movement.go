package components

// Movement is the closed set of motion rules an entity can follow
// Concrete rules are plain data; physics.Velocity evaluates them
type Movement interface {
	movement()
}

// Static never moves
type Static struct{}

// Linear moves at a constant velocity in px/s
type Linear struct {
	DX, DY float64
}

// DriftingSine is the plain enemy motion: a seeded lateral sine with random jitter
// and a seeded descent that pulses between 0 and 2x Descent. Periods are in ms
type DriftingSine struct {
	Amplitude     float64
	LateralPeriod float64
	Jitter        float64
	Descent       float64
	DescentPeriod float64
}

// ZigZag sweeps left and right at a steady descent. Period is in ms
type ZigZag struct {
	Amplitude float64
	Period    float64
	Descent   float64
}

// Hover descends until Settle age, then sways in place. Period is in ms
type Hover struct {
	Descent float64
	Settle  float64 // ms
	Sway    float64
	Period  float64
}

func (Static) movement()       {}
func (Linear) movement()       {}
func (DriftingSine) movement() {}
func (ZigZag) movement()       {}
func (Hover) movement()        {}
