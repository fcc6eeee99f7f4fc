package game

// lcg is the linear congruential generator behind all layout randomness.
// Every generation event is a pure function of its seed, so a layout can be
// replayed exactly by replaying the seed.
type lcg struct {
	state uint64
}

func newLCG(seed uint64) *lcg {
	return &lcg{state: seed}
}

// next advances the generator and returns the new state.
func (r *lcg) next() uint64 {
	r.state = (r.state*1103515245 + 12345) % (1 << 31)
	return r.state
}

// unit returns a pseudo-random value in [0, 1) with three decimal digits of
// resolution, which is all the placement math needs.
func (r *lcg) unit() float64 {
	return float64(r.next()%1000) / 1000.0
}
