package animations

// Animation is a looping flipbook over frames First..Last of one sheet.
type Animation struct {
	First         int
	Last          int
	Step          int     // sheet indices advanced per frame
	TicksPerFrame float32 // ticks each frame stays on screen
	counter       float32
	frame         int
	Looped        bool // set once the flipbook wrapped at least once
}

func NewAnimation(first, last, step int, ticksPerFrame float32) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:         first,
		Last:          last,
		Step:          step,
		TicksPerFrame: ticksPerFrame,
		counter:       ticksPerFrame,
		frame:         first,
	}
}

// Update advances the flipbook by one tick.
func (a *Animation) Update() {
	a.counter--
	if a.counter >= 0 {
		return
	}
	a.counter = a.TicksPerFrame
	a.frame += a.Step
	if a.frame > a.Last {
		a.frame = a.First
		a.Looped = true
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Restart rewinds to the first frame.
func (a *Animation) Restart() {
	a.frame = a.First
	a.counter = a.TicksPerFrame
	a.Looped = false
}
