package ansi

import "time"

// FrameTimer paces the game loop: it records when a frame started and
// sleeps away whatever remains of the target frame duration after the
// update and render work is done.
type FrameTimer struct {
	frameStart time.Time
	target     time.Duration

	// Injected for tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameTimer creates a timer with the given target frame duration.
func NewFrameTimer(target time.Duration) *FrameTimer {
	return &FrameTimer{
		target: target,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// StartFrame marks the beginning of a frame.
func (t *FrameTimer) StartFrame() {
	t.frameStart = t.now()
}

// SetTarget changes the target frame duration.
func (t *FrameTimer) SetTarget(d time.Duration) {
	t.target = d
}

// Target returns the target frame duration.
func (t *FrameTimer) Target() time.Duration {
	return t.target
}

// Elapsed returns how long the current frame has been running.
func (t *FrameTimer) Elapsed() time.Duration {
	return t.now().Sub(t.frameStart)
}

// Remaining returns the unspent portion of the frame budget, never negative.
func (t *FrameTimer) Remaining() time.Duration {
	rem := t.target - t.Elapsed()
	if rem < 0 {
		return 0
	}
	return rem
}

// Wait sleeps for the remainder of the frame budget.
func (t *FrameTimer) Wait() {
	if rem := t.Remaining(); rem > 0 {
		t.sleep(rem)
	}
}
