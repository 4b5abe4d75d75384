package detector

import "time"

// TickSource returns a millisecond tick count.  Deployment clocks are
// millisecond counters that may wrap around uint32, tick differences are
// computed with uint32 arithmetic which stays correct across a single
// wraparound.
type TickSource func() uint32

// FPSTracker maintains a rolling frames-per-second counter.  Each
// processed frame calls Tick; whenever 1000ms or more have elapsed since
// the last reset the frame count over that window becomes the reported
// FPS and the counter starts a new window.
type FPSTracker struct {
	ticks      TickSource
	frameCount int
	fps        int
	lastReset  uint32
}

// NewFPSTracker returns an FPS tracker driven by the monotonic wall clock
func NewFPSTracker() *FPSTracker {
	start := time.Now()

	return NewFPSTrackerWithTicks(func() uint32 {
		return uint32(time.Since(start).Milliseconds())
	})
}

// NewFPSTrackerWithTicks returns an FPS tracker driven by the given tick
// source, for hardware millisecond counters or simulated time in tests
func NewFPSTrackerWithTicks(ticks TickSource) *FPSTracker {
	return &FPSTracker{
		ticks:     ticks,
		lastReset: ticks(),
	}
}

// Tick records one processed frame.  When the current window has lasted
// 1000ms or more the window's count becomes the reported FPS and the new
// frame opens the next window.
func (f *FPSTracker) Tick() {

	now := f.ticks()

	// uint32 subtraction, survives a single counter wraparound
	if now-f.lastReset >= 1000 {
		f.fps = f.frameCount
		f.frameCount = 0
		f.lastReset = now
	}

	f.frameCount++
}

// FPS returns the frames per second measured over the last completed
// window
func (f *FPSTracker) FPS() int {
	return f.fps
}
