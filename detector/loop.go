package detector

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"time"

	rescueline "github.com/Spadeyache/go-rescueline"
	"github.com/Spadeyache/go-rescueline/postprocess"
	"github.com/Spadeyache/go-rescueline/postprocess/result"
	"github.com/Spadeyache/go-rescueline/preprocess"
	"gocv.io/x/gocv"
)

// Renderer consumes the results of each processed frame.  It receives the
// captured frame, the post-suppression detections in model input pixel
// space, and the current FPS value.  Drawing and display are outside the
// loop's contract, a renderer may draw on the frame, publish the
// detections, or discard them.
type Renderer interface {
	Render(img *gocv.Mat, detections []result.DetectResult, fps int)
}

// NullRenderer discards all frame results, for headless operation
type NullRenderer struct{}

func (NullRenderer) Render(*gocv.Mat, []result.DetectResult, int) {}

// State is the phase of the frame processing cycle the loop is in
type State int

const (
	Idle State = iota
	Capturing
	Preprocessing
	Inferring
	Decoding
	Suppressing
	Rendering
	MemoryReclaim
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Capturing:
		return "Capturing"
	case Preprocessing:
		return "Preprocessing"
	case Inferring:
		return "Inferring"
	case Decoding:
		return "Decoding"
	case Suppressing:
		return "Suppressing"
	case Rendering:
		return "Rendering"
	case MemoryReclaim:
		return "MemoryReclaim"
	case Stopped:
		return "Stopped"
	}

	return "Unknown"
}

// FrameLoop runs the single threaded capture, preprocess, infer, decode,
// suppress, render cycle.  Every phase runs to completion before the next
// begins and the stop signal is only checked between iterations, so a
// long running inference call is never interrupted mid-flight.  No
// timeouts are enforced on capture or inference, an unresponsive frame
// source or engine stalls the loop indefinitely.
//
// The loop owns the frame source and releases it when Run returns.  The
// engine and renderer are owned by the caller.
type FrameLoop struct {
	cfg      Config
	source   FrameSource
	engine   rescueline.Engine
	process  *postprocess.YOLOv8
	resizer  *preprocess.Resizer
	renderer Renderer
	fps      *FPSTracker
	stats    *PhaseStats
	state    State
	// frameCount is the number of successfully processed frames
	frameCount int
	logger     *log.Logger
	// reclaim frees transient frame memory back to the OS.  The board has
	// no virtual memory, repeated allocate/free cycles of image buffers
	// would otherwise fragment the 128MB budget.
	reclaim func()
}

// NewFrameLoop returns a frame loop over the given source, engine and
// renderer.  The configuration is fixed for the lifetime of the loop.
func NewFrameLoop(cfg Config, source FrameSource, engine rescueline.Engine,
	renderer Renderer) (*FrameLoop, error) {

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if source == nil {
		return nil, fmt.Errorf("no frame source provided")
	}

	if engine == nil {
		return nil, fmt.Errorf("no inference engine provided")
	}

	if renderer == nil {
		renderer = NullRenderer{}
	}

	l := &FrameLoop{
		cfg:    cfg,
		source: source,
		engine: engine,
		process: postprocess.NewYOLOv8(postprocess.YOLOv8Params{
			ConfThreshold:   cfg.ConfidenceThreshold,
			NMSThreshold:    cfg.IoUThreshold,
			ObjectClassNum:  len(cfg.ClassNames),
			InputWidth:      cfg.ModelInputWidth,
			InputHeight:     cfg.ModelInputHeight,
			MaxObjectNumber: 64,
		}),
		resizer:  preprocess.NewResizer(cfg.ModelInputWidth, cfg.ModelInputHeight),
		renderer: renderer,
		fps:      NewFPSTracker(),
		stats:    NewPhaseStats(),
		state:    Idle,
		reclaim:  debug.FreeOSMemory,
	}

	return l, nil
}

// SetLogger sets the logger used for loop lifecycle messages, defaults to
// the standard logger
func (l *FrameLoop) SetLogger(logger *log.Logger) {
	l.logger = logger
}

// State returns the current phase of the loop
func (l *FrameLoop) State() State {
	return l.state
}

// FrameCount returns the number of successfully processed frames
func (l *FrameLoop) FrameCount() int {
	return l.frameCount
}

// FPS returns the current frames per second value
func (l *FrameLoop) FPS() int {
	return l.fps.FPS()
}

// Stats returns the aggregated per phase timings
func (l *FrameLoop) Stats() *PhaseStats {
	return l.stats
}

// Run drives the frame loop until ctx is cancelled or a fatal error
// occurs.  Cancellation is the normal way to stop the loop and returns
// nil; an inference failure is fatal and is returned after cleanup.  In
// both cases the frame source is released and a final memory reclamation
// pass runs before Run returns.
func (l *FrameLoop) Run(ctx context.Context) error {

	defer l.cleanup()

	l.logf("frame loop started, model input %dx%d, %d classes, reclaim every %d frames",
		l.cfg.ModelInputWidth, l.cfg.ModelInputHeight,
		len(l.cfg.ClassNames), l.cfg.MemoryReclaimInterval)

	frame := gocv.NewMat()
	defer frame.Close()

	for {
		// cooperative cancellation, checked between iterations only
		select {
		case <-ctx.Done():
			l.logf("frame loop stopping: %v", ctx.Err())
			return nil
		default:
		}

		if err := l.iterate(&frame); err != nil {
			return err
		}
	}
}

// iterate runs one frame's processing cycle.  Transient per frame memory
// is released before it returns.
func (l *FrameLoop) iterate(frame *gocv.Mat) error {

	var timing Timing
	start := time.Now()

	l.state = Capturing

	if ok := l.source.Read(frame); !ok {
		// no frame available, retry next iteration.  not counted as a
		// processed frame for FPS purposes
		return nil
	}

	timing.Capture = time.Since(start)

	l.state = Preprocessing
	t := time.Now()

	input, owned := l.resizer.Resize(*frame)

	if owned {
		defer input.Close()
	}

	timing.Preprocess = time.Since(t)

	l.state = Inferring
	t = time.Now()

	outputs, err := l.engine.Infer(input)

	if err != nil {
		return fmt.Errorf("inference failed: %w", err)
	}

	timing.Inference = time.Since(t)

	l.state = Decoding
	t = time.Now()

	detections := l.process.DecodePredictions(outputs)

	l.state = Suppressing

	detections = l.process.SuppressObjects(detections)

	timing.Postprocess = time.Since(t)

	l.state = Rendering
	t = time.Now()

	l.fps.Tick()
	l.renderer.Render(frame, detections, l.fps.FPS())

	timing.Render = time.Since(t)
	timing.Total = time.Since(start)

	l.stats.Add(timing)
	l.frameCount++

	if l.frameCount%l.cfg.MemoryReclaimInterval == 0 {
		l.state = MemoryReclaim
		l.reclaim()
	}

	return nil
}

// cleanup releases the frame source and performs one final memory
// reclamation pass.  Runs on both normal loop exit and cancellation.
func (l *FrameLoop) cleanup() {

	if err := l.source.Close(); err != nil {
		l.logf("error closing frame source: %v", err)
	}

	l.reclaim()
	l.state = Stopped

	l.logf("frame loop stopped after %d frames, %s",
		l.frameCount, l.stats.Summary())
}

func (l *FrameLoop) logf(format string, v ...interface{}) {
	if l.logger != nil {
		l.logger.Printf(format, v...)
		return
	}

	log.Printf(format, v...)
}
