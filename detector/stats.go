package detector

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Timing holds the wall clock durations of each phase of one frame's
// processing cycle
type Timing struct {
	Capture     time.Duration
	Preprocess  time.Duration
	Inference   time.Duration
	Postprocess time.Duration
	Render      time.Duration
	Total       time.Duration
}

// maxStatSamples bounds the timing history so the stats collector cannot
// grow without limit on a long run inside the 128MB budget
const maxStatSamples = 256

// PhaseStats aggregates per frame phase timings over a bounded window of
// the most recent frames
type PhaseStats struct {
	inference   []float64
	postprocess []float64
	total       []float64
	next        int
	full        bool
}

// NewPhaseStats returns an empty timing aggregator
func NewPhaseStats() *PhaseStats {
	return &PhaseStats{
		inference:   make([]float64, 0, maxStatSamples),
		postprocess: make([]float64, 0, maxStatSamples),
		total:       make([]float64, 0, maxStatSamples),
	}
}

// Add records the timings of one processed frame, evicting the oldest
// sample once the window is full
func (p *PhaseStats) Add(t Timing) {

	inferMs := float64(t.Inference) / float64(time.Millisecond)
	postMs := float64(t.Postprocess) / float64(time.Millisecond)
	totalMs := float64(t.Total) / float64(time.Millisecond)

	if !p.full {
		p.inference = append(p.inference, inferMs)
		p.postprocess = append(p.postprocess, postMs)
		p.total = append(p.total, totalMs)

		if len(p.total) == maxStatSamples {
			p.full = true
		}

		return
	}

	// window full, overwrite oldest sample
	p.inference[p.next] = inferMs
	p.postprocess[p.next] = postMs
	p.total[p.next] = totalMs
	p.next = (p.next + 1) % maxStatSamples
}

// Samples returns the number of frames recorded in the window
func (p *PhaseStats) Samples() int {
	return len(p.total)
}

// InferenceMean returns the mean and standard deviation of the inference
// phase in milliseconds over the recorded window
func (p *PhaseStats) InferenceMean() (mean, sigma float64) {
	return meanSigma(p.inference)
}

// PostprocessMean returns the mean and standard deviation of the decode
// and suppression phases in milliseconds over the recorded window
func (p *PhaseStats) PostprocessMean() (mean, sigma float64) {
	return meanSigma(p.postprocess)
}

// TotalMean returns the mean and standard deviation of whole frame
// processing time in milliseconds over the recorded window
func (p *PhaseStats) TotalMean() (mean, sigma float64) {
	return meanSigma(p.total)
}

// Summary returns a one line report of the aggregated phase timings
func (p *PhaseStats) Summary() string {

	inferMean, inferSigma := p.InferenceMean()
	postMean, postSigma := p.PostprocessMean()
	totalMean, totalSigma := p.TotalMean()

	return fmt.Sprintf(
		"inference %.2fms (sd %.2f), post processing %.2fms (sd %.2f), total %.2fms (sd %.2f) over %d frames",
		inferMean, inferSigma, postMean, postSigma,
		totalMean, totalSigma, p.Samples())
}

func meanSigma(samples []float64) (float64, float64) {

	if len(samples) == 0 {
		return 0, 0
	}

	mean := stat.Mean(samples, nil)

	if len(samples) < 2 {
		return mean, 0
	}

	return mean, stat.StdDev(samples, nil)
}
