package postprocess

import (
	"sort"

	"github.com/Spadeyache/go-rescueline/postprocess/result"
)

// NonMaxSuppression implements a greedy, class-scoped Non-Maximum
// Suppression (NMS) algorithm.  Candidates are ordered by descending
// confidence, equal confidences keep their insertion order, and each kept
// detection removes every remaining detection of the same class whose IoU
// with it is at or above iouThreshold.  Detections of different classes
// are never mutually suppressed.  The input slice is not modified.
func NonMaxSuppression(detections []result.DetectResult,
	iouThreshold float32) []result.DetectResult {

	if len(detections) == 0 {
		return nil
	}

	working := make([]result.DetectResult, len(detections))
	copy(working, detections)

	sort.SliceStable(working, func(i, j int) bool {
		return working[i].Probability > working[j].Probability
	})

	keep := make([]result.DetectResult, 0, len(working))

	for len(working) > 0 {

		best := working[0]
		keep = append(keep, best)

		remaining := working[1:]
		working = make([]result.DetectResult, 0, len(remaining))

		for _, det := range remaining {
			if det.Class == best.Class &&
				CalcIoU(best.Box, det.Box) >= iouThreshold {
				continue
			}
			working = append(working, det)
		}
	}

	return keep
}
