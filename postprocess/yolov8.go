package postprocess

import (
	rescueline "github.com/Spadeyache/go-rescueline"
	"github.com/Spadeyache/go-rescueline/postprocess/result"
)

// YOLOv8 defines the struct for YOLOv8 model inference post processing.
// The model emits a single output tensor of prediction rows in the layout
// [x center, y center, width, height, class scores...], all coordinates
// normalised to the model input size.
type YOLOv8 struct {
	// Params are the Model configuration parameters
	Params YOLOv8Params
	// idGen is a counter that increments and provides the next number
	// for each detection result ID
	idGen *result.IDGenerator
}

// YOLOv8Params defines the struct containing the YOLOv8 parameters to use
// for post processing operations
type YOLOv8Params struct {
	// ConfThreshold is the minimum class score required for a prediction
	// row to be kept as a detection candidate
	ConfThreshold float32
	// NMSThreshold is the Non-Maximum Suppression threshold used for
	// defining the maximum allowed Intersection Over Union (IoU) between
	// two bounding boxes of the same class for both to be kept
	NMSThreshold float32
	// ObjectClassNum is the number of different object classes the Model
	// has been trained with
	ObjectClassNum int
	// InputWidth is the pixel width of input image the Model was trained on,
	// detection boxes are mapped into this pixel space
	InputWidth int
	// InputHeight is the pixel height of input image the Model was trained on
	InputHeight int
	// MaxObjectNumber is the maximum number of objects detected that can be
	// returned
	MaxObjectNumber int
}

// YOLOv8DefaultParams returns an instance of YOLOv8Params configured with
// the values the deployed detection model was compiled with:
//   - Confidence Threshold: 0.25
//   - NMS Threshold: 0.45
//   - Input Size: 320x320
//   - Maximum Object Number: 64
//
// classNum is the number of object classes the Model was trained with.
func YOLOv8DefaultParams(classNum int) YOLOv8Params {
	return YOLOv8Params{
		ConfThreshold:   0.25,
		NMSThreshold:    0.45,
		ObjectClassNum:  classNum,
		InputWidth:      320,
		InputHeight:     320,
		MaxObjectNumber: 64,
	}
}

// NewYOLOv8 returns an instance of the YOLOv8 post processor
func NewYOLOv8(p YOLOv8Params) *YOLOv8 {
	return &YOLOv8{
		Params: p,
		idGen:  result.NewIDGenerator(),
	}
}

// DecodePredictions decodes each raw prediction row into a detection
// candidate with a clamped pixel-space bounding box.  A row is kept when
// its maximum class score reaches the confidence threshold; the class ID
// is the argmax index with ties broken by the lowest class ID.  Rows with
// the wrong number of values are skipped, losing one candidate without
// failing the frame.  An empty raw output tensor yields no candidates.
func (y *YOLOv8) DecodePredictions(outputs *rescueline.Outputs) []result.DetectResult {

	if outputs == nil {
		return nil
	}

	rowSize := 4 + y.Params.ObjectClassNum
	detections := make([]result.DetectResult, 0)

	for _, row := range outputs.Rows() {

		// malformed prediction row, skip this single element
		if len(row) != rowSize {
			continue
		}

		scores := row[4:]

		maxConf := scores[0]
		classID := 0

		for k := 1; k < y.Params.ObjectClassNum; k++ {
			if scores[k] > maxConf {
				maxConf = scores[k]
				classID = k
			}
		}

		if maxConf < y.Params.ConfThreshold {
			continue
		}

		box := boxToPixels(row[0], row[1], row[2], row[3],
			y.Params.InputWidth, y.Params.InputHeight)

		detections = append(detections, result.DetectResult{
			Class:       classID,
			Box:         box,
			Probability: maxConf,
			ID:          y.idGen.GetNext(),
		})
	}

	return detections
}

// SuppressObjects applies Non-Maximum Suppression to decoded detection
// candidates and caps the result at MaxObjectNumber
func (y *YOLOv8) SuppressObjects(detections []result.DetectResult) []result.DetectResult {

	kept := NonMaxSuppression(detections, y.Params.NMSThreshold)

	if y.Params.MaxObjectNumber > 0 && len(kept) > y.Params.MaxObjectNumber {
		kept = kept[:y.Params.MaxObjectNumber]
	}

	return kept
}

// DetectObjects takes the raw model outputs and runs the full object
// detection post processing, decode then suppression, returning the final
// results for the frame
func (y *YOLOv8) DetectObjects(outputs *rescueline.Outputs) []result.DetectResult {

	detections := y.DecodePredictions(outputs)

	if len(detections) == 0 {
		// no object detected
		return nil
	}

	return y.SuppressObjects(detections)
}
