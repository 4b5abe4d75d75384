package postprocess

import (
	"testing"

	rescueline "github.com/Spadeyache/go-rescueline"
)

// testParams returns post processing params for a 2 class model on a
// 320x320 input
func testParams() YOLOv8Params {
	return YOLOv8Params{
		ConfThreshold:   0.5,
		NMSThreshold:    0.45,
		ObjectClassNum:  2,
		InputWidth:      320,
		InputHeight:     320,
		MaxObjectNumber: 64,
	}
}

func mustOutputs(t *testing.T, buf []float32, rowSize int) *rescueline.Outputs {
	t.Helper()

	outputs, err := rescueline.NewOutputs(buf, rowSize)

	if err != nil {
		t.Fatalf("failed to create outputs: %v", err)
	}

	return outputs
}

func TestDecodePredictions(t *testing.T) {

	y := NewYOLOv8(testParams())

	// single prediction centered at (0.5, 0.5), size 0.2, class 0 score
	// 0.9, class 1 score 0.1
	outputs := mustOutputs(t, []float32{0.5, 0.5, 0.2, 0.2, 0.9, 0.1}, 6)

	detections := y.DecodePredictions(outputs)

	if len(detections) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(detections))
	}

	det := detections[0]

	if det.Class != 0 {
		t.Errorf("expected class 0, got %d", det.Class)
	}

	if det.Probability != 0.9 {
		t.Errorf("expected confidence 0.9, got %f", det.Probability)
	}

	if det.Box.X != 128 || det.Box.Y != 128 {
		t.Errorf("expected box origin (128,128), got (%d,%d)",
			det.Box.X, det.Box.Y)
	}

	if det.Box.Width != 64 || det.Box.Height != 64 {
		t.Errorf("expected box size 64x64, got %dx%d",
			det.Box.Width, det.Box.Height)
	}
}

func TestDecodeConfidenceFilter(t *testing.T) {

	y := NewYOLOv8(testParams())

	// rows below the 0.5 threshold yield no detection, rows at or above
	// yield exactly one each
	outputs := mustOutputs(t, []float32{
		0.5, 0.5, 0.2, 0.2, 0.49, 0.2, // below threshold, dropped
		0.5, 0.5, 0.2, 0.2, 0.50, 0.1, // at threshold, kept
		0.2, 0.2, 0.1, 0.1, 0.10, 0.95, // above threshold, kept
		0.8, 0.8, 0.1, 0.1, 0.01, 0.02, // below threshold, dropped
	}, 6)

	detections := y.DecodePredictions(outputs)

	if len(detections) != 2 {
		t.Fatalf("expected 2 detections, got %d", len(detections))
	}

	if detections[0].Probability != 0.50 || detections[0].Class != 0 {
		t.Errorf("expected first detection class 0 conf 0.50, got class %d conf %f",
			detections[0].Class, detections[0].Probability)
	}

	if detections[1].Probability != 0.95 || detections[1].Class != 1 {
		t.Errorf("expected second detection class 1 conf 0.95, got class %d conf %f",
			detections[1].Class, detections[1].Probability)
	}
}

func TestDecodeArgmaxTieBreak(t *testing.T) {

	y := NewYOLOv8(testParams())

	// equal class scores resolve to the lowest class ID
	outputs := mustOutputs(t, []float32{0.5, 0.5, 0.2, 0.2, 0.8, 0.8}, 6)

	detections := y.DecodePredictions(outputs)

	if len(detections) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(detections))
	}

	if detections[0].Class != 0 {
		t.Errorf("expected tie broken to class 0, got %d", detections[0].Class)
	}
}

func TestDecodeMalformedRowSkipped(t *testing.T) {

	y := NewYOLOv8(testParams())

	// one full row followed by a truncated trailing row.  the malformed
	// element is skipped without failing the frame.
	outputs := mustOutputs(t, []float32{
		0.5, 0.5, 0.2, 0.2, 0.9, 0.1,
		0.3, 0.3, 0.1,
	}, 6)

	detections := y.DecodePredictions(outputs)

	if len(detections) != 1 {
		t.Fatalf("expected malformed row skipped leaving 1 detection, got %d",
			len(detections))
	}
}

func TestDecodeWrongArityRowsSkipped(t *testing.T) {

	y := NewYOLOv8(testParams())

	// outputs sized for a different class count than the post processor
	// expects, every row is malformed and skipped
	outputs := mustOutputs(t, []float32{
		0.5, 0.5, 0.2, 0.2, 0.9, 0.1, 0.3,
		0.5, 0.5, 0.2, 0.2, 0.9, 0.1, 0.3,
	}, 7)

	detections := y.DecodePredictions(outputs)

	if len(detections) != 0 {
		t.Errorf("expected all wrong arity rows skipped, got %d detections",
			len(detections))
	}
}

func TestDecodeEmptyOutputs(t *testing.T) {

	y := NewYOLOv8(testParams())

	outputs := mustOutputs(t, []float32{}, 6)

	detections := y.DecodePredictions(outputs)

	if len(detections) != 0 {
		t.Errorf("expected no detections for empty tensor, got %d",
			len(detections))
	}
}

func TestDetectObjects(t *testing.T) {

	y := NewYOLOv8(testParams())

	// two overlapping class 0 boxes and one class 1 box at the same
	// location, suppression keeps the stronger class 0 box and the
	// class 1 box
	outputs := mustOutputs(t, []float32{
		0.5, 0.5, 0.2, 0.2, 0.9, 0.1,
		0.5, 0.5, 0.21, 0.21, 0.7, 0.1,
		0.5, 0.5, 0.2, 0.2, 0.1, 0.8,
	}, 6)

	detections := y.DetectObjects(outputs)

	if len(detections) != 2 {
		t.Fatalf("expected 2 detections after suppression, got %d",
			len(detections))
	}

	if detections[0].Class != 0 || detections[0].Probability != 0.9 {
		t.Errorf("expected strongest class 0 detection first, got class %d conf %f",
			detections[0].Class, detections[0].Probability)
	}

	if detections[1].Class != 1 {
		t.Errorf("expected class 1 detection retained, got class %d",
			detections[1].Class)
	}
}

func TestSuppressObjectsMaxObjectNumber(t *testing.T) {

	p := testParams()
	p.MaxObjectNumber = 2
	y := NewYOLOv8(p)

	// three non overlapping boxes, results capped at MaxObjectNumber
	outputs := mustOutputs(t, []float32{
		0.1, 0.1, 0.1, 0.1, 0.9, 0.1,
		0.5, 0.5, 0.1, 0.1, 0.8, 0.1,
		0.9, 0.9, 0.1, 0.1, 0.7, 0.1,
	}, 6)

	detections := y.DetectObjects(outputs)

	if len(detections) != 2 {
		t.Errorf("expected results capped at 2, got %d", len(detections))
	}
}
