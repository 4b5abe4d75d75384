package rescueline

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Engine is the contract for a compiled model runtime.  Infer takes an
// image already scaled to the model input tensor size and returns the raw
// output tensor of one detection pass.  The pipeline treats the engine as
// a black box; the concrete implementation may be an NPU runtime on the
// device or the bundled OpenCV DNN engine on a workstation.
type Engine interface {
	// Infer runs the model over the given image and returns the raw
	// outputs.  The image must match the dimensions reported by InputSize.
	Infer(img gocv.Mat) (*Outputs, error)
	// InputSize returns the width and height of the model input tensor
	InputSize() (int, int)
	// Close releases resources held by the engine
	Close() error
}

// Outputs holds the raw output tensor from one inference call.  The batch
// dimension is always 1 and has already been elided, leaving an ordered
// sequence of predictions where each prediction is a row of RowSize
// values: the 4 normalised box coordinates (x center, y center, width,
// height) followed by one score per object class.
type Outputs struct {
	// BufFloat is the flat raw output buffer
	BufFloat []float32
	// RowSize is the number of values per prediction, being the 4 bounding
	// box attributes plus the number of object classes the Model was
	// trained with
	RowSize int
}

// NewOutputs wraps a float32 raw output buffer.  rowSize must cover the 4
// box attributes plus at least one class score.
func NewOutputs(buf []float32, rowSize int) (*Outputs, error) {

	if rowSize < 5 {
		return nil, fmt.Errorf("row size %d too small, need box attributes plus class scores", rowSize)
	}

	return &Outputs{
		BufFloat: buf,
		RowSize:  rowSize,
	}, nil
}

// NewOutputsFloat16 wraps a raw output buffer of float16 values as
// produced by NPU runtimes that keep output tensors in half precision.
// The buffer is converted to float32 before post processing.
func NewOutputsFloat16(buf []uint16, rowSize int) (*Outputs, error) {
	return NewOutputs(convertFloat16BufferToFloat32(buf), rowSize)
}

// NumPredictions returns the number of complete prediction rows in the
// raw output buffer
func (o *Outputs) NumPredictions() int {
	return len(o.BufFloat) / o.RowSize
}

// Rows reshapes the flat raw output buffer into per prediction rows.  The
// rows alias the underlying buffer, no copy is made.  A trailing partial
// row is included as-is so the decoder can account for it as a malformed
// prediction rather than silently losing data.
func (o *Outputs) Rows() [][]float32 {

	if len(o.BufFloat) == 0 {
		return nil
	}

	n := len(o.BufFloat) / o.RowSize
	rows := make([][]float32, 0, n+1)

	for i := 0; i < n; i++ {
		rows = append(rows, o.BufFloat[i*o.RowSize:(i+1)*o.RowSize])
	}

	if rem := len(o.BufFloat) % o.RowSize; rem != 0 {
		rows = append(rows, o.BufFloat[n*o.RowSize:])
	}

	return rows
}
