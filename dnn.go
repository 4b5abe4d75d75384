package rescueline

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// DNNEngineParams defines the configuration of the OpenCV DNN reference
// engine for a given exported detection model
type DNNEngineParams struct {
	// InputWidth is the pixel width of the model input tensor
	InputWidth int
	// InputHeight is the pixel height of the model input tensor
	InputHeight int
	// ObjectClassNum is the number of different object classes the Model
	// has been trained with
	ObjectClassNum int
	// Transposed marks models exported with a [1, 4+C, N] output layout
	// instead of [1, N, 4+C].  The engine rearranges the buffer into
	// per prediction rows before handing it to post processing.
	Transposed bool
}

// DNNEngine is a reference Engine implementation backed by the OpenCV DNN
// module.  It runs an ONNX exported detection model on the CPU so the
// pipeline can be developed and tested off the robot, where the compiled
// NPU inference artifact is not usable.
type DNNEngine struct {
	net    gocv.Net
	params DNNEngineParams
}

// NewDNNEngine loads the given ONNX model file into the OpenCV DNN module
func NewDNNEngine(modelFile string, p DNNEngineParams) (*DNNEngine, error) {

	if p.InputWidth <= 0 || p.InputHeight <= 0 {
		return nil, fmt.Errorf("model input size %dx%d is invalid",
			p.InputWidth, p.InputHeight)
	}

	if p.ObjectClassNum <= 0 {
		return nil, fmt.Errorf("object class number must be positive")
	}

	net := gocv.ReadNetFromONNX(modelFile)

	if net.Empty() {
		return nil, fmt.Errorf("error reading model file %s", modelFile)
	}

	return &DNNEngine{
		net:    net,
		params: p,
	}, nil
}

// InputSize returns the width and height of the model input tensor
func (e *DNNEngine) InputSize() (int, int) {
	return e.params.InputWidth, e.params.InputHeight
}

// Infer runs the model over the given image and returns the raw output
// tensor.  The returned Outputs own a copy of the output buffer so they
// remain valid after the engine's internal Mats are released.
func (e *DNNEngine) Infer(img gocv.Mat) (*Outputs, error) {

	if img.Empty() {
		return nil, fmt.Errorf("input image is empty")
	}

	blob := gocv.BlobFromImage(img, 1.0/255.0,
		image.Pt(e.params.InputWidth, e.params.InputHeight),
		gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	e.net.SetInput(blob, "")

	out := e.net.Forward("")
	defer out.Close()

	data, err := out.DataPtrFloat32()

	if err != nil {
		return nil, fmt.Errorf("error reading output tensor: %w", err)
	}

	rowSize := 4 + e.params.ObjectClassNum

	buf := make([]float32, len(data))

	if e.params.Transposed {
		// model emits one attribute plane per row, rearrange into
		// per prediction rows
		n := len(data) / rowSize

		for i := 0; i < n; i++ {
			for j := 0; j < rowSize; j++ {
				buf[i*rowSize+j] = data[j*n+i]
			}
		}
	} else {
		copy(buf, data)
	}

	return NewOutputs(buf, rowSize)
}

// Close releases the DNN network resources
func (e *DNNEngine) Close() error {
	return e.net.Close()
}
