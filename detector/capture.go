package detector

import (
	"fmt"

	"gocv.io/x/gocv"
)

// FrameSource supplies captured frames to the loop.  Read blocks until
// the next frame is available and returns false when no frame could be
// captured, which the loop treats as a retry rather than an error.
type FrameSource interface {
	// Read captures the next frame into img.  Returns false when no
	// frame is available.
	Read(img *gocv.Mat) bool
	// Close releases the capture device
	Close() error
}

// VideoCapture adapts a gocv capture device (camera or video file) to the
// FrameSource interface.  An optional colour conversion is applied to
// each captured frame for sources that do not deliver frames in the
// channel order the Model was trained with.
type VideoCapture struct {
	cap *gocv.VideoCapture
	// convert colorspace of captured frames when set
	convert  bool
	convCode gocv.ColorConversionCode
}

// OpenVideoCapture opens a capture device.  The device argument takes the
// forms accepted by gocv, a device ID int or a video file name string.  A
// device that cannot be started is a fatal initialization failure, the
// frame loop is never run on a partially opened source.
func OpenVideoCapture(device interface{}) (*VideoCapture, error) {

	cap, err := gocv.OpenVideoCapture(device)

	if err != nil {
		return nil, fmt.Errorf("error opening capture device %v: %w", device, err)
	}

	return &VideoCapture{cap: cap}, nil
}

// SetColorConversion sets a colour conversion applied to every captured
// frame, eg: gocv.ColorBGRToRGB for webcams delivering BGR frames to a
// model trained on RGB input
func (v *VideoCapture) SetColorConversion(code gocv.ColorConversionCode) {
	v.convert = true
	v.convCode = code
}

// Read captures the next frame, returning false when the device produced
// no usable frame
func (v *VideoCapture) Read(img *gocv.Mat) bool {

	if ok := v.cap.Read(img); !ok {
		return false
	}

	if img.Empty() {
		return false
	}

	if v.convert {
		gocv.CvtColor(*img, img, v.convCode)
	}

	return true
}

// Close releases the capture device
func (v *VideoCapture) Close() error {
	return v.cap.Close()
}
