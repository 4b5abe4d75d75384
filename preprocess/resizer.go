package preprocess

import (
	"image"

	"gocv.io/x/gocv"
)

// Resizer scales captured frames to the model input tensor size.  Colour
// space is not converted, the frame source must already deliver frames in
// the channel order the Model was trained with.
type Resizer struct {
	// destWidth is the width to scale to
	destWidth int
	// destHeight is the height to scale to
	destHeight int
}

// NewResizer returns a resizer used for scaling frames to the needed
// dimensions for input tensor size
func NewResizer(destWidth, destHeight int) *Resizer {
	return &Resizer{
		destWidth:  destWidth,
		destHeight: destHeight,
	}
}

// Resize returns a Mat sized to the model input dimensions.  When the
// source frame already matches the input size it is returned as is and
// owned is false.  Otherwise a scaled copy is returned and owned is true,
// meaning the caller must Close it once the frame has been processed.
func (r *Resizer) Resize(src gocv.Mat) (dest gocv.Mat, owned bool) {

	if src.Cols() == r.destWidth && src.Rows() == r.destHeight {
		return src, false
	}

	dest = gocv.NewMat()
	gocv.Resize(src, &dest, image.Pt(r.destWidth, r.destHeight),
		0, 0, gocv.InterpolationArea)

	return dest, true
}

// DestWidth returns the width frames are scaled to
func (r *Resizer) DestWidth() int {
	return r.destWidth
}

// DestHeight returns the height frames are scaled to
func (r *Resizer) DestHeight() int {
	return r.destHeight
}
