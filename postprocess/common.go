package postprocess

import (
	"github.com/Spadeyache/go-rescueline/postprocess/result"
	"github.com/chewxy/math32"
)

// clamp restricts the value val to be within the range min and max
func clamp(val, min, max float32) float32 {
	return math32.Max(min, math32.Min(val, max))
}

// boxToPixels converts a normalised center box into a pixel-space corner
// box clamped to the image bounds.  Clamping may legitimately degenerate
// a box to zero area at the frame edge.
func boxToPixels(xCenter, yCenter, width, height float32,
	imgWidth, imgHeight int) result.BoxRect {

	x1 := (xCenter - width/2) * float32(imgWidth)
	y1 := (yCenter - height/2) * float32(imgHeight)
	x2 := (xCenter + width/2) * float32(imgWidth)
	y2 := (yCenter + height/2) * float32(imgHeight)

	x1 = clamp(x1, 0, float32(imgWidth))
	y1 = clamp(y1, 0, float32(imgHeight))
	x2 = clamp(x2, 0, float32(imgWidth))
	y2 = clamp(y2, 0, float32(imgHeight))

	left := int(x1)
	top := int(y1)

	return result.BoxRect{
		X:      left,
		Y:      top,
		Width:  int(x2) - left,
		Height: int(y2) - top,
	}
}

// CalcIoU works out the Intersection over Union (IoU) value of two boxes.
// IoU is defined as 0 when the union is 0, which occurs when both boxes
// have degenerated to zero area.
func CalcIoU(a, b result.BoxRect) float32 {

	iw := math32.Max(0, math32.Min(float32(a.X2()), float32(b.X2()))-
		math32.Max(float32(a.X), float32(b.X)))
	ih := math32.Max(0, math32.Min(float32(a.Y2()), float32(b.Y2()))-
		math32.Max(float32(a.Y), float32(b.Y)))

	intersection := iw * ih

	union := float32(a.Area()) + float32(b.Area()) - intersection

	if union <= 0 {
		return 0.0
	}

	return intersection / union
}
