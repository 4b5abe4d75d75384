package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/Spadeyache/go-rescueline/postprocess/result"
	"gocv.io/x/gocv"
)

// boxLabel holds the label rendering details for a single detection box
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// DetectionBoxes renders the bounding boxes around the objects detected
// with a "class name score" label above each box.  Boxes are expected in
// the pixel space of img, see RescaleBoxes when the frame resolution
// differs from the model input size.
func DetectionBoxes(img *gocv.Mat, detectResults []result.DetectResult,
	classNames []string, font Font, lineThickness int) {

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0, len(detectResults))

	for _, detResult := range detectResults {

		useClr := ClassColor(detResult.Class)

		// draw rectangle around detected object
		rect := image.Rect(detResult.Box.X, detResult.Box.Y,
			detResult.Box.X2(), detResult.Box.Y2())
		gocv.Rectangle(img, rect, useClr, lineThickness)

		name := fmt.Sprintf("class %d", detResult.Class)

		if detResult.Class < len(classNames) {
			name = classNames[detResult.Class]
		}

		// create text for label
		text := fmt.Sprintf("%s %.2f", name, detResult.Probability)
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

		// Calculate the alignment of text label
		var centerX int

		switch font.Alignment {
		case Center:
			centerX = (detResult.Box.X + detResult.Box.X2()) / 2

		case Right:
			centerX = detResult.Box.X2() - (textSize.X / 2) - font.RightPad + (lineThickness / 2)

		case Left:
			fallthrough
		default:
			centerX = detResult.Box.X + (textSize.X / 2) + font.LeftPad - (lineThickness / 2)
		}

		// Adjust the label position so the text is centered horizontally
		labelPosition := image.Pt(centerX-textSize.X/2, detResult.Box.Y-font.BottomPad)

		// create box for placing text on
		bRect := image.Rect(centerX-textSize.X/2-font.LeftPad,
			detResult.Box.Y-textSize.Y-font.TopPad-font.BottomPad,
			centerX+textSize.X/2+font.RightPad, detResult.Box.Y)

		boxLabels = append(boxLabels, boxLabel{
			rect:    bRect,
			clr:     useClr,
			text:    text,
			textPos: labelPosition,
		})
	}

	// draw all precalculated box labels so they are the top most layer on
	// the image
	for _, box := range boxLabels {
		// draw box text gets written on
		gocv.Rectangle(img, box.rect, box.clr, -1)

		// Draw the label over box
		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}

// RescaleBoxes maps detection boxes from model input pixel space into a
// frame of the given scale factors, for drawing over frames whose
// resolution differs from the model input size
func RescaleBoxes(detectResults []result.DetectResult,
	scaleW, scaleH float32) []result.DetectResult {

	scaled := make([]result.DetectResult, len(detectResults))

	for i, detResult := range detectResults {
		scaled[i] = detResult
		scaled[i].Box = result.BoxRect{
			X:      int(float32(detResult.Box.X) * scaleW),
			Y:      int(float32(detResult.Box.Y) * scaleH),
			Width:  int(float32(detResult.Box.Width) * scaleW),
			Height: int(float32(detResult.Box.Height) * scaleH),
		}
	}

	return scaled
}
