package render

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// FPSOverlay draws the current frames per second value in the top left
// corner of the image
func FPSOverlay(img *gocv.Mat, fps int, font Font) {
	gocv.PutTextWithParams(img, fmt.Sprintf("FPS: %d", fps),
		image.Pt(10, 20), font.Face, font.Scale, font.Color,
		font.Thickness, font.LineType, false)
}

// StatsOverlay draws a header bar across the top of the image with the
// frame number, FPS, object count and processing times in milliseconds
func StatsOverlay(img *gocv.Mat, frameNum, fps, objCnt int,
	inferMs, postMs, totalMs float32, font Font) {

	// blank out background so text is readable over the video
	rect := image.Rect(0, 0, img.Cols(), 24)
	gocv.Rectangle(img, rect, Black, -1)

	text := fmt.Sprintf("Frame: %d, FPS: %d, Objects: %d, Inference: %.2fms, Post Processing: %.2fms, Total: %.2fms",
		frameNum, fps, objCnt, inferMs, postMs, totalMs)

	gocv.PutTextWithParams(img, text, image.Pt(4, 16),
		font.Face, font.Scale, Pink, font.Thickness, font.LineType, false)
}
