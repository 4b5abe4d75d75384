package preprocess

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestResizerScalesFrame(t *testing.T) {

	resizer := NewResizer(320, 320)

	src := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer src.Close()

	dest, owned := resizer.Resize(src)

	if !owned {
		t.Error("expected resized frame to be caller owned")
	}

	defer dest.Close()

	if dest.Cols() != 320 || dest.Rows() != 320 {
		t.Errorf("expected 320x320 output, got %dx%d", dest.Cols(), dest.Rows())
	}
}

func TestResizerPassthrough(t *testing.T) {

	resizer := NewResizer(320, 320)

	src := gocv.NewMatWithSize(320, 320, gocv.MatTypeCV8UC3)
	defer src.Close()

	dest, owned := resizer.Resize(src)

	if owned {
		t.Error("expected matching frame to pass through unowned")
	}

	if dest.Ptr() != src.Ptr() {
		t.Error("expected passthrough to reference the source frame")
	}
}

func TestResizerDimensions(t *testing.T) {

	resizer := NewResizer(640, 480)

	if resizer.DestWidth() != 640 || resizer.DestHeight() != 480 {
		t.Errorf("expected 640x480 resizer, got %dx%d",
			resizer.DestWidth(), resizer.DestHeight())
	}
}
