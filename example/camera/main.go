package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"

	rescueline "github.com/Spadeyache/go-rescueline"
	"github.com/Spadeyache/go-rescueline/detector"
	"github.com/Spadeyache/go-rescueline/postprocess/result"
	"github.com/Spadeyache/go-rescueline/render"
	"gocv.io/x/gocv"
)

// displayRenderer draws detection boxes and the FPS counter over the
// captured frame and shows it in a window
type displayRenderer struct {
	window      *gocv.Window
	classNames  []string
	font        render.Font
	inputWidth  int
	inputHeight int
}

func (d *displayRenderer) Render(img *gocv.Mat, detections []result.DetectResult, fps int) {

	// scale boxes from model input pixel space to the frame resolution
	scaleW := float32(img.Cols()) / float32(d.inputWidth)
	scaleH := float32(img.Rows()) / float32(d.inputHeight)

	boxes := render.RescaleBoxes(detections, scaleW, scaleH)

	render.DetectionBoxes(img, boxes, d.classNames, d.font, 2)
	render.FPSOverlay(img, fps, d.font)

	d.window.IMShow(*img)
	d.window.WaitKey(1)
}

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	modelFile := flag.String("m", "../data/rescueline-320-320.onnx", "ONNX exported detection model file")
	labelFile := flag.String("l", "../data/labels.txt", "Text file containing model labels")
	device := flag.String("d", "0", "Capture device ID or video file to run object detection on")
	confThresh := flag.Float64("c", 0.25, "Confidence threshold")
	iouThresh := flag.Float64("i", 0.45, "IoU threshold used during NMS")
	inputWidth := flag.Int("W", 320, "Model input tensor width")
	inputHeight := flag.Int("H", 320, "Model input tensor height")
	transposed := flag.Bool("t", true, "Model output layout is [1, 4+C, N]")
	reclaim := flag.Int("r", detector.DefaultMemoryReclaimInterval, "Frames between memory reclamation passes")

	flag.Parse()

	// load in Model class names
	classNames, err := rescueline.LoadLabels(*labelFile)

	if err != nil {
		log.Fatalf("Error loading model labels: %v", err)
	}

	engine, err := rescueline.NewDNNEngine(*modelFile, rescueline.DNNEngineParams{
		InputWidth:     *inputWidth,
		InputHeight:    *inputHeight,
		ObjectClassNum: len(classNames),
		Transposed:     *transposed,
	})

	if err != nil {
		log.Fatalf("Error creating DNN engine: %v", err)
	}

	defer engine.Close()

	// a numeric device flag selects a camera, otherwise a video file
	var capDevice interface{} = *device

	if id, convErr := strconv.Atoi(*device); convErr == nil {
		capDevice = id
	}

	source, err := detector.OpenVideoCapture(capDevice)

	if err != nil {
		log.Fatalf("Error opening capture device: %v", err)
	}

	// webcams deliver BGR frames, the model was trained on RGB input
	source.SetColorConversion(gocv.ColorBGRToRGB)

	window := gocv.NewWindow("rescueline detection")
	defer window.Close()

	loop, err := detector.NewFrameLoop(detector.Config{
		ModelInputWidth:       *inputWidth,
		ModelInputHeight:      *inputHeight,
		ConfidenceThreshold:   float32(*confThresh),
		IoUThreshold:          float32(*iouThresh),
		ClassNames:            classNames,
		MemoryReclaimInterval: *reclaim,
	}, source, engine, &displayRenderer{
		window:      window,
		classNames:  classNames,
		font:        render.DefaultFont(),
		inputWidth:  *inputWidth,
		inputHeight: *inputHeight,
	})

	if err != nil {
		log.Fatalf("Error creating frame loop: %v", err)
	}

	// stop the loop cleanly on keyboard interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := loop.Run(ctx); err != nil {
		log.Fatalf("Frame loop failed: %v", err)
	}
}
