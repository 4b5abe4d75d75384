/*
go-rescueline provides the on-device object detection pipeline for the
RescueLine robot's camera board.  It decodes the raw output tensor of a
compiled YOLOv8 detection model into pixel-space bounding boxes, filters
them by confidence, suppresses overlapping boxes with class-scoped NMS,
and runs the capture/infer/render cycle inside the board's 128MB memory
budget with periodic reclamation of transient frame buffers.

Model training, ONNX export, and compilation of the inference artifact are
performed off-device by external tooling.  The compiled model is reached
through the Engine interface; a reference Engine backed by the OpenCV DNN
module is included for development on a workstation.

See example code and usage in the example subdirectory.
*/
package rescueline
