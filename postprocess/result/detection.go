package result

// BoxRect is the pixel-space bounding box of a detected object, given as
// the top left corner with width and height.  Boxes always lie fully
// inside the frame, X >= 0, Y >= 0, X+Width <= frame width and
// Y+Height <= frame height.  Width or Height may legitimately be zero for
// a box clamped at the frame edge.
type BoxRect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// X2 returns the right edge of the box
func (b BoxRect) X2() int {
	return b.X + b.Width
}

// Y2 returns the bottom edge of the box
func (b BoxRect) Y2() int {
	return b.Y + b.Height
}

// Area returns the pixel area of the box
func (b BoxRect) Area() int {
	return b.Width * b.Height
}

// DetectResult defines the attributes of a single object detected.
// Results live for one frame's processing cycle only and are not carried
// across frames.
type DetectResult struct {
	// Class is the line number in the labels file the Model was trained on
	// defining the Class of the detected object
	Class int
	// Box are the bounding box dimensions of the object location
	Box BoxRect
	// Probability is the confidence score of the object detected
	Probability float32
	// ID is a unique ID assigned to the detection result
	ID int64
}
