package detector

import "fmt"

// DefaultMemoryReclaimInterval is the number of processed frames between
// explicit memory reclamation passes
const DefaultMemoryReclaimInterval = 10

// Config holds the frame loop configuration.  All values are fixed at
// loop construction and cannot be reloaded mid-run.
type Config struct {
	// ModelInputWidth is the pixel width of the model input tensor
	ModelInputWidth int
	// ModelInputHeight is the pixel height of the model input tensor
	ModelInputHeight int
	// ConfidenceThreshold is the minimum class score required for a
	// prediction to become a detection, in the range [0,1]
	ConfidenceThreshold float32
	// IoUThreshold is the Non-Maximum Suppression threshold, in the
	// range [0,1]
	IoUThreshold float32
	// ClassNames are the class labels the Model was trained with, in
	// training order
	ClassNames []string
	// MemoryReclaimInterval is the number of processed frames between
	// explicit reclamation of transient frame memory.  Defaults to
	// DefaultMemoryReclaimInterval when zero.
	MemoryReclaimInterval int
}

// Validate checks the configuration values and applies defaults
func (c *Config) Validate() error {

	if c.ModelInputWidth <= 0 || c.ModelInputHeight <= 0 {
		return fmt.Errorf("model input size %dx%d is invalid",
			c.ModelInputWidth, c.ModelInputHeight)
	}

	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence threshold %f outside range [0,1]",
			c.ConfidenceThreshold)
	}

	if c.IoUThreshold < 0 || c.IoUThreshold > 1 {
		return fmt.Errorf("IoU threshold %f outside range [0,1]",
			c.IoUThreshold)
	}

	if len(c.ClassNames) == 0 {
		return fmt.Errorf("no class names provided")
	}

	if c.MemoryReclaimInterval < 0 {
		return fmt.Errorf("memory reclaim interval %d is invalid",
			c.MemoryReclaimInterval)
	}

	if c.MemoryReclaimInterval == 0 {
		c.MemoryReclaimInterval = DefaultMemoryReclaimInterval
	}

	return nil
}
