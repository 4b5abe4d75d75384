package rescueline

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadLabels reads the class names the Model was trained on from the given
// text file.  It should contain one label per line, in training order, as
// the Decoder's class ID is the line number.
func LoadLabels(file string) ([]string, error) {

	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)

	var labels []string

	// read and trim each line
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		labels = append(labels, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return labels, nil
}
