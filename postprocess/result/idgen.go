package result

import "sync"

// IDGenerator holds a counter for generating the next incremental ID
// number assigned to detection results
type IDGenerator struct {
	mu sync.Mutex
	id int64
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// GetNext returns the next incremental number
func (g *IDGenerator) GetNext() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id++
	return g.id
}
