package sink

import (
	"github.com/treelog/treelog/core"
)

// Null renders every admitted record through its pattern and then discards
// the result. Formatting still happens so benchmarks against a null sink
// measure the real pipeline cost.
type Null struct {
	base
}

// NewNull creates a null sink
func NewNull(opts Options) (*Null, error) {
	pat, err := compilePattern(opts)
	if err != nil {
		return nil, err
	}
	return &Null{base: base{pat: pat}}, nil
}

// Message renders rec and drops the output
func (n *Null) Message(rec *core.Record) error {
	n.mu.Lock()
	n.render(rec)
	n.mu.Unlock()
	return nil
}

// Flush is a no-op for the null sink
func (n *Null) Flush() error { return nil }
