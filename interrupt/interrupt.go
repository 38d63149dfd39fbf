// Package interrupt provides the edge-triggered NMI linkage between the
// PPU and the CPU. The line is shared by construction so either unit can be
// tested in isolation with its own instance.
package interrupt

// Line is a single edge-triggered interrupt condition. The PPU raises it at
// the start of vertical blank and the CPU consumes it at its next
// instruction boundary. A second Raise before the CPU consumes the first
// coalesces; at most one pending interrupt is meaningful.
type Line struct {
	pending bool
}

// NewLine creates an unasserted interrupt line.
func NewLine() *Line {
	return &Line{}
}

// Raise asserts the interrupt condition.
func (l *Line) Raise() {
	l.pending = true
}

// Pending reports whether the condition is asserted without consuming it.
func (l *Line) Pending() bool {
	return l.pending
}

// Consume returns whether the condition was asserted and clears it.
func (l *Line) Consume() bool {
	p := l.pending
	l.pending = false
	return p
}
