package interrupt

import "testing"

func TestLine(t *testing.T) {
	l := NewLine()
	if l.Pending() {
		t.Error("Expected a new line to be unasserted")
	}

	l.Raise()
	l.Raise() // coalesces
	if !l.Pending() {
		t.Error("Expected line pending after Raise")
	}

	if !l.Consume() {
		t.Error("Expected Consume to report the raised condition")
	}
	if l.Consume() {
		t.Error("Expected a single Consume per edge")
	}
	if l.Pending() {
		t.Error("Expected line clear after Consume")
	}
}
