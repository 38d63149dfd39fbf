package controller

import "testing"

func TestReadShiftsButtons(t *testing.T) {
	c := New()
	c.SetButton(ButtonA, true)
	c.SetButton(ButtonStart, true)

	c.Write(1)
	c.Write(0)

	want := []byte{1, 0, 0, 1, 0, 0, 0, 0}
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Errorf("read %d: expected %d, got %d", i, w, got)
		}
	}

	// Standard controllers report 1 once the shift register is drained.
	if got := c.Read(); got != 1 {
		t.Errorf("Expected 1 after 8 reads, got %d", got)
	}
}

func TestStrobeHighRepeatsButtonA(t *testing.T) {
	c := New()
	c.SetButton(ButtonA, true)

	c.Write(1)
	for i := 0; i < 3; i++ {
		if got := c.Read(); got != 1 {
			t.Errorf("read %d: expected continuous A state 1, got %d", i, got)
		}
	}
}
