package controller

// Button identifies one of the eight inputs on a standard controller,
// in the order the hardware shifts them out.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller represents a standard NES controller.
type Controller struct {
	buttons [8]bool
	index   byte // the current bit being read from the shift register
	strobe  byte
}

// New creates a new Controller instance.
func New() *Controller {
	return &Controller{}
}

// SetButtons updates the state of all eight buttons at once.
func (c *Controller) SetButtons(buttons [8]bool) {
	c.buttons = buttons
}

// SetButton updates the state of a single button.
func (c *Controller) SetButton(b Button, pressed bool) {
	c.buttons[b] = pressed
}

// Write handles CPU writes to the controller register ($4016 or $4017).
func (c *Controller) Write(data byte) {
	c.strobe = data & 1
	if c.strobe == 1 {
		c.index = 0 // Strobe high, reset the read index
	}
}

// Read handles CPU reads from the controller register.
func (c *Controller) Read() byte {
	if c.index >= 8 {
		return 1 // After the 8 main buttons, standard controllers return 1.
	}

	value := byte(0)
	if c.buttons[c.index] {
		value = 1
	}

	// If strobe is low, the shift register is advanced on each read.
	if c.strobe == 0 {
		c.index++
	}

	return value
}
