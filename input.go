package datagrid

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// InputState holds input state for the current frame.
// This is typically populated by a backend from GLFW or tcell events.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	// Mouse wheel
	MouseWheelX float32
	MouseWheelY float32
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
	}
	for i := range s.mouseUp {
		s.mouseUp[i] = false
	}
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetMouseWheel sets the mouse wheel delta.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was just clicked (pressed this frame).
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was just released.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}
