package input

// Source answers per-frame key queries for the simulation
type Source interface {
	// Down reports whether the key is currently held
	Down(k Key) bool
	// Pressed reports whether the key went down this frame
	Pressed(k Key) bool
	// CloseRequested reports an external request to end the process
	CloseRequested() bool
}

// Frame is an immutable snapshot of keyboard state for one simulation frame
type Frame struct {
	down    map[Key]bool
	pressed map[Key]bool
	closed  bool
}

// NewFrame builds a frame from explicit key sets; pressed keys are also down
func NewFrame(down, pressed []Key) Frame {
	f := Frame{
		down:    make(map[Key]bool, len(down)+len(pressed)),
		pressed: make(map[Key]bool, len(pressed)),
	}
	for _, k := range down {
		f.down[k] = true
	}
	for _, k := range pressed {
		f.down[k] = true
		f.pressed[k] = true
	}
	return f
}

// WithClose returns a copy of the frame carrying a close request
func (f Frame) WithClose() Frame {
	f.closed = true
	return f
}

func (f Frame) Down(k Key) bool      { return f.down[k] }
func (f Frame) Pressed(k Key) bool   { return f.pressed[k] }
func (f Frame) CloseRequested() bool { return f.closed }

// AnyPressed reports whether any of the keys went down this frame
func AnyPressed(src Source, keys ...Key) bool {
	for _, k := range keys {
		if k != KeyNone && src.Pressed(k) {
			return true
		}
	}
	return false
}
