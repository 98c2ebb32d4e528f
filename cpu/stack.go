package cpu

const (
	STACK_LIMIT  = 1024 // Maximum evaluation stack depth of a frame.
	LOCALS_LIMIT = 15   // Maximum locals of a routine.
)

// Stack is a routine's evaluation stack.
type Stack struct {
	Data []uint16
}

func (s *Stack) Push(value uint16) {
	s.Data = append(s.Data, value)
}

func (s *Stack) Pop() (value uint16, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) == STACK_LIMIT
}

func (s *Stack) Peek() (value uint16, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}

// Frame is one active routine call.
type Frame struct {
	ReturnAddress uint32   // Program counter to resume at.
	Store         uint8    // Variable receiving the return value.
	Locals        []uint16 // Local variables 1..15.
	Stack         Stack    // Evaluation stack.
}

// Frames is the call stack. The bottom frame is the main routine, and is
// never popped.
type Frames struct {
	Data []Frame
}

// Push adds a new frame.
func (fs *Frames) Push(frame Frame) {
	fs.Data = append(fs.Data, frame)
}

// Pop removes the current frame. The main frame can not be popped.
func (fs *Frames) Pop() (frame Frame, ok bool) {
	if len(fs.Data) < 2 {
		return
	}

	frame = fs.Data[len(fs.Data)-1]
	fs.Data = fs.Data[:len(fs.Data)-1]
	ok = true
	return
}

// Top returns the current frame.
func (fs *Frames) Top() *Frame {
	return &fs.Data[len(fs.Data)-1]
}

// Depth returns the number of frames, including the main frame.
func (fs *Frames) Depth() int {
	return len(fs.Data)
}

// Reset leaves only an empty main frame.
func (fs *Frames) Reset() {
	fs.Data = append(fs.Data[:0], Frame{})
}
