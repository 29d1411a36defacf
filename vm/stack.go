package vm

import "log"

const (
	// MEMORY_SIZE is the size of the machine memory block in cells.
	MEMORY_SIZE = 256

	// STACK_TOP is the empty-stack value of the stack pointer. The stack
	// occupies the top of the memory block and grows downward, so cell
	// STACK_TOP is the first one written.
	STACK_TOP = 255
)

// Empty is true when the stack holds no values.
func (m *Machine) Empty() bool {
	return m.Sp == STACK_TOP
}

// Full is true when a push would have no cell left to write.
func (m *Machine) Full() bool {
	return m.Sp == 0
}

// Push pushes a value onto the stack. With the stack full the value is
// dropped and counted; the stored cells and the pointer are untouched.
func (m *Machine) Push(value int8) {
	if m.Full() {
		m.Drops++
		if m.Verbose {
			log.Printf("vm: push %v dropped, stack full", value)
		}
		return
	}

	m.Memory[m.Sp] = value
	m.Sp--
}

// Pop pops the most recent value off the stack. With the stack empty the
// result degrades to zero and the underrun is counted.
func (m *Machine) Pop() (value int8) {
	if m.Empty() {
		m.Underruns++
		if m.Verbose {
			log.Printf("vm: pop underrun, stack empty")
		}
		return
	}

	m.Sp++
	value = m.Memory[m.Sp]

	return
}

// Peek returns the value a Pop would yield, without moving the stack
// pointer. ok is false with the stack empty.
func (m *Machine) Peek() (value int8, ok bool) {
	if m.Empty() {
		return
	}

	value = m.Memory[m.Sp+1]
	ok = true

	return
}
