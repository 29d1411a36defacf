// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"fmt"
	"log"
)

// Flag is the condition code register value. Exactly one flag is held at
// a time, and arithmetic instructions are the only writers. FLAG_NEGATIVE
// and FLAG_CARRY are reserved: they are part of the taxonomy, but current
// arithmetic never produces them.
type Flag int

//go:generate go tool stringer -linecomment -type=Flag
const (
	FLAG_DEFAULT  = Flag(0) // default
	FLAG_ZERO     = Flag(1) // zero
	FLAG_OVERFLOW = Flag(2) // overflow
	FLAG_NEGATIVE = Flag(3) // negative
	FLAG_CARRY    = Flag(4) // carry
)

// Machine is the virtual machine state: the register bank, the condition
// flag, the memory block with its stack pointer, and the instruction
// pointer into the attached program arena.
//
// A machine is owned by a single caller and runs one program start to
// finish; nothing here is safe for concurrent use.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Program *Program // Attached program arena.

	Ip       int               // Index of the next arena cell to fetch.
	Register [4]int8           // Register bank: A, B, X, Y.
	Sp       uint8             // Stack pointer into Memory; the stack grows downward.
	Cc       Flag              // Condition flag.
	Memory   [MEMORY_SIZE]int8 // Memory block; doubles as stack storage.

	Halted bool // Terminal state; no instruction executes once set.

	Ticks      int // Opcodes dispatched.
	Strays     int // Raw cells skipped at the fetch position.
	Mismatches int // Operand fetches that defaulted to zero.
	Drops      int // Pushes dropped with the stack full.
	Underruns  int // Pops that yielded zero with the stack empty.
}

// NewMachine creates a machine owning the given program. All registers,
// memory cells and counters are zero, the stack is empty, and the
// condition flag is FLAG_DEFAULT. Construction cannot fail; a nil
// program halts on the first step.
func NewMachine(prog *Program) (m *Machine) {
	m = &Machine{
		Program: prog,
	}

	m.Reset()

	return
}

// The four register selectors by name.
var irMap = map[string]CodeIR{
	"a": IR_REG_A,
	"b": IR_REG_B,
	"x": IR_REG_X,
	"y": IR_REG_Y,
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	regs := []string{
		"ip", "cc",
		"a", "b", "x", "y",
		"sp", "stack",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "ip":
			strval = fmt.Sprintf("%02x", m.Ip)
		case "cc":
			strval = m.Cc.String()
		case "a", "b", "x", "y":
			strval = fmt.Sprintf("%d", m.Register[irMap[reg]])
		case "sp":
			strval = fmt.Sprintf("%02x", m.Sp)
		case "stack":
			val, ok := m.Peek()
			if ok {
				strval = fmt.Sprintf("%d", val)
			} else {
				strval = "--"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Reset restores the construction state. Registers, memory and counters
// are cleared, the stack is empty, the flag is FLAG_DEFAULT, and the
// instruction pointer is back at the first cell. The attached program
// and the Verbose setting are retained.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("vm: reset")
	}

	clear(m.Register[:])
	clear(m.Memory[:])
	m.Sp = STACK_TOP
	m.Cc = FLAG_DEFAULT
	m.Ip = 0
	m.Halted = false

	m.Ticks = 0
	m.Strays = 0
	m.Mismatches = 0
	m.Drops = 0
	m.Underruns = 0
}

// FetchCode fetches the next arena cell and advances the instruction
// pointer. ok is false once the arena is exhausted.
func (m *Machine) FetchCode() (code Code, ok bool) {
	if m.Program == nil || m.Ip >= len(m.Program.Code) {
		return
	}

	code = m.Program.Code[m.Ip]
	m.Ip++
	ok = true

	return
}

// Step performs a single fetch/decode/execute cycle. done reports the
// halted state: true once the machine has executed HALT, dispatched a
// word outside the instruction set, or run off the end of the arena.
func (m *Machine) Step() (done bool) {
	if m.Halted {
		done = true
		return
	}

	code, ok := m.FetchCode()
	if !ok {
		// Implicit halt: the arena is exhausted.
		if m.Verbose {
			log.Printf("vm: %02x: end of code", m.Ip)
		}
		m.Halted = true
		done = true
		return
	}

	m.Execute(code)
	done = m.Halted

	return
}

// Run steps the machine until it halts. A program whose branches never
// reach HALT and never run off the arena end will not return.
func (m *Machine) Run() {
	for !m.Step() {
	}
}

// Execute executes a single cell. A raw cell at the execute position is
// a malformed stream: it is skipped and counted, not an error. A word
// outside the instruction set halts the machine. Every anomaly inside
// the handlers degrades to a defined fallback value, so Execute has no
// error path.
func (m *Machine) Execute(code Code) {
	if m.Verbose {
		log.Printf("vm: %02x: %v", m.Ip-1, code)
	}

	if code.Kind() == KIND_RAW {
		// Stray operand cell: discard and continue.
		m.Strays++
		if m.Verbose {
			log.Printf("vm: stray operand %v", code.Operand())
		}
		return
	}

	m.Ticks++

	if !code.Valid() {
		if m.Verbose {
			log.Printf("vm: invalid code 0x%04x", uint16(code))
		}
		m.Halted = true
		return
	}

	switch code.Op() {
	case OP_PUSH:
		m.doPush(code.Ir())
	case OP_POP:
		m.doPop(code.Ir())
	case OP_ADD:
		m.doAdd(code.Ir())
	case OP_SUB:
		m.doSub(code.Ir())
	case OP_SET:
		m.doSet(code.Ir())
	case OP_BR:
		m.doBranch(code.Br())
	case OP_HALT:
		m.Halted = true
	}
}

// fetchOperand reads the operand cell following the current instruction.
// A mismatched cell (an opcode where an operand belongs) is consumed and
// reads as zero; an exhausted arena also reads as zero. Execution
// continues either way.
func (m *Machine) fetchOperand() (value int8) {
	code, ok := m.FetchCode()
	if !ok {
		m.Mismatches++
		if m.Verbose {
			log.Printf("vm: operand missing at end of code")
		}
		return
	}

	if code.Kind() != KIND_RAW {
		m.Mismatches++
		if m.Verbose {
			log.Printf("vm: operand expected, found %v", code)
		}
		return
	}

	value = code.Operand()

	return
}

// doAdd implements the add-immediate family. The guard tests the positive
// bound only and rejects the add outright, leaving the register at its
// prior value rather than saturating or wrapping it.
func (m *Machine) doAdd(reg CodeIR) {
	arg := m.fetchOperand()
	val := m.Register[reg]

	switch {
	case 127-int(val) < int(arg):
		m.Cc = FLAG_OVERFLOW
	case int(val)+int(arg) == 0:
		m.Cc = FLAG_ZERO
		m.Register[reg] = 0
	default:
		m.Cc = FLAG_DEFAULT
		m.Register[reg] = int8(int(val) + int(arg))
	}
}

// doSub implements the subtract-immediate family. The guard is the
// literal reg < arg comparison: any subtraction below the register value
// is rejected, including ones whose negative result would have been
// representable.
func (m *Machine) doSub(reg CodeIR) {
	arg := m.fetchOperand()
	val := m.Register[reg]

	switch {
	case val < arg:
		m.Cc = FLAG_OVERFLOW
	case val == arg:
		m.Cc = FLAG_ZERO
		m.Register[reg] = 0
	default:
		m.Cc = FLAG_DEFAULT
		m.Register[reg] = val - arg
	}
}

// doSet implements the set-immediate family. The condition flag is an
// arithmetic side effect only; set leaves it alone.
func (m *Machine) doSet(reg CodeIR) {
	m.Register[reg] = m.fetchOperand()
}

// doPush implements the push family: a register value, or the operand
// cell for the immediate form.
func (m *Machine) doPush(src CodeIR) {
	var value int8
	if src == IR_IMMEDIATE {
		value = m.fetchOperand()
	} else {
		value = m.Register[src]
	}

	m.Push(value)
}

// doPop implements the pop family.
func (m *Machine) doPop(reg CodeIR) {
	m.Register[reg] = m.Pop()
}

// doBranch implements the conditional branch family. The target operand
// is consumed whether or not the branch is taken, so the instruction
// always occupies two cells. The operand byte is reinterpreted unsigned
// as an absolute arena index.
func (m *Machine) doBranch(br CodeBr) {
	target := uint8(m.fetchOperand())

	if m.Cc != br.Flag() {
		return
	}

	if m.Verbose {
		log.Printf("vm: branch to %02x", target)
	}

	m.Ip = int(target)
}
