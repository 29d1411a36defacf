package vm

import (
	"fmt"
)

// CodeKind is the cell tag: a raw operand byte or an opcode.
type CodeKind int

//go:generate go tool stringer -linecomment -type=CodeKind
const (
	KIND_RAW  = CodeKind(0) // raw
	KIND_CODE = CodeKind(1) // code
)

// CodeOp is the operation family of an opcode cell.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_PUSH = CodeOp(0) // push
	OP_POP  = CodeOp(1) // pop
	OP_ADD  = CodeOp(2) // add
	OP_SUB  = CodeOp(3) // sub
	OP_SET  = CodeOp(4) // set
	OP_BR   = CodeOp(5) // br
	OP_HALT = CodeOp(6) // halt
)

// CodeIR is an Immediate-or-Register selector. The register values index
// the machine register bank; IR_IMMEDIATE marks an operand cell to follow
// (the PUSHi form). POP, ADD, SUB and SET accept registers only.
type CodeIR int

//go:generate go tool stringer -linecomment -type=CodeIR
const (
	IR_REG_A     = CodeIR(0) // a
	IR_REG_B     = CodeIR(1) // b
	IR_REG_X     = CodeIR(2) // x
	IR_REG_Y     = CodeIR(3) // y
	IR_IMMEDIATE = CodeIR(4) // imm
)

// Register returns true if the CodeIR selects a machine register.
func (ir CodeIR) Register() bool {
	return ir >= IR_REG_A && ir <= IR_REG_Y
}

// CodeBr selects the branch condition (the BRZ, BRN and BRO instructions).
type CodeBr int

//go:generate go tool stringer -linecomment -type=CodeBr
const (
	BR_ZERO     = CodeBr(0) // z
	BR_NEGATIVE = CodeBr(1) // n
	BR_OVERFLOW = CodeBr(2) // o
)

// Flag returns the condition flag the branch tests for.
func (br CodeBr) Flag() Flag {
	switch br {
	case BR_ZERO:
		return FLAG_ZERO
	case BR_NEGATIVE:
		return FLAG_NEGATIVE
	case BR_OVERFLOW:
		return FLAG_OVERFLOW
	}

	return FLAG_DEFAULT
}

// Code is a single arena cell, packed into one 16-bit word.
//
// Bit 15 is the kind tag. A raw cell carries a signed operand byte in
// bits 0..7. An opcode cell carries the operation family in bits 12..14
// and a selector nibble (register, push source, or branch condition) in
// bits 8..11.
type Code uint16

// MakeCodeRaw creates a raw operand cell holding a signed byte literal.
func MakeCodeRaw(value int8) Code {
	return Code(uint16(uint8(value)))
}

// makeCode packs an opcode cell from a family and selector nibble.
func makeCode(op CodeOp, sel int) Code {
	return Code((uint16(1) << 15) | ((uint16(op) & 0x7) << 12) | ((uint16(sel) & 0xf) << 8))
}

// MakeCodePush creates a push instruction. A register source pushes the
// register value (PUSHA, PUSHB, PUSHX, PUSHY); IR_IMMEDIATE pushes the
// operand cell that follows (PUSHi).
func MakeCodePush(src CodeIR) Code {
	return makeCode(OP_PUSH, int(src))
}

// MakeCodePop creates a pop instruction targeting a register
// (POPA, POPB, POPX, POPY).
func MakeCodePop(reg CodeIR) Code {
	return makeCode(OP_POP, int(reg))
}

// MakeCodeAdd creates an add-immediate instruction targeting a register
// (ADDA, ADDB, ADDX, ADDY). The operand cell follows.
func MakeCodeAdd(reg CodeIR) Code {
	return makeCode(OP_ADD, int(reg))
}

// MakeCodeSub creates a subtract-immediate instruction targeting a register
// (SUBA, SUBB, SUBX, SUBY). The operand cell follows.
func MakeCodeSub(reg CodeIR) Code {
	return makeCode(OP_SUB, int(reg))
}

// MakeCodeSet creates a set-immediate instruction targeting a register
// (SETA, SETB, SETX, SETY). The operand cell follows.
func MakeCodeSet(reg CodeIR) Code {
	return makeCode(OP_SET, int(reg))
}

// MakeCodeBr creates a conditional branch (BRZ, BRN, BRO). The operand
// cell that follows is the absolute arena index of the branch target.
func MakeCodeBr(br CodeBr) Code {
	return makeCode(OP_BR, int(br))
}

// MakeCodeHalt creates a halt instruction.
func MakeCodeHalt() Code {
	return makeCode(OP_HALT, 0)
}

// Kind returns the cell tag.
func (code Code) Kind() CodeKind {
	return CodeKind((uint16(code) >> 15) & 0x1)
}

// Op returns the operation family of an opcode cell.
func (code Code) Op() CodeOp {
	return CodeOp((uint16(code) >> 12) & 0x7)
}

// Ir returns the register or immediate selector of an opcode cell.
func (code Code) Ir() CodeIR {
	return CodeIR((uint16(code) >> 8) & 0xf)
}

// Br returns the branch condition of an opcode cell.
func (code Code) Br() CodeBr {
	return CodeBr((uint16(code) >> 8) & 0xf)
}

// Operand returns the signed byte literal of a raw cell.
func (code Code) Operand() int8 {
	return int8(uint8(code & 0xff))
}

// OperandNeed returns the number of operand cells the instruction expects
// to follow it in the arena.
func (code Code) OperandNeed() int {
	if code.Kind() != KIND_CODE {
		return 0
	}

	switch code.Op() {
	case OP_PUSH:
		if code.Ir() == IR_IMMEDIATE {
			return 1
		}
	case OP_ADD, OP_SUB, OP_SET, OP_BR:
		return 1
	}

	return 0
}

// Valid returns true if the cell is one a Make constructor can produce.
// The machine itself tolerates invalid words (they halt execution); Valid
// is the build-time check used by Program.Append.
func (code Code) Valid() bool {
	if code.Kind() == KIND_RAW {
		return true
	}

	if code&0xff != 0 {
		return false
	}

	switch code.Op() {
	case OP_PUSH:
		return code.Ir() <= IR_IMMEDIATE
	case OP_POP, OP_ADD, OP_SUB, OP_SET:
		return code.Ir().Register()
	case OP_BR:
		return code.Br() <= BR_OVERFLOW
	case OP_HALT:
		return code.Ir() == 0
	}

	return false
}

// String returns the listing representation of this cell.
func (code Code) String() (out string) {
	if code.Kind() == KIND_RAW {
		return fmt.Sprintf("%v %v", code.Kind().String(), code.Operand())
	}

	op := code.Op()
	switch op {
	case OP_HALT:
		out = op.String()
	case OP_BR:
		out = fmt.Sprintf("%v.%v", op.String(), code.Br().String())
	default:
		out = fmt.Sprintf("%v.%v", op.String(), code.Ir().String())
	}

	return
}
