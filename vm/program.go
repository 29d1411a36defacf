package vm

import (
	"errors"
	"fmt"
	"iter"
)

// CODE_LIMIT is the largest number of cells a program arena may hold.
// Branch targets are one unsigned byte, so every cell must stay
// addressable by one.
const CODE_LIMIT = 256

// Program is an instruction arena: a flat sequence of Code cells, opcodes
// and their operand cells interleaved in execution order. A program is
// built through Append and never mutated by the machine, so one program
// may back any number of machines.
type Program struct {
	Code []Code
}

// Append validates and appends cells to the arena. On any failure the
// program is left unchanged, and every offending cell is reported.
func (prog *Program) Append(codes ...Code) (err error) {
	if len(prog.Code)+len(codes) > CODE_LIMIT {
		err = fmt.Errorf("%w: %v cells over", ErrProgramFull, len(prog.Code)+len(codes)-CODE_LIMIT)
		return
	}

	for _, code := range codes {
		if !code.Valid() {
			err = errors.Join(err, ErrCode(code))
		}
	}

	if err == nil {
		prog.Code = append(prog.Code, codes...)
	}

	return
}

// Codes iterates the arena cells in fetch order.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(ip int, code Code) bool) {
		for ip, code := range prog.Code {
			if !yield(ip, code) {
				return
			}
		}
	}
}

// String returns the program listing. Operand cells are folded onto the
// line of the opcode that consumes them; an opcode cell sitting in an
// operand position is bracketed, since at run time it reads as zero.
func (prog *Program) String() (text string) {
	need := 0
	for ip, code := range prog.Codes() {
		if need > 0 {
			if code.Kind() == KIND_RAW {
				text += fmt.Sprintf(" %v", code.Operand())
			} else {
				text += fmt.Sprintf(" [%v]", code)
			}
			need--
			if need == 0 {
				text += "\n"
			}
			continue
		}

		text += fmt.Sprintf("%02x: %v", ip, code)
		need = code.OperandNeed()
		if need == 0 {
			text += "\n"
		}
	}

	if need > 0 {
		text += "\n"
	}

	return
}
