package vm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzMachine(f *testing.F) {
	seeds := []Code{
		MakeCodeRaw(-1),
		MakeCodePush(IR_IMMEDIATE),
		MakeCodePush(IR_REG_A),
		MakeCodePop(IR_REG_B),
		MakeCodeAdd(IR_REG_X),
		MakeCodeSub(IR_REG_Y),
		MakeCodeSet(IR_REG_A),
		MakeCodeBr(BR_ZERO),
		MakeCodeBr(BR_NEGATIVE),
		MakeCodeBr(BR_OVERFLOW),
		MakeCodeHalt(),
		Code(0xf000),
		Code(0x8501),
	}
	for n, code := range seeds {
		f.Add(uint16(code), uint16(MakeCodeRaw(int8(n))), int8(n), int8(-n), int8(0), int8(127), uint8(255-n), uint8(n%5))
	}
	f.Add(uint16(MakeCodeAdd(IR_REG_A)), uint16(MakeCodeHalt()), int8(127), int8(0), int8(0), int8(0), uint8(0), uint8(0))
	f.Add(uint16(MakeCodePop(IR_REG_Y)), uint16(0), int8(0), int8(0), int8(0), int8(0), uint8(255), uint8(1))

	f.Fuzz(func(t *testing.T, word1 uint16, word2 uint16, a, b, x, y int8, sp uint8, cc uint8) {
		assert := assert.New(t)

		code := Code(word1)
		operand := Code(word2)

		prog := &Program{Code: []Code{code, operand}}

		m := NewMachine(prog)
		m.Register = [4]int8{a, b, x, y}
		m.Sp = sp
		m.Cc = Flag(int(cc) % 5)

		pre := *m

		done := m.Step()

		code_str := fmt.Sprintf("0x%04x (%v) 0x%04x (%v)\nmachine:%v",
			word1, code, word2, operand, m.String())

		// Model one cycle against the pre state.
		expect := pre
		expect.Ip = 1

		fetch := func() (value int8) {
			expect.Ip = 2
			if operand.Kind() == KIND_RAW {
				value = operand.Operand()
			} else {
				expect.Mismatches++
			}
			return
		}

		push := func(value int8) {
			if expect.Sp == 0 {
				expect.Drops++
				return
			}
			expect.Memory[expect.Sp] = value
			expect.Sp--
		}

		switch {
		case code.Kind() == KIND_RAW:
			expect.Strays++
		case !code.Valid():
			expect.Ticks++
			expect.Halted = true
		default:
			expect.Ticks++
			switch code.Op() {
			case OP_PUSH:
				if code.Ir() == IR_IMMEDIATE {
					push(fetch())
				} else {
					push(expect.Register[code.Ir()])
				}
			case OP_POP:
				if expect.Sp == STACK_TOP {
					expect.Underruns++
					expect.Register[code.Ir()] = 0
				} else {
					expect.Sp++
					expect.Register[code.Ir()] = expect.Memory[expect.Sp]
				}
			case OP_ADD:
				arg := fetch()
				val := expect.Register[code.Ir()]
				switch {
				case 127-int(val) < int(arg):
					expect.Cc = FLAG_OVERFLOW
				case int(val)+int(arg) == 0:
					expect.Cc = FLAG_ZERO
					expect.Register[code.Ir()] = 0
				default:
					expect.Cc = FLAG_DEFAULT
					expect.Register[code.Ir()] = int8(int(val) + int(arg))
				}
			case OP_SUB:
				arg := fetch()
				val := expect.Register[code.Ir()]
				switch {
				case val < arg:
					expect.Cc = FLAG_OVERFLOW
				case val == arg:
					expect.Cc = FLAG_ZERO
					expect.Register[code.Ir()] = 0
				default:
					expect.Cc = FLAG_DEFAULT
					expect.Register[code.Ir()] = val - arg
				}
			case OP_SET:
				expect.Register[code.Ir()] = fetch()
			case OP_BR:
				target := uint8(fetch())
				if expect.Cc == code.Br().Flag() {
					expect.Ip = int(target)
				}
			case OP_HALT:
				expect.Halted = true
			}
		}

		assert.Equal(expect.Halted, done, code_str)
		assert.Equal(expect.Halted, m.Halted, code_str)
		assert.Equal(expect.Ip, m.Ip, code_str)
		assert.Equal(expect.Register, m.Register, code_str)
		assert.Equal(expect.Cc, m.Cc, code_str)
		assert.Equal(expect.Sp, m.Sp, code_str)
		assert.Equal(expect.Memory, m.Memory, code_str)

		assert.Equal(expect.Ticks, m.Ticks, code_str)
		assert.Equal(expect.Strays, m.Strays, code_str)
		assert.Equal(expect.Mismatches, m.Mismatches, code_str)
		assert.Equal(expect.Drops, m.Drops, code_str)
		assert.Equal(expect.Underruns, m.Underruns, code_str)
	})
}
