// Package vm implements the μVM-8 virtual machine.
//
// The machine consists of an instruction pointer (IP) over a flat program
// arena, four signed 8-bit general-purpose registers (A, B, X, Y), a
// single-valued condition flag, and a 256-cell memory block whose top end
// holds the downward-growing stack.
//
// Run-time anomalies never surface as errors: a malformed stream, a full
// stack or an empty one each degrade to a defined fallback and are
// tallied on the machine counters. Build-time validation lives in
// Program.Append.
package vm
