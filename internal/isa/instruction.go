package isa

import (
	"fmt"
	"strings"
)

// LinkRegister is the architectural register CALL writes the return
// address into and RET reads its target from.
const LinkRegister = 1

// Unset marks a timestamp slot that has not yet been stamped.
const Unset = -1

// Instruction is immutable once parsed except for its four timestamp
// slots, each of which the engine sets at most once.
type Instruction struct {
	Opcode Opcode
	// Operands holds the opcode-specific positional operand list, as
	// parsed from source text (see ParseLine). Register operands are
	// stored as their register index.
	Operands []int
	PC       int

	IssueCycle     int
	StartExecCycle int
	EndExecCycle   int
	WriteCycle     int
	Completed      bool
}

// NewInstruction builds an Instruction with all timestamps unset.
func NewInstruction(op Opcode, operands []int, pc int) *Instruction {
	return &Instruction{
		Opcode:         op,
		Operands:       operands,
		PC:             pc,
		IssueCycle:     Unset,
		StartExecCycle: Unset,
		EndExecCycle:   Unset,
		WriteCycle:     Unset,
	}
}

// DestReg reports the architectural register this instruction writes,
// if any. CALL's destination (R1) is architectural, not parsed.
func (i *Instruction) DestReg() (int, bool) {
	switch i.Opcode {
	case ADD, SUB, NOR, MUL, LOAD:
		return i.Operands[0], true
	case CALL:
		return LinkRegister, true
	default:
		return 0, false
	}
}

// SourceRegs returns the registers this instruction reads, in the
// order they are consulted at Issue: the first feeds Vj/Qj, the
// second (if present) feeds Vk/Qk. RET's source (R1) is architectural.
func (i *Instruction) SourceRegs() []int {
	switch i.Opcode {
	case ADD, SUB, NOR, MUL:
		return []int{i.Operands[1], i.Operands[2]}
	case LOAD:
		return []int{i.Operands[1]} // baseReg
	case STORE:
		return []int{i.Operands[1], i.Operands[0]} // baseReg, dataReg
	case BEQ:
		return []int{i.Operands[0], i.Operands[1]}
	case RET:
		return []int{LinkRegister}
	default:
		return nil
	}
}

// Immediate returns the literal offset/label operand this instruction
// carries (the A slot of its reservation station), or 0 if none.
func (i *Instruction) Immediate() int {
	switch i.Opcode {
	case LOAD, STORE:
		return i.Operands[2]
	case BEQ:
		return i.Operands[2]
	case CALL:
		return i.Operands[0]
	default:
		return 0
	}
}

// BlocksIssue reports whether this opcode stalls the issue of every
// later instruction until it completes (§4.4 Sweep 4). STORE does not
// block issue, by design.
func (i *Instruction) BlocksIssue() bool {
	switch i.Opcode {
	case BEQ, CALL, RET:
		return true
	default:
		return false
	}
}

func stamp(v int) string {
	if v == Unset {
		return "-"
	}
	return fmt.Sprintf("%d", v)
}

// String renders the instruction the way the original Tkinter timing
// table did: "PC<n>: OPCODE operand operand ...".
func (i *Instruction) String() string {
	parts := make([]string, len(i.Operands))
	for idx, v := range i.Operands {
		parts[idx] = fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("PC%d: %s %s", i.PC, i.Opcode, strings.Join(parts, " "))
}

// Timing renders the four timestamp slots as "-" for unset ones,
// matching the original's instruction-timing display.
func (i *Instruction) Timing() (issue, startExec, endExec, write string) {
	return stamp(i.IssueCycle), stamp(i.StartExecCycle), stamp(i.EndExecCycle), stamp(i.WriteCycle)
}
