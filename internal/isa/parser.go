package isa

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/maemo32/tomasulo-sim/internal/simerr"
)

// tokenSeparators matches any run of whitespace, commas, or
// parentheses — the grammar of §6 treats all three as separators, so
// "LOAD R1, 5(R0)" and "LOAD R1 5 R0" tokenize identically.
var tokenSeparators = regexp.MustCompile(`[\s,()]+`)

func tokenize(line string) []string {
	fields := tokenSeparators.Split(strings.TrimSpace(line), -1)
	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func parseRegister(tok string) (int, error) {
	tok = strings.ToUpper(tok)
	if len(tok) < 2 || tok[0] != 'R' {
		return 0, fmt.Errorf("%w: %q is not a register", simerr.ErrMalformedInstruction, tok)
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil || n < 0 || n > 7 {
		return 0, fmt.Errorf("%w: %q is not a register in R0..R7", simerr.ErrMalformedInstruction, tok)
	}
	return n, nil
}

func parseInt(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", simerr.ErrMalformedInstruction, tok)
	}
	return n, nil
}

// ParseLine parses one textual instruction, assigning it pc.
func ParseLine(line string, pc int) (*Instruction, error) {
	tokens := tokenize(line)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty line", simerr.ErrMalformedInstruction)
	}

	name := strings.ToUpper(tokens[0])
	op, known := opcodeByName[name]
	if !known {
		return nil, fmt.Errorf("%w: %q", simerr.ErrUnknownOpcode, tokens[0])
	}
	args := tokens[1:]

	switch op {
	case ADD, SUB, NOR, MUL:
		if len(args) != 3 {
			return nil, fmt.Errorf("%w: %s wants 3 register operands, got %d", simerr.ErrMalformedInstruction, name, len(args))
		}
		regs, err := parseRegisters(args)
		if err != nil {
			return nil, err
		}
		return NewInstruction(op, regs, pc), nil

	case LOAD:
		// LOAD rD, offset(rB) -> [destReg, baseReg, offset]
		if len(args) != 3 {
			return nil, fmt.Errorf("%w: LOAD wants rD, offset(rB)", simerr.ErrMalformedInstruction)
		}
		dest, err := parseRegister(args[0])
		if err != nil {
			return nil, err
		}
		offset, err := parseInt(args[1])
		if err != nil {
			return nil, err
		}
		base, err := parseRegister(args[2])
		if err != nil {
			return nil, err
		}
		return NewInstruction(op, []int{dest, base, offset}, pc), nil

	case STORE:
		// STORE rS, offset(rB) -> [dataReg, baseReg, offset]
		if len(args) != 3 {
			return nil, fmt.Errorf("%w: STORE wants rS, offset(rB)", simerr.ErrMalformedInstruction)
		}
		data, err := parseRegister(args[0])
		if err != nil {
			return nil, err
		}
		offset, err := parseInt(args[1])
		if err != nil {
			return nil, err
		}
		base, err := parseRegister(args[2])
		if err != nil {
			return nil, err
		}
		return NewInstruction(op, []int{data, base, offset}, pc), nil

	case BEQ:
		if len(args) != 3 {
			return nil, fmt.Errorf("%w: BEQ wants rA, rB, offset", simerr.ErrMalformedInstruction)
		}
		rA, err := parseRegister(args[0])
		if err != nil {
			return nil, err
		}
		rB, err := parseRegister(args[1])
		if err != nil {
			return nil, err
		}
		offset, err := parseInt(args[2])
		if err != nil {
			return nil, err
		}
		return NewInstruction(op, []int{rA, rB, offset}, pc), nil

	case CALL:
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: CALL wants one label", simerr.ErrMalformedInstruction)
		}
		label, err := parseInt(args[0])
		if err != nil {
			return nil, err
		}
		if label < -64 || label > 63 {
			return nil, fmt.Errorf("%w: CALL label must be a 7-bit signed constant (-64..63), got %d", simerr.ErrMalformedInstruction, label)
		}
		return NewInstruction(op, []int{label}, pc), nil

	case RET:
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: RET takes no operands", simerr.ErrMalformedInstruction)
		}
		return NewInstruction(op, nil, pc), nil

	default:
		return nil, fmt.Errorf("%w: %q", simerr.ErrUnknownOpcode, tokens[0])
	}
}

func parseRegisters(toks []string) ([]int, error) {
	out := make([]int, len(toks))
	for i, t := range toks {
		r, err := parseRegister(t)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// ParseProgram parses a multi-line program, one instruction per
// non-blank line, assigning sequential program counters starting at
// startPC.
func ParseProgram(text string, startPC int) ([]*Instruction, error) {
	var program []*Instruction
	pc := startPC
	for lineNo, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		instr, err := ParseLine(line, pc)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		program = append(program, instr)
		pc++
	}
	return program, nil
}

// ParseMemoryInit parses the "<addr>:<value>" memory initializer
// format, one cell per non-blank line. Negative values are reduced to
// unsigned 16-bit two's complement.
func ParseMemoryInit(text string) (map[int]uint16, error) {
	cells := make(map[int]uint16)
	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: %w: expected addr:value, got %q", lineNo+1, simerr.ErrMalformedInstruction, line)
		}
		addr, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: bad address %q", lineNo+1, simerr.ErrMalformedInstruction, parts[0])
		}
		value, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: bad value %q", lineNo+1, simerr.ErrMalformedInstruction, parts[1])
		}
		cells[addr] = uint16(value & 0xFFFF)
	}
	return cells, nil
}
