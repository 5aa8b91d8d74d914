package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maemo32/tomasulo-sim/internal/simerr"
)

func TestParseLine_Arithmetic(t *testing.T) {
	instr, err := ParseLine("add r1, r2, r3", 0)
	require.NoError(t, err)
	assert.Equal(t, ADD, instr.Opcode)
	assert.Equal(t, []int{1, 2, 3}, instr.Operands)
	assert.Equal(t, 0, instr.PC)
}

func TestParseLine_Load(t *testing.T) {
	instr, err := ParseLine("LOAD R1, 5(R0)", 3)
	require.NoError(t, err)
	assert.Equal(t, LOAD, instr.Opcode)
	// [destReg, baseReg, offset]
	assert.Equal(t, []int{1, 0, 5}, instr.Operands)
}

func TestParseLine_Store(t *testing.T) {
	instr, err := ParseLine("STORE R2, -3(R1)", 0)
	require.NoError(t, err)
	assert.Equal(t, STORE, instr.Opcode)
	// [dataReg, baseReg, offset]
	assert.Equal(t, []int{2, 1, -3}, instr.Operands)
}

func TestParseLine_BEQ(t *testing.T) {
	instr, err := ParseLine("BEQ R1, R2, 4", 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, instr.Operands)
}

func TestParseLine_CallRet(t *testing.T) {
	call, err := ParseLine("CALL 3", 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, call.Operands)

	ret, err := ParseLine("RET", 1)
	require.NoError(t, err)
	assert.Equal(t, RET, ret.Opcode)
	assert.Empty(t, ret.Operands)
}

func TestParseLine_CallLabelOutOfRange(t *testing.T) {
	_, err := ParseLine("CALL 64", 0)
	assert.ErrorIs(t, err, simerr.ErrMalformedInstruction)

	_, err = ParseLine("CALL -65", 0)
	assert.ErrorIs(t, err, simerr.ErrMalformedInstruction)
}

func TestParseLine_UnknownOpcode(t *testing.T) {
	_, err := ParseLine("FOO R1, R2, R3", 0)
	assert.True(t, errors.Is(err, simerr.ErrUnknownOpcode))
}

func TestParseLine_WrongOperandCount(t *testing.T) {
	_, err := ParseLine("ADD R1, R2", 0)
	assert.ErrorIs(t, err, simerr.ErrMalformedInstruction)
}

func TestParseLine_CaseInsensitiveAndSeparators(t *testing.T) {
	a, err := ParseLine("load r1,5(r0)", 0)
	require.NoError(t, err)
	b, err := ParseLine("LOAD   R1   5   R0", 0)
	require.NoError(t, err)
	assert.Equal(t, a.Operands, b.Operands)
}

func TestParseProgram_SequentialPCs(t *testing.T) {
	program, err := ParseProgram("ADD R1,R0,R0\n\nADD R2,R1,R1\n", 10)
	require.NoError(t, err)
	require.Len(t, program, 2)
	assert.Equal(t, 10, program[0].PC)
	assert.Equal(t, 11, program[1].PC)
}

func TestParseMemoryInit(t *testing.T) {
	cells, err := ParseMemoryInit("5:42\n6:-1\n")
	require.NoError(t, err)
	assert.Equal(t, uint16(42), cells[5])
	assert.Equal(t, uint16(0xFFFF), cells[6])
}

func TestParseMemoryInit_Malformed(t *testing.T) {
	_, err := ParseMemoryInit("not-a-line")
	assert.ErrorIs(t, err, simerr.ErrMalformedInstruction)
}
