package isa

import "testing"

func TestSourceRegs(t *testing.T) {
	cases := []struct {
		name string
		i    *Instruction
		want []int
	}{
		{"add", NewInstruction(ADD, []int{1, 2, 3}, 0), []int{2, 3}},
		{"load", NewInstruction(LOAD, []int{1, 0, 5}, 0), []int{0}},
		{"store", NewInstruction(STORE, []int{2, 1, -3}, 0), []int{1, 2}},
		{"beq", NewInstruction(BEQ, []int{1, 2, 4}, 0), []int{1, 2}},
		{"ret", NewInstruction(RET, nil, 0), []int{LinkRegister}},
		{"call", NewInstruction(CALL, []int{3}, 0), nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.i.SourceRegs()
			if len(got) != len(c.want) {
				t.Fatalf("SourceRegs() = %v, want %v", got, c.want)
			}
			for idx := range got {
				if got[idx] != c.want[idx] {
					t.Fatalf("SourceRegs() = %v, want %v", got, c.want)
				}
			}
		})
	}
}

func TestDestReg(t *testing.T) {
	if reg, ok := NewInstruction(ADD, []int{1, 2, 3}, 0).DestReg(); !ok || reg != 1 {
		t.Fatalf("ADD dest = (%d, %v), want (1, true)", reg, ok)
	}
	if reg, ok := NewInstruction(CALL, []int{3}, 0).DestReg(); !ok || reg != LinkRegister {
		t.Fatalf("CALL dest = (%d, %v), want (%d, true)", reg, ok, LinkRegister)
	}
	if _, ok := NewInstruction(STORE, []int{1, 0, 5}, 0).DestReg(); ok {
		t.Fatal("STORE should have no destination register")
	}
	if _, ok := NewInstruction(BEQ, []int{1, 2, 4}, 0).DestReg(); ok {
		t.Fatal("BEQ should have no destination register")
	}
}

func TestBlocksIssue(t *testing.T) {
	blocking := []*Instruction{
		NewInstruction(BEQ, []int{0, 0, 0}, 0),
		NewInstruction(CALL, []int{0}, 0),
		NewInstruction(RET, nil, 0),
	}
	for _, i := range blocking {
		if !i.BlocksIssue() {
			t.Fatalf("%v should block issue", i.Opcode)
		}
	}

	nonBlocking := []*Instruction{
		NewInstruction(ADD, []int{1, 2, 3}, 0),
		NewInstruction(STORE, []int{1, 0, 5}, 0),
		NewInstruction(LOAD, []int{1, 0, 5}, 0),
	}
	for _, i := range nonBlocking {
		if i.BlocksIssue() {
			t.Fatalf("%v should not block issue", i.Opcode)
		}
	}
}

func TestTimingUnsetIsDash(t *testing.T) {
	i := NewInstruction(ADD, []int{1, 0, 0}, 0)
	issue, start, end, write := i.Timing()
	for _, v := range []string{issue, start, end, write} {
		if v != "-" {
			t.Fatalf("expected unset timestamp to render as \"-\", got %q", v)
		}
	}
}
