package engine

import (
	"github.com/maemo32/tomasulo-sim/internal/isa"
	"github.com/maemo32/tomasulo-sim/internal/station"
)

// sweepIssue is §4.4 Sweep 4: bind the head of the instruction queue
// to a free station of its mapped type, consulting register status to
// populate operands.
func (e *Engine) sweepIssue() {
	if len(e.queue) == 0 || e.pendingControlFlow {
		return
	}

	head := e.queue[0]
	stType := isa.StationTypeFor(head.Opcode)
	s, ok := e.pool.Allocate(stType)
	if !ok {
		return // structural stall: no free station of this type
	}

	e.queue = e.queue[1:]
	s.Bind(head)
	head.IssueCycle = e.cycle

	sources := head.SourceRegs()
	if len(sources) > 0 {
		s.Vj = e.resolveOperand(sources[0])
	}
	if len(sources) > 1 {
		s.Vk = e.resolveOperand(sources[1])
	}
	s.A = head.Immediate()

	if dest, ok := head.DestReg(); ok {
		e.regs.SetStatus(dest, s.Name)
	}
	if head.BlocksIssue() {
		e.pendingControlFlow = true
	}
}

// resolveOperand reads a source register's current status: a busy
// producer's name becomes a waiting tag, otherwise the architectural
// value is ready immediately.
func (e *Engine) resolveOperand(reg int) station.Operand {
	if tag := e.regs.Status(reg); tag != "" {
		return station.Operand{Tag: tag}
	}
	return station.Operand{Value: e.regs.Read(reg)}
}
