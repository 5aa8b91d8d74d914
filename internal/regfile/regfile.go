// Package regfile implements the eight 16-bit architectural registers
// and their producer-tag status table (§3, §4.2).
package regfile

// Count is the number of general-purpose registers.
const Count = 8

// ZeroRegister is hardwired to zero; writes to it are discarded and
// its status is permanently "none".
const ZeroRegister = 0

// RegisterFile holds architectural values plus, for each register,
// the name of the busy reservation station that will produce its
// next value ("" means the architectural value is current).
type RegisterFile struct {
	values [Count]uint16
	status [Count]string
}

// New returns a register file with all registers zeroed and ready.
func New() *RegisterFile {
	return &RegisterFile{}
}

// Read returns a register's current architectural value. R0 always
// reads 0.
func (r *RegisterFile) Read(reg int) uint16 {
	if reg == ZeroRegister {
		return 0
	}
	return r.values[reg]
}

// Status returns the producer station name for reg, or "" if ready.
func (r *RegisterFile) Status(reg int) string {
	if reg == ZeroRegister {
		return ""
	}
	return r.status[reg]
}

// SetStatus marks reg as being produced by station. Writes to R0 are
// ignored, per §3's invariant that R0's status is permanently "none".
func (r *RegisterFile) SetStatus(reg int, station string) {
	if reg == ZeroRegister {
		return
	}
	r.status[reg] = station
}

// Write commits a result to reg iff its status still names station —
// a later writer may have overwritten it first (§4.4 Sweep 2 step 3).
// Writes to R0 are always discarded.
func (r *RegisterFile) Write(reg int, value uint16, station string) {
	if reg == ZeroRegister {
		return
	}
	if r.status[reg] == station {
		r.values[reg] = value
		r.status[reg] = ""
	}
}

// Reset restores all registers to zero and ready.
func (r *RegisterFile) Reset() {
	r.values = [Count]uint16{}
	r.status = [Count]string{}
}

// Snapshot returns a copy of the register values and statuses, safe
// for an external read-only observer.
func (r *RegisterFile) Snapshot() (values [Count]uint16, status [Count]string) {
	return r.values, r.status
}
