package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/maemo32/tomasulo-sim/internal/isa"
	"github.com/maemo32/tomasulo-sim/internal/station"
)

// opEntry mirrors one [op_type] table in the hardware configuration
// file: a reservation-station count and a configured cycle count.
// Both fields are pointers so a table naming only one of the two
// (e.g. "[mul]\ncount = 4") overrides that field alone, leaving the
// other at its Defaults() value instead of silently zeroing it.
type opEntry struct {
	Count  *int `toml:"count"`
	Cycles *int `toml:"cycles"`
}

// fileConfig is the on-disk shape accepted by LoadFile. Every table
// is optional; an op-type absent from the file keeps its default.
type fileConfig struct {
	Load    *opEntry `toml:"load"`
	Store   *opEntry `toml:"store"`
	BEQ     *opEntry `toml:"beq"`
	CallRet *opEntry `toml:"call_ret"`
	AddSub  *opEntry `toml:"add_sub"`
	NOR     *opEntry `toml:"nor"`
	Mul     *opEntry `toml:"mul"`
}

func (f fileConfig) overrides() map[isa.StationType]*opEntry {
	return map[isa.StationType]*opEntry{
		isa.StationLoad:    f.Load,
		isa.StationStore:   f.Store,
		isa.StationBEQ:     f.BEQ,
		isa.StationCallRet: f.CallRet,
		isa.StationAddSub:  f.AddSub,
		isa.StationNOR:     f.NOR,
		isa.StationMul:     f.Mul,
	}
}

// LoadFile reads a TOML hardware configuration file and applies it on
// top of Defaults(); any op-type the file omits keeps its default
// (count, cycles) pair.
func LoadFile(path string) (station.HardwareConfig, error) {
	var parsed fileConfig
	if _, err := toml.DecodeFile(path, &parsed); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}

	hc := Defaults()
	for t, entry := range parsed.overrides() {
		if entry == nil {
			continue
		}
		cfg := hc[t]
		if entry.Count != nil {
			cfg.Count = *entry.Count
		}
		if entry.Cycles != nil {
			cfg.Cycles = *entry.Cycles
		}
		hc[t] = cfg
	}
	return hc, nil
}
