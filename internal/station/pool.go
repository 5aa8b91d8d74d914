package station

import (
	"fmt"
	"math/bits"

	"github.com/maemo32/tomasulo-sim/internal/isa"
	"github.com/maemo32/tomasulo-sim/internal/simerr"
)

// Config is the per-op-type (count, cycles) pair the caller supplies
// at program load (§4.3, §6).
type Config struct {
	Count  int
	Cycles int
}

// HardwareConfig maps every op-type to its Config. Validate rejects
// any non-positive count or cycles (§7 InvalidHardwareConfig).
type HardwareConfig map[isa.StationType]Config

// Validate reports InvalidHardwareConfig if any configured op-type
// has a non-positive count or cycle value, or if an op-type is
// missing entirely.
func (hc HardwareConfig) Validate() error {
	for _, t := range isa.AllStationTypes {
		cfg, ok := hc[t]
		if !ok {
			return fmt.Errorf("%w: missing configuration for %s", simerr.ErrInvalidHardwareConfig, t)
		}
		if cfg.Count < 1 {
			return fmt.Errorf("%w: %s count must be >= 1, got %d", simerr.ErrInvalidHardwareConfig, t, cfg.Count)
		}
		if cfg.Cycles < 1 {
			return fmt.Errorf("%w: %s cycles must be >= 1, got %d", simerr.ErrInvalidHardwareConfig, t, cfg.Cycles)
		}
	}
	return nil
}

// effectiveLatency applies §4.3's LOAD/STORE quirk: those two types
// run for configured-1 cycles internally; every other type uses the
// configured value unchanged. This is one of §9's documented quirks,
// preserved rather than "fixed".
func effectiveLatency(t isa.StationType, cycles int) int {
	switch t {
	case isa.StationLoad, isa.StationStore:
		return cycles - 1
	default:
		return cycles
	}
}

// maxBitmapStations bounds how many stations of one type the
// bitmap-based free-slot scan supports. §6's defaults top out at 4;
// this leaves ample headroom for hand-tuned configurations.
const maxBitmapStations = 64

// Pool holds every typed bucket of reservation stations and, per
// type, a free-slot bitmap: allocation finds the lowest-index free
// slot via bits.TrailingZeros64 on an "occupied" word, rather than a
// linear scan with an if.
type Pool struct {
	stations map[isa.StationType][]*Station
	free     map[isa.StationType]uint64
}

// NewPool builds the pool from a validated hardware configuration,
// naming stations "<TYPE><index>" starting at 1 (§4.3).
func NewPool(hc HardwareConfig) (*Pool, error) {
	if err := hc.Validate(); err != nil {
		return nil, err
	}
	p := &Pool{
		stations: make(map[isa.StationType][]*Station),
		free:     make(map[isa.StationType]uint64),
	}
	for _, t := range isa.AllStationTypes {
		cfg := hc[t]
		if cfg.Count > maxBitmapStations {
			return nil, fmt.Errorf("%w: %s count %d exceeds the supported maximum of %d", simerr.ErrInvalidHardwareConfig, t, cfg.Count, maxBitmapStations)
		}
		latency := effectiveLatency(t, cfg.Cycles)
		list := make([]*Station, cfg.Count)
		for i := 0; i < cfg.Count; i++ {
			list[i] = &Station{
				Name:    fmt.Sprintf("%s%d", t, i+1),
				Type:    t,
				Latency: latency,
			}
		}
		p.stations[t] = list
		if cfg.Count == maxBitmapStations {
			p.free[t] = ^uint64(0)
		} else {
			p.free[t] = (uint64(1) << uint(cfg.Count)) - 1
		}
	}
	return p, nil
}

// Stations returns every station of a given type, in index order.
func (p *Pool) Stations(t isa.StationType) []*Station {
	return p.stations[t]
}

// All returns every station in the pool, grouped by type in
// isa.AllStationTypes order, then by index — the stable visiting
// order §4.4's Sweep 2/3 require.
func (p *Pool) All() []*Station {
	var out []*Station
	for _, t := range isa.AllStationTypes {
		out = append(out, p.stations[t]...)
	}
	return out
}

// Allocate finds the first free station of t by index order and
// marks it occupied, or reports ok=false if none is free.
func (p *Pool) Allocate(t isa.StationType) (s *Station, ok bool) {
	bitmap := p.free[t]
	if bitmap == 0 {
		return nil, false
	}
	idx := bits.TrailingZeros64(bitmap)
	list := p.stations[t]
	if idx >= len(list) {
		return nil, false
	}
	p.free[t] = bitmap &^ (uint64(1) << uint(idx))
	return list[idx], true
}

// Release clears s and marks its slot free again.
func (p *Pool) Release(s *Station) {
	list := p.stations[s.Type]
	for idx, candidate := range list {
		if candidate == s {
			p.free[s.Type] |= uint64(1) << uint(idx)
			break
		}
	}
	s.Reset()
}

// ResetAll clears every station and restores all free bitmaps,
// returning the pool to its state immediately after NewPool.
func (p *Pool) ResetAll() {
	for _, t := range isa.AllStationTypes {
		list := p.stations[t]
		for _, s := range list {
			s.Reset()
		}
		if len(list) == maxBitmapStations {
			p.free[t] = ^uint64(0)
		} else {
			p.free[t] = (uint64(1) << uint(len(list))) - 1
		}
	}
}

// AnyBusy reports whether any station in the pool is occupied.
func (p *Pool) AnyBusy() bool {
	for _, t := range isa.AllStationTypes {
		for _, s := range p.stations[t] {
			if s.Busy() {
				return true
			}
		}
	}
	return false
}
