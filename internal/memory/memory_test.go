package memory

import "testing"

func TestUnsetReadsZero(t *testing.T) {
	m := New()
	if m.Load(100) != 0 {
		t.Fatalf("Load(100) = %d, want 0", m.Load(100))
	}
}

func TestStoreAndLoad(t *testing.T) {
	m := New()
	m.Store(5, 42)
	if got := m.Load(5); got != 42 {
		t.Fatalf("Load(5) = %d, want 42", got)
	}
}

func TestStoreMasksTo16Bits(t *testing.T) {
	m := New()
	m.Store(0, 0x1FFFF)
	if got := m.Load(0); got != 0xFFFF {
		t.Fatalf("Load(0) = %#x, want 0xFFFF", got)
	}
}

func TestNonZeroSortedByAddress(t *testing.T) {
	m := New()
	m.Store(10, 1)
	m.Store(2, 1)
	m.Store(7, 0) // explicit zero store should not appear
	cells := m.NonZero()
	if len(cells) != 2 {
		t.Fatalf("len(NonZero()) = %d, want 2", len(cells))
	}
	if cells[0].Addr != 2 || cells[1].Addr != 10 {
		t.Fatalf("NonZero() not sorted: %+v", cells)
	}
}

func TestInit(t *testing.T) {
	m := New()
	m.Init(map[int]uint16{5: 42, 6: 0xFFFF})
	if m.Load(5) != 42 || m.Load(6) != 0xFFFF {
		t.Fatal("Init did not apply cells")
	}
}
