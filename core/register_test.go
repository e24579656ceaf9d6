package core

import "testing"

func TestFieldInsertExtract(t *testing.T) {
	tests := []struct {
		field Field
		raw   uint32
		value uint32
		want  uint32
	}{
		{Bit(0), 0, 1, 0x1},
		{Bit(31), 0, 1, 0x80000000},
		{Field{Shift: 28, Width: 2}, 0xFFFFFFFF, 0, 0xCFFFFFFF},
		{Field{Shift: 17, Width: 12}, 0, 99, 99 << 17},
		{Field{Shift: 8, Width: 6}, 0, 0xFF, 0x3F << 8}, // truncated to width
		{Field{Shift: 0, Width: 32}, 0x1234, 0xDEADBEEF, 0xDEADBEEF},
	}

	for _, test := range tests {
		got := test.field.Insert(test.raw, test.value)
		if got != test.want {
			t.Errorf("%+v.Insert(%#x, %#x) = %#x, want %#x", test.field, test.raw, test.value, got, test.want)
		}
		if back := test.field.Extract(got); back != test.value&(test.field.Mask()>>test.field.Shift) {
			t.Errorf("%+v.Extract(%#x) = %#x", test.field, got, back)
		}
	}
}

func TestModifyWritesOnce(t *testing.T) {
	bus := newTestBus()
	reg := bus.reg(0x1000)
	bus.poke(0x1000, 0xF0)

	Modify(reg, func(w *W) {
		w.ClearBit(Bit(4)).SetBit(Bit(0)).Set(Field{Shift: 8, Width: 4}, 0xA)
	})

	if len(bus.writes) != 1 {
		t.Fatalf("expected 1 store, got %d", len(bus.writes))
	}
	if got, want := reg.Get(), uint32(0xAE1); got != want {
		t.Errorf("register = %#x, want %#x", got, want)
	}
}

func TestHex32(t *testing.T) {
	if got := hex32(0x1E); got != "0x0000001e" {
		t.Errorf("hex32(0x1e) = %s", got)
	}
	if got := utoa(1188); got != "1188" {
		t.Errorf("utoa(1188) = %s", got)
	}
}
