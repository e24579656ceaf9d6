package core

// Register is a single 32-bit memory-mapped register.
// On hardware this is *volatile.Register32; the host simulator supplies
// its own implementation with a write trace.
type Register interface {
	Get() uint32
	Set(value uint32)
}

// Field names a bit-field inside a register
type Field struct {
	Shift uint8
	Width uint8
}

// Bit returns a one-bit field at the given position
func Bit(shift uint8) Field {
	return Field{Shift: shift, Width: 1}
}

// Mask returns the in-place mask of the field
func (f Field) Mask() uint32 {
	if f.Width >= 32 {
		return 0xFFFFFFFF
	}
	return ((uint32(1) << f.Width) - 1) << f.Shift
}

// Extract returns the field value from a raw register value
func (f Field) Extract(raw uint32) uint32 {
	return (raw & f.Mask()) >> f.Shift
}

// Insert returns raw with the field replaced by value.
// Bits of value that do not fit the field are dropped.
func (f Field) Insert(raw, value uint32) uint32 {
	return (raw &^ f.Mask()) | ((value << f.Shift) & f.Mask())
}

// W accumulates field writes for a single Modify call
type W struct {
	bits uint32
}

// Set writes value into field
func (w *W) Set(f Field, value uint32) *W {
	w.bits = f.Insert(w.bits, value)
	return w
}

// SetBit sets every bit of field
func (w *W) SetBit(f Field) *W {
	w.bits |= f.Mask()
	return w
}

// ClearBit clears every bit of field
func (w *W) ClearBit(f Field) *W {
	w.bits &^= f.Mask()
	return w
}

// Bool sets or clears a one-bit field
func (w *W) Bool(f Field, on bool) *W {
	if on {
		return w.SetBit(f)
	}
	return w.ClearBit(f)
}

// Bits returns the value that will be written back
func (w *W) Bits() uint32 {
	return w.bits
}

// Modify reads reg, lets fn change named fields and writes the result back
// in a single store. Fields fn does not touch keep their current value.
func Modify(reg Register, fn func(w *W)) {
	w := W{bits: reg.Get()}
	fn(&w)
	reg.Set(w.bits)
}

// Read returns the current value of field in reg
func Read(reg Register, f Field) uint32 {
	return f.Extract(reg.Get())
}
