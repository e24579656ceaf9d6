package core

import (
	"errors"
	"sync/atomic"
)

// ErrTaken is returned by TryTake once the peripherals have been handed out
var ErrTaken = errors.New("peripherals already taken")

var taken uint32

// TryTake binds the peripherals the first time it is called and returns
// ErrTaken on every later call.
func TryTake(bus Bus) (*Peripherals, error) {
	if !atomic.CompareAndSwapUint32(&taken, 0, 1) {
		return nil, ErrTaken
	}
	return Bind(bus), nil
}

// Take is TryTake for entry points: a second take halts the firmware.
func Take(bus Bus) *Peripherals {
	p, err := TryTake(bus)
	if err != nil {
		panic(err.Error())
	}
	return p
}

