//go:build tinygo

package core

import "runtime/volatile"

var spinCounter uint32

// spinStep is a volatile store so the loop is not optimised away
func spinStep(i uint32) {
	volatile.StoreUint32(&spinCounter, i)
}
