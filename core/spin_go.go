//go:build !tinygo

package core

var spinCounter uint32

func spinStep(i uint32) {
	spinCounter = i
}
