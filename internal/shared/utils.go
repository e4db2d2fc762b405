// Package shared provides small utilities for handling sensitive byte
// material.
package shared

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Useful for scrubbing secrets and private keys from memory once they
// are no longer needed.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
