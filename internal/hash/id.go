// Package hash provides xxHash64 identifiers and fingerprints for samples.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Bytes computes the xxHash64 of a byte payload.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Fingerprint accumulates float64 bit patterns, strings and flags into a
// single xxHash64 value.
//
// Two fingerprints are equal only if the same values were written in the same
// order, so callers must write optional fields together with a presence flag.
type Fingerprint struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewFingerprint creates an empty fingerprint.
func NewFingerprint() *Fingerprint {
	return &Fingerprint{d: xxhash.New()}
}

// Float writes the IEEE 754 bits of v.
//
// NaN payloads are preserved, so two NaNs with different bits hash differently.
func (f *Fingerprint) Float(v float64) *Fingerprint {
	binary.LittleEndian.PutUint64(f.buf[:], math.Float64bits(v))
	_, _ = f.d.Write(f.buf[:])

	return f
}

// Floats writes the length of values followed by each value.
func (f *Fingerprint) Floats(values []float64) *Fingerprint {
	f.Uint(uint64(len(values)))
	for _, v := range values {
		f.Float(v)
	}

	return f
}

// OptionalFloat writes a presence flag and, when present, the value.
func (f *Fingerprint) OptionalFloat(v *float64) *Fingerprint {
	if v == nil {
		return f.Bool(false)
	}

	return f.Bool(true).Float(*v)
}

// Uint writes a 64-bit unsigned integer.
func (f *Fingerprint) Uint(v uint64) *Fingerprint {
	binary.LittleEndian.PutUint64(f.buf[:], v)
	_, _ = f.d.Write(f.buf[:])

	return f
}

// Bool writes a single flag byte.
func (f *Fingerprint) Bool(v bool) *Fingerprint {
	b := byte(0)
	if v {
		b = 1
	}
	_, _ = f.d.Write([]byte{b})

	return f
}

// String writes the length-prefixed string s.
func (f *Fingerprint) String(s string) *Fingerprint {
	f.Uint(uint64(len(s)))
	_, _ = f.d.WriteString(s)

	return f
}

// Sum returns the accumulated hash.
func (f *Fingerprint) Sum() uint64 {
	return f.d.Sum64()
}
