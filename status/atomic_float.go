package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat stores a float64 as its IEEE bits; the zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add applies delta with a CAS loop and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
