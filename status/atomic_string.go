package status

import "sync/atomic"

// MaxStringLen bounds stored strings so the status line stays one row
const MaxStringLen = 48

// AtomicString is a pointer-swapped string; the zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncated to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
