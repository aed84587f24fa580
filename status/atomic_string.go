package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxTextLen bounds status text so the status line never wraps
const MaxTextLen = 64

// AtomicString is a lock-free string cell; zero value is empty
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncating to at most MaxTextLen bytes on a rune boundary
func (s *AtomicString) Store(val string) {
	if len(val) > MaxTextLen {
		cut := MaxTextLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
