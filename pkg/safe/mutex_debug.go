//go:build ropsync_mutex_debug

package safe

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// Mutex is a sync.Mutex that remembers its holder and panics when the
// holding goroutine tries to lock it again, turning a callback that
// re-enters its container into an immediate failure instead of a deadlock.
type Mutex struct {
	mu     sync.Mutex
	holder atomic.Int64
}

func (m *Mutex) Lock() {
	id := goid()
	if m.holder.Load() == id {
		panic(fmt.Sprintf("safe: recursive lock by goroutine %d", id))
	}
	m.mu.Lock()
	m.holder.Store(id)
}

func (m *Mutex) Unlock() {
	m.holder.Store(0)
	m.mu.Unlock()
}

func (m *Mutex) TryLock() bool {
	if !m.mu.TryLock() {
		return false
	}
	m.holder.Store(goid())
	return true
}

// goid parses the current goroutine id out of the stack header
// "goroutine 42 [running]:".
func goid() int64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		panic("safe: cannot parse goroutine id: " + err.Error())
	}
	return id
}
