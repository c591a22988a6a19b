//go:build !ropsync_mutex_debug

package safe

import "sync"

// Mutex is an alias for sync.Mutex.
//
// It's only not a sync.Mutex when built with the ropsync_mutex_debug build
// tag, where it panics on recursive acquisition by the same goroutine.
type Mutex = sync.Mutex
