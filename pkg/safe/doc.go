// Package safe provides mutex-guarded shared state: Vector, an ordered
// sequence, and TestAndSet, a scalar with compare-and-set variants and
// blocking waits on a caller-owned Cond.
//
// Every public operation takes the instance's single lock exactly once, so
// operations on one instance are linearizable. There is no ordering across
// instances.
//
// Callbacks passed to Vector run while its lock is held. A callback that
// re-enters the same Vector, directly or through other code, deadlocks.
// Building with the ropsync_mutex_debug tag turns such re-entry into a panic.
package safe
