package safe

// Cond is the condition variable handed to TestAndSet's wait methods. It is
// owned by the caller: whoever changes a watched value calls Broadcast, and
// nothing else wakes the waiters. The zero value is ready to use.
type Cond struct {
	mu Mutex
	ch chan struct{} // closed by the next Broadcast; nil until a waiter asks
}

func NewCond() *Cond {
	return new(Cond)
}

// Broadcast wakes every goroutine currently waiting on c.
func (c *Cond) Broadcast() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ch != nil {
		close(c.ch)
		c.ch = nil
	}
}

// wait returns a channel that the next Broadcast closes.
func (c *Cond) wait() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ch == nil {
		c.ch = make(chan struct{})
	}
	return c.ch
}
