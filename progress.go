package harmonica

import "sync/atomic"

// ProgressSink receives one Update call per completed observation point.
// Implementations must support concurrent calls when the parallel kernel
// is enabled; update ordering across points is not defined.
type ProgressSink interface {
	Update(n int64)
}

// Counter is a ProgressSink backed by an atomic counter.
type Counter struct {
	n atomic.Int64
}

func (c *Counter) Update(n int64) {
	c.n.Add(n)
}

// Count returns the number of observation points completed so far.
func (c *Counter) Count() int64 {
	return c.n.Load()
}
