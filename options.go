package harmonica

// Option configures a single forward modelling call.
type Option func(*options)

type options struct {
	parallel      bool
	workers       int
	disableChecks bool
	progress      ProgressSink
}

func defaultOptions() options {
	return options{parallel: true}
}

// Serial disables the parallel kernel, running the identical loop on a
// single goroutine. Useful when the forward model is run by an already
// parallelized workflow, or for deterministic debugging runs.
func Serial() Option {
	return func(o *options) { o.parallel = false }
}

// Workers sets the number of goroutines used by the parallel kernel.
// Values below 1 fall back to GOMAXPROCS.
func Workers(n int) Option {
	return func(o *options) { o.workers = n }
}

// DisableChecks skips the sanity checks on the prism and magnetization
// tables. Use only when the input model is known to be valid; violating
// the model invariants with checks disabled yields garbage output.
func DisableChecks() Option {
	return func(o *options) { o.disableChecks = true }
}

// WithProgress registers a sink that receives one update per completed
// observation point. The sink must be safe for concurrent use when the
// parallel kernel is enabled.
func WithProgress(sink ProgressSink) Option {
	return func(o *options) { o.progress = sink }
}
