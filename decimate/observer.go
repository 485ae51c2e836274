package decimate

// noopObserver discards every notification. It backs Driver whenever
// Options.Observer is nil, so the driver's hot loop never needs a nil check.
type noopObserver struct{}

func (noopObserver) OnExtract(iter int, key EdgeKey, p Priority)   {}
func (noopObserver) OnOutcome(iter int, key EdgeKey, status Status) {}
func (noopObserver) OnQueueSize(n int)                              {}
