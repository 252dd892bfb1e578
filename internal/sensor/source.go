package sensor

import "context"

// Source delivers orientation samples to the platform.
//
// Start performs whatever permission gating the environment requires;
// a non-nil error means consent was denied or the source is unusable
// and the game must not start. The returned channel is closed when the
// source ends or the context is cancelled.
//
// Stop tears the subscription down. It is safe to call more than once
// and safe to call on a source that never started.
type Source interface {
	Start(ctx context.Context) (<-chan Sample, error)
	Stop()
}
