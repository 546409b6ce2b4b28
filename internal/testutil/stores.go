package testutil

import "context"

// StubPinger implements a readiness dependency returning Err.
type StubPinger struct {
	Err   error
	Calls int
}

func (p *StubPinger) Ping(ctx context.Context) error {
	_ = ctx
	p.Calls++
	return p.Err
}
