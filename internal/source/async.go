package source

import "context"

// Result is the outcome of one Load
type Result struct {
	Markup *Markup
	Err    error
}

// Start runs src.Load in the background. The returned channel delivers
// exactly one Result and is then closed.
func Start(ctx context.Context, src Source) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		markup, err := src.Load(ctx)
		ch <- Result{Markup: markup, Err: err}
	}()
	return ch
}

// Await starts src and blocks until its Result arrives or ctx is done
func Await(ctx context.Context, src Source) (*Markup, error) {
	select {
	case res := <-Start(ctx, src):
		return res.Markup, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
