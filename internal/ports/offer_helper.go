package ports

import "context"

// OfferHelper launches the out-of-process trade offer acceptance helper.
type OfferHelper interface {
	Start(ctx context.Context) (OfferRun, error)
}

type OfferRun interface {
	// Done is closed when the helper process exits.
	Done() <-chan struct{}
	Err() error
}
