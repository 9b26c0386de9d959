package application

import (
	"context"
	"log/slog"
)

// Step is one side-effecting action of a Sequence.
type Step struct {
	Name string
	Do   func(ctx context.Context) error
}

// Sequence runs steps strictly in order; each step starts only after the previous one returned.
// A failing step is logged and the sequence continues. Run returns the number of steps that
// failed or never ran.
type Sequence []Step

func (s Sequence) Run(ctx context.Context, logger *slog.Logger) int {
	failed := 0
	for i, step := range s {
		if err := ctx.Err(); err != nil {
			logger.Warn("sequence interrupted", "step", step.Name, "remaining", len(s)-i, "err", err)
			return failed + len(s) - i
		}
		if err := step.Do(ctx); err != nil {
			failed++
			logger.Error("sequence step failed", "step", step.Name, "err", err)
		}
	}
	return failed
}

// chatSequence sends each line through send, in order.
func chatSequence(send func(ctx context.Context, text string) error, lines ...string) Sequence {
	seq := make(Sequence, 0, len(lines))
	for _, line := range lines {
		seq = append(seq, Step{
			Name: "chat",
			Do: func(ctx context.Context) error {
				return send(ctx, line)
			},
		})
	}
	return seq
}
