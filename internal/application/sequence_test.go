package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceRunsInOrderAndCountsFailures(t *testing.T) {
	var order []string
	step := func(name string, err error) Step {
		return Step{Name: name, Do: func(context.Context) error {
			order = append(order, name)
			return err
		}}
	}

	failed := Sequence{
		step("one", nil),
		step("two", errors.New("boom")),
		step("three", nil),
	}.Run(context.Background(), testLogger())

	assert.Equal(t, 1, failed)
	assert.Equal(t, []string{"one", "two", "three"}, order)
}

func TestSequenceStopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := 0
	seq := Sequence{
		{Name: "a", Do: func(context.Context) error { ran++; return nil }},
		{Name: "b", Do: func(context.Context) error { ran++; return nil }},
	}

	assert.Equal(t, 2, seq.Run(ctx, testLogger()))
	assert.Zero(t, ran)
}
