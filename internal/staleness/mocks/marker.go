package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Marker struct {
	mock.Mock
}

func (m *Marker) MarkStale(ctx context.Context, tags ...string) {
	callArgs := make([]any, 0, len(tags)+1)
	callArgs = append(callArgs, ctx)

	for _, tag := range tags {
		callArgs = append(callArgs, tag)
	}

	m.Called(callArgs...)
}

func (m *Marker) Version(ctx context.Context, tag string) (int64, bool) {
	args := m.Called(ctx, tag)

	return args.Get(0).(int64), args.Bool(1)
}
