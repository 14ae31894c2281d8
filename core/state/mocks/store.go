package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of state.Store
type Store struct {
	mock.Mock
}

func (m *Store) Load(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Store) Save(ctx context.Context, watermark int64) error {
	args := m.Called(ctx, watermark)
	return args.Error(0)
}
