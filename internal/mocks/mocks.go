package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mostface/internal/models"
	"mostface/internal/session"
)

// AdapterMock mocks the persistence adapter.
type AdapterMock struct {
	mock.Mock
}

func (m *AdapterMock) Load(ctx context.Context) (*session.Snapshot, error) {
	args := m.Called(ctx)
	var snap *session.Snapshot
	if val := args.Get(0); val != nil {
		snap = val.(*session.Snapshot)
	}
	return snap, args.Error(1)
}

func (m *AdapterMock) SaveCurrentUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *AdapterMock) SaveDirectory(ctx context.Context, users []models.User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

func (m *AdapterMock) Close() error {
	args := m.Called()
	return args.Error(0)
}

var _ session.Adapter = (*AdapterMock)(nil)
