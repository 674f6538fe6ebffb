package mocks

import (
	"context"

	"easy-ftp/core/ftpserver"
	"easy-ftp/core/settings"

	"github.com/stretchr/testify/mock"
)

// Lifecycle is a mock implementation of panel.Lifecycle
type Lifecycle struct {
	mock.Mock
}

func (m *Lifecycle) Start(ctx context.Context, cfg settings.ServerConfig) (string, error) {
	args := m.Called(ctx, cfg)
	return args.String(0), args.Error(1)
}

func (m *Lifecycle) Stop(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Lifecycle) IsRunning() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *Lifecycle) CurrentAddress() string {
	args := m.Called()
	return args.String(0)
}

func (m *Lifecycle) Snapshot() ftpserver.Status {
	args := m.Called()
	return args.Get(0).(ftpserver.Status)
}
