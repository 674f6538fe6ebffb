package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Registrar is a mock implementation of autostart.Registrar
type Registrar struct {
	mock.Mock
}

func (m *Registrar) Enable() error {
	args := m.Called()
	return args.Error(0)
}

func (m *Registrar) Disable() error {
	args := m.Called()
	return args.Error(0)
}

func (m *Registrar) IsEnabled() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}
