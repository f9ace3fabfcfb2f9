package mocks

import (
	"context"

	"dropship-sync/core/supplier"

	"github.com/stretchr/testify/mock"
)

// Dialer is a mock implementation of supplier.Dialer
type Dialer struct {
	mock.Mock
}

func (m *Dialer) Login(ctx context.Context) (supplier.Session, error) {
	args := m.Called(ctx)
	if sess, ok := args.Get(0).(supplier.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

// Session is a mock implementation of supplier.Session
type Session struct {
	mock.Mock
}

func (m *Session) Call(ctx context.Context, procedure string, params ...any) (string, error) {
	callArgs := append([]any{ctx, procedure}, params...)
	args := m.Called(callArgs...)
	return args.String(0), args.Error(1)
}

func (m *Session) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
