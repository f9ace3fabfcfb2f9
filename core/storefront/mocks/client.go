package mocks

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storefront.Client
type Client struct {
	mock.Mock
}

func (m *Client) Rest(ctx context.Context, method, path string, query url.Values, body, out any) (http.Header, error) {
	args := m.Called(ctx, method, path, query, body, out)
	if h, ok := args.Get(0).(http.Header); ok {
		return h, args.Error(1)
	}
	return http.Header{}, args.Error(1)
}

func (m *Client) GraphQL(ctx context.Context, query string, variables map[string]any, out any) error {
	args := m.Called(ctx, query, variables, out)
	return args.Error(0)
}
