package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// Shared MockMLClient
type MockMLClient struct {
	mock.Mock
}

func (m *MockMLClient) Predict(ctx context.Context, features map[string]interface{}) (json.RawMessage, error) {
	args := m.Called(ctx, features)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockMLClient) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
