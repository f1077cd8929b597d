// Package service provides testify mocks for the domain service contracts.
package service

import (
	"context"
	"encoding/json"

	"transit/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockRoutePlanner is a mock implementation of service.RoutePlanner.
type MockRoutePlanner struct {
	mock.Mock
}

// NewMockRoutePlanner creates a mock wired to the test lifecycle.
func NewMockRoutePlanner(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRoutePlanner {
	m := &MockRoutePlanner{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRoutePlanner) SearchPlaces(ctx context.Context, query string) ([]service.PlaceResult, error) {
	args := m.Called(ctx, query)
	results, _ := args.Get(0).([]service.PlaceResult)

	return results, args.Error(1)
}

func (m *MockRoutePlanner) PlanRoute(ctx context.Context, req service.RouteRequest) ([]json.RawMessage, error) {
	args := m.Called(ctx, req)
	itineraries, _ := args.Get(0).([]json.RawMessage)

	return itineraries, args.Error(1)
}
