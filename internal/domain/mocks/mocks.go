// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"advent.dev/pkg/advent/internal/domain"
)

// TestingT is the subset of *testing.T the constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockWorkflow mocks domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow that asserts its expectations on cleanup.
func NewMockWorkflow(t TestingT) *MockWorkflow {
	mockWorkflow := &MockWorkflow{}
	mockWorkflow.Mock.Test(t)
	t.Cleanup(func() { mockWorkflow.AssertExpectations(t) })

	return mockWorkflow
}

// Solve mocks Workflow.Solve.
func (_m *MockWorkflow) Solve(ctx context.Context, args domain.SolveArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// List mocks Workflow.List.
func (_m *MockWorkflow) List(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// View mocks Workflow.View.
func (_m *MockWorkflow) View(ctx context.Context, args domain.ViewArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}
