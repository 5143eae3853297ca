// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"advent.dev/pkg/advent/internal/controller"
	m "advent.dev/pkg/advent/internal/model"
)

// TestingT is the subset of *testing.T the constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUI mocks controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a MockUI that asserts its expectations on cleanup.
func NewMockUI(t TestingT) *MockUI {
	mockUI := &MockUI{}
	mockUI.Mock.Test(t)
	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}

// Start mocks UI.Start.
func (_m *MockUI) Start(ctx context.Context, options ...controller.StartOption) error {
	ret := _m.Called(ctx, options)
	return ret.Error(0)
}

// Close mocks UI.Close.
func (_m *MockUI) Close(ctx context.Context) {
	_m.Called(ctx)
}

// DisplaySolution mocks UI.DisplaySolution.
func (_m *MockUI) DisplaySolution(ctx context.Context, report m.Report, cached bool) error {
	ret := _m.Called(ctx, report, cached)
	return ret.Error(0)
}

// DisplayPuzzles mocks UI.DisplayPuzzles.
func (_m *MockUI) DisplayPuzzles(ctx context.Context, puzzles []m.Puzzle) error {
	ret := _m.Called(ctx, puzzles)
	return ret.Error(0)
}

// DisplayReports mocks UI.DisplayReports.
func (_m *MockUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	ret := _m.Called(ctx, reports)
	return ret.Error(0)
}
