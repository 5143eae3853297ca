// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	m "advent.dev/pkg/advent/internal/model"
)

// TestingT is the subset of *testing.T the constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockInputAdapter mocks adapter.InputAdapter.
type MockInputAdapter struct {
	mock.Mock
}

// NewMockInputAdapter creates a MockInputAdapter that asserts its expectations on cleanup.
func NewMockInputAdapter(t TestingT) *MockInputAdapter {
	mockAdapter := &MockInputAdapter{}
	mockAdapter.Mock.Test(t)
	t.Cleanup(func() { mockAdapter.AssertExpectations(t) })

	return mockAdapter
}

// ReadInput mocks InputAdapter.ReadInput.
func (_m *MockInputAdapter) ReadInput(ctx context.Context, path m.Path) (string, error) {
	ret := _m.Called(ctx, path)
	return ret.String(0), ret.Error(1)
}

// HashInput mocks InputAdapter.HashInput.
func (_m *MockInputAdapter) HashInput(content string) string {
	ret := _m.Called(content)
	return ret.String(0)
}

// MockReportStore mocks adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

// NewMockReportStore creates a MockReportStore that asserts its expectations on cleanup.
func NewMockReportStore(t TestingT) *MockReportStore {
	mockStore := &MockReportStore{}
	mockStore.Mock.Test(t)
	t.Cleanup(func() { mockStore.AssertExpectations(t) })

	return mockStore
}

// SaveReport mocks ReportStore.SaveReport.
func (_m *MockReportStore) SaveReport(ctx context.Context, dir m.Path, report m.Report) error {
	ret := _m.Called(ctx, dir, report)
	return ret.Error(0)
}

// LoadReport mocks ReportStore.LoadReport.
func (_m *MockReportStore) LoadReport(ctx context.Context, dir m.Path, day m.Day, inputHash string) (m.Report, bool, error) {
	ret := _m.Called(ctx, dir, day, inputHash)
	return ret.Get(0).(m.Report), ret.Bool(1), ret.Error(2)
}

// ListReports mocks ReportStore.ListReports.
func (_m *MockReportStore) ListReports(ctx context.Context, dir m.Path) ([]m.Report, error) {
	ret := _m.Called(ctx, dir)

	var reports []m.Report
	if v := ret.Get(0); v != nil {
		reports = v.([]m.Report)
	}

	return reports, ret.Error(1)
}

// MockSolutionCache mocks adapter.SolutionCache.
type MockSolutionCache struct {
	mock.Mock
}

// NewMockSolutionCache creates a MockSolutionCache that asserts its expectations on cleanup.
func NewMockSolutionCache(t TestingT) *MockSolutionCache {
	mockCache := &MockSolutionCache{}
	mockCache.Mock.Test(t)
	t.Cleanup(func() { mockCache.AssertExpectations(t) })

	return mockCache
}

// Get mocks SolutionCache.Get.
func (_m *MockSolutionCache) Get(ctx context.Context, dir m.Path, day m.Day, inputHash string) (m.Report, bool) {
	ret := _m.Called(ctx, dir, day, inputHash)
	return ret.Get(0).(m.Report), ret.Bool(1)
}

// Set mocks SolutionCache.Set.
func (_m *MockSolutionCache) Set(ctx context.Context, dir m.Path, report m.Report) error {
	ret := _m.Called(ctx, dir, report)
	return ret.Error(0)
}
