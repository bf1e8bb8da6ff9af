package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockTaggerForTest creates a new mock Tagger for testing
func NewMockTaggerForTest(t *testing.T) *MockTagger {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTagger(ctrl)
}

// NewMockAddressServiceForTest creates a new mock AddressService for testing
func NewMockAddressServiceForTest(t *testing.T) *MockAddressService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockAddressService(ctrl)
}

// NewMockAddressProcessorForTest creates a new mock AddressProcessor for testing
func NewMockAddressProcessorForTest(t *testing.T) *MockAddressProcessor {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockAddressProcessor(ctrl)
}

// NewMockStatsRecorderForTest creates a new mock StatsRecorder for testing
func NewMockStatsRecorderForTest(t *testing.T) *MockStatsRecorder {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockStatsRecorder(ctrl)
}
