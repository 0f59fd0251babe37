package v1

import (
	"context"

	"github.com/feadoor/cryptopals/internal/domain/runs"

	"github.com/stretchr/testify/mock"
)

// MockChallengeRunService is a mock implementation of ChallengeRunService
type MockChallengeRunService struct {
	mock.Mock
}

func (m *MockChallengeRunService) Run(ctx context.Context, set, challenge int) (*runs.ChallengeRun, error) {
	args := m.Called(ctx, set, challenge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*runs.ChallengeRun), args.Error(1)
}

func (m *MockChallengeRunService) RunAll(ctx context.Context) ([]*runs.ChallengeRun, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*runs.ChallengeRun), args.Error(1)
}

func (m *MockChallengeRunService) List(ctx context.Context, query *runs.ChallengeRunQuery) ([]*runs.ChallengeRun, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*runs.ChallengeRun), args.Error(1)
}

func (m *MockChallengeRunService) GetByID(ctx context.Context, runID string) (*runs.ChallengeRun, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*runs.ChallengeRun), args.Error(1)
}

func (m *MockChallengeRunService) DeleteByID(ctx context.Context, runID string) error {
	args := m.Called(ctx, runID)
	return args.Error(0)
}
