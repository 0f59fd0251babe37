// Package app contains the application services that sit between the
// transport layers and the domain.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/feadoor/cryptopals/internal/challenges"
	"github.com/feadoor/cryptopals/internal/domain/runs"
	"github.com/feadoor/cryptopals/internal/pkg/logger"

	"github.com/google/uuid"
)

// challengeRunService implements the ChallengeRunService interface by running
// challenges through the registry and recording the outcomes.
type challengeRunService struct {
	env     *challenges.Env
	runRepo runs.ChallengeRunRepository
	logger  logger.Logger
}

// NewChallengeRunService creates a new instance of ChallengeRunService
func NewChallengeRunService(
	env *challenges.Env,
	runRepo runs.ChallengeRunRepository,
	logger logger.Logger,
) (runs.ChallengeRunService, error) {
	return &challengeRunService{
		env:     env,
		runRepo: runRepo,
		logger:  logger,
	}, nil
}

// Run executes the challenge identified by set and challenge number, records
// the outcome and returns the stored run.
func (s *challengeRunService) Run(ctx context.Context, set, challenge int) (*runs.ChallengeRun, error) {
	info, fn, err := challenges.Lookup(set, challenge)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Running set ", info.Set, " challenge ", info.Challenge)

	start := time.Now()
	result, err := fn(s.env)
	duration := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("failed to run set %d challenge %d: %w", set, challenge, err)
	}

	outputs, err := json.Marshal(result.Outputs)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize challenge outputs: %w", err)
	}

	run := &runs.ChallengeRun{
		ID:              uuid.New().String(),
		DateTimeCreated: time.Now(),
		Set:             result.Set,
		Challenge:       result.Challenge,
		Description:     result.Description,
		Outputs:         string(outputs),
		Success:         result.Succeeded(),
		DurationMS:      duration.Milliseconds(),
	}

	if err := s.runRepo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to record challenge run: %w", err)
	}

	return run, nil
}

// RunAll executes every registered challenge in order. Challenges whose
// input files are not present in the data directory are skipped rather than
// aborting the sweep.
func (s *challengeRunService) RunAll(ctx context.Context) ([]*runs.ChallengeRun, error) {
	infos := challenges.List()
	results := make([]*runs.ChallengeRun, 0, len(infos))

	for _, info := range infos {
		run, err := s.Run(ctx, info.Set, info.Challenge)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				s.logger.Warn("Skipping set ", info.Set, " challenge ", info.Challenge, ": ", err)
				continue
			}
			return results, err
		}
		results = append(results, run)
	}

	return results, nil
}

// List retrieves recorded runs considering a query filter when set.
func (s *challengeRunService) List(ctx context.Context, query *runs.ChallengeRunQuery) ([]*runs.ChallengeRun, error) {
	return s.runRepo.List(ctx, query)
}

// GetByID retrieves a recorded run by ID.
func (s *challengeRunService) GetByID(ctx context.Context, runID string) (*runs.ChallengeRun, error) {
	return s.runRepo.GetByID(ctx, runID)
}

// DeleteByID deletes a recorded run by ID.
func (s *challengeRunService) DeleteByID(ctx context.Context, runID string) error {
	return s.runRepo.DeleteByID(ctx, runID)
}
