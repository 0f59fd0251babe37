package runs

import "context"

// ChallengeRunService defines methods for executing challenges and recording
// the results.
type ChallengeRunService interface {
	// Run executes the challenge identified by set and challenge number,
	// records the outcome and returns the stored run.
	Run(ctx context.Context, set, challenge int) (*ChallengeRun, error)

	// RunAll executes every registered challenge in order, skipping
	// challenges whose data files are not available.
	// It returns the stored runs and any error encountered during execution.
	RunAll(ctx context.Context) ([]*ChallengeRun, error)

	// List retrieves recorded runs considering a query filter when set.
	List(ctx context.Context, query *ChallengeRunQuery) ([]*ChallengeRun, error)

	// GetByID retrieves a recorded run by ID.
	GetByID(ctx context.Context, runID string) (*ChallengeRun, error)

	// DeleteByID deletes a recorded run by ID.
	DeleteByID(ctx context.Context, runID string) error
}

// ChallengeRunRepository defines the interface for ChallengeRun persistence
type ChallengeRunRepository interface {
	// Create adds a new ChallengeRun to the database
	Create(ctx context.Context, run *ChallengeRun) error
	// List lists ChallengeRuns in the database with optional filter
	List(ctx context.Context, query *ChallengeRunQuery) ([]*ChallengeRun, error)
	// GetByID retrieves a ChallengeRun from the database by ID
	GetByID(ctx context.Context, runID string) (*ChallengeRun, error)
	// DeleteByID deletes a ChallengeRun in the database by ID
	DeleteByID(ctx context.Context, runID string) error
}
