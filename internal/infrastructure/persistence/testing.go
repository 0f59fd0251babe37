//go:build integration
// +build integration

package persistence

import (
	"testing"
	"time"

	"github.com/feadoor/cryptopals/internal/domain/runs"
	"github.com/feadoor/cryptopals/internal/pkg/config"
	"github.com/feadoor/cryptopals/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and repositories
type TestContext struct {
	DB      *gorm.DB
	RunRepo runs.ChallengeRunRepository
}

// SetupTestDB creates an in-memory database and a repository backed by it.
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	log := testutil.SetupTestLogger(t)

	db, err := NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, CloseDB(db))
	})

	repo, err := NewGormChallengeRunRepository(db, log)
	require.NoError(t, err)

	return &TestContext{DB: db, RunRepo: repo}
}

// CreateTestRun builds a valid ChallengeRun for the given set and challenge.
func CreateTestRun(t *testing.T, set, challenge int) *runs.ChallengeRun {
	t.Helper()

	return &runs.ChallengeRun{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now(),
		Set:             set,
		Challenge:       challenge,
		Description:     "test challenge",
		Outputs:         `[{"key":"success","value":"true"}]`,
		Success:         true,
		DurationMS:      1,
	}
}
