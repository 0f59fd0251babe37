package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/feadoor/cryptopals/internal/domain/runs"
	"github.com/feadoor/cryptopals/internal/infrastructure/persistence/models"
	"github.com/feadoor/cryptopals/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormChallengeRunRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormChallengeRunRepository creates a new GORM-based ChallengeRunRepository
// implementation.
func NewGormChallengeRunRepository(db *gorm.DB, logger logger.Logger) (runs.ChallengeRunRepository, error) {
	if err := db.AutoMigrate(&models.ChallengeRunModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate challenge run schema: %w", err)
	}
	return &gormChallengeRunRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormChallengeRunRepository) Create(ctx context.Context, run *runs.ChallengeRun) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ChallengeRunModel{}
	model.FromDomain(run)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create challenge run: %w", err)
	}

	r.logger.Info("Created challenge run with id ", run.ID)
	return nil
}

func (r *gormChallengeRunRepository) List(ctx context.Context, query *runs.ChallengeRunQuery) ([]*runs.ChallengeRun, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ChallengeRunModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ChallengeRunModel{})

	if query.Set > 0 {
		dbQuery = dbQuery.Where("set_number = ?", query.Set)
	}
	if query.Challenge > 0 {
		dbQuery = dbQuery.Where("challenge_number = ?", query.Challenge)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch challenge runs: %w", err)
	}

	domainList := make([]*runs.ChallengeRun, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormChallengeRunRepository) GetByID(ctx context.Context, runID string) (*runs.ChallengeRun, error) {
	var model models.ChallengeRunModel
	if err := r.db.WithContext(ctx).Where("id = ?", runID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("challenge run with ID %s not found", runID)
		}
		return nil, fmt.Errorf("failed to fetch challenge run: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormChallengeRunRepository) DeleteByID(ctx context.Context, runID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", runID).Delete(&models.ChallengeRunModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete challenge run: %w", err)
	}

	r.logger.Info("Deleted challenge run with id ", runID)
	return nil
}
