package models

import (
	"time"

	"github.com/feadoor/cryptopals/internal/domain/runs"
)

// ChallengeRunModel is the GORM database model for recorded challenge runs.
type ChallengeRunModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null;index"`

	// "set" is reserved in PostgreSQL, so both numbers get explicit columns.
	Set         int    `gorm:"column:set_number;not null;index"`
	Challenge   int    `gorm:"column:challenge_number;not null;index"`
	Description string `gorm:"not null;type:varchar(255)"`
	Outputs     string `gorm:"not null;type:text"`
	Success     bool   `gorm:"not null"`
	DurationMS  int64  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ChallengeRunModel) TableName() string {
	return "challenge_runs"
}

// ToDomain converts GORM model to domain entity
func (m *ChallengeRunModel) ToDomain() *runs.ChallengeRun {
	return &runs.ChallengeRun{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		Set:             m.Set,
		Challenge:       m.Challenge,
		Description:     m.Description,
		Outputs:         m.Outputs,
		Success:         m.Success,
		DurationMS:      m.DurationMS,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ChallengeRunModel) FromDomain(r *runs.ChallengeRun) {
	m.ID = r.ID
	m.DateTimeCreated = r.DateTimeCreated
	m.Set = r.Set
	m.Challenge = r.Challenge
	m.Description = r.Description
	m.Outputs = r.Outputs
	m.Success = r.Success
	m.DurationMS = r.DurationMS
}
