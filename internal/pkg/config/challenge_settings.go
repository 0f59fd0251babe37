package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ChallengeSettings holds the settings for running challenges, most notably
// the directory containing the downloadable challenge input files.
type ChallengeSettings struct {
	DataDir string `mapstructure:"data_dir" validate:"required"`
}

// Validate checks that all fields in ChallengeSettings are valid
func (s *ChallengeSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ChallengeSettings: %w", err)
	}

	return nil
}
