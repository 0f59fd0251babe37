package runs

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ChallengeRun entity records a single execution of a challenge.
type ChallengeRun struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	Set             int       `validate:"required,min=1"`
	Challenge       int       `validate:"required,min=1"`
	Description     string    `validate:"required,min=1,max=255"`
	Outputs         string    `validate:"required"`
	Success         bool
	DurationMS      int64 `validate:"min=0"`
}

// Validate for validating ChallengeRun struct
func (r *ChallengeRun) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// ChallengeRunQuery filters the runs returned from a List operation.
type ChallengeRunQuery struct {
	Set       int    `validate:"min=0"`
	Challenge int    `validate:"min=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created duration_ms set_number challenge_number"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"min=0"`
	Offset    int    `validate:"min=0"`
}

// Validate for validating ChallengeRunQuery struct
func (q *ChallengeRunQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
