package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ServerSettings holds the listen address and CORS settings for the REST API.
type ServerSettings struct {
	Port           string   `mapstructure:"port" validate:"required"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Validate checks that all fields in ServerSettings are valid
func (s *ServerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}

	return nil
}
