// Package config provides functionality for loading and managing application
// configuration.
//
// Settings are loaded from YAML files and environment variables, validated,
// and made accessible to the CLI and the REST API. Each settings struct
// carries its own Validate method.
package config
