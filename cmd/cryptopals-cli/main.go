// Package main is the entry point for the cryptopals command line tool.
// It initializes the root command and registers the codec, XOR, AES and
// challenge sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/feadoor/cryptopals/cmd/cryptopals-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "cryptopals",
		Short: "Cryptopals challenge toolkit",
		Long: `cryptopals is a command line tool for working through the cryptopals
crypto challenges. It exposes the building blocks (hex/base64 codecs,
repeating-key XOR, AES in ECB and CBC mode) as individual commands, and can
run any of the registered challenge solutions by set and challenge number.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitCodecCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize codec commands: %w", err)
	}

	if err := commands.InitAESCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize AES commands: %w", err)
	}

	if err := commands.InitChallengeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize challenge commands: %w", err)
	}

	return nil
}
