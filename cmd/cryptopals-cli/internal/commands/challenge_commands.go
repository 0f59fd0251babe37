package commands

import (
	"fmt"

	"github.com/feadoor/cryptopals/internal/challenges"
	"github.com/feadoor/cryptopals/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ChallengeCommandHandler encapsulates logic for running challenges via CLI.
type ChallengeCommandHandler struct {
	logger logger.Logger
}

// NewChallengeCommandHandler initializes and returns a ChallengeCommandHandler
// instance with a configured logger.
func NewChallengeCommandHandler() (*ChallengeCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &ChallengeCommandHandler{
		logger: loggerInstance,
	}, nil
}

// ListChallengesCmd lists the registered challenges
func (commandHandler *ChallengeCommandHandler) ListChallengesCmd(_ *cobra.Command, _ []string) {
	for _, info := range challenges.List() {
		fmt.Printf("Set %d Challenge %2d - %s\n", info.Set, info.Challenge, info.Description)
	}
}

// RunChallengeCmd runs a single challenge by set and challenge number
func (commandHandler *ChallengeCommandHandler) RunChallengeCmd(cmd *cobra.Command, _ []string) {
	set, err := cmd.Flags().GetInt("set")
	if err != nil {
		commandHandler.logger.Error("invalid set flag ", err)
		return
	}
	challenge, err := cmd.Flags().GetInt("challenge")
	if err != nil {
		commandHandler.logger.Error("invalid challenge flag ", err)
		return
	}
	dataDir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		commandHandler.logger.Error("invalid data-dir flag ", err)
		return
	}

	_, fn, err := challenges.Lookup(set, challenge)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := fn(&challenges.Env{DataDir: dataDir})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Println(result)
}

// RunAllChallengesCmd runs every registered challenge in order
func (commandHandler *ChallengeCommandHandler) RunAllChallengesCmd(cmd *cobra.Command, _ []string) {
	dataDir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		commandHandler.logger.Error("invalid data-dir flag ", err)
		return
	}

	env := &challenges.Env{DataDir: dataDir}
	for _, info := range challenges.List() {
		_, fn, err := challenges.Lookup(info.Set, info.Challenge)
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}

		result, err := fn(env)
		if err != nil {
			commandHandler.logger.Error("set ", info.Set, " challenge ", info.Challenge, " failed: ", err)
			continue
		}

		fmt.Println(result)
	}
}

// InitChallengeCommands registers challenge-related commands
func InitChallengeCommands(rootCmd *cobra.Command) error {
	handler, err := NewChallengeCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create challenge command handler %w", err)
	}

	var listChallengesCmd = &cobra.Command{
		Use:   "list-challenges",
		Short: "List the registered challenges",
		Run:   handler.ListChallengesCmd,
	}
	rootCmd.AddCommand(listChallengesCmd)

	var runChallengeCmd = &cobra.Command{
		Use:   "run-challenge",
		Short: "Run a challenge by set and challenge number",
		Run:   handler.RunChallengeCmd,
	}
	runChallengeCmd.Flags().IntP("set", "", 0, "Challenge set number")
	runChallengeCmd.Flags().IntP("challenge", "", 0, "Challenge number within the set")
	runChallengeCmd.Flags().StringP("data-dir", "", "data", "Directory holding the challenge data files")
	rootCmd.AddCommand(runChallengeCmd)

	var runAllChallengesCmd = &cobra.Command{
		Use:   "run-all-challenges",
		Short: "Run every registered challenge in order",
		Run:   handler.RunAllChallengesCmd,
	}
	runAllChallengesCmd.Flags().StringP("data-dir", "", "data", "Directory holding the challenge data files")
	rootCmd.AddCommand(runAllChallengesCmd)

	return nil
}
