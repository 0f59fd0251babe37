package commands

import (
	"fmt"

	"github.com/feadoor/cryptopals/internal/attacks"
	"github.com/feadoor/cryptopals/internal/domain/message"
	"github.com/feadoor/cryptopals/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// CodecCommandHandler encapsulates logic for handling codec and XOR
// operations via CLI.
type CodecCommandHandler struct {
	logger logger.Logger
}

// NewCodecCommandHandler initializes and returns a CodecCommandHandler
// instance with a configured logger.
func NewCodecCommandHandler() (*CodecCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &CodecCommandHandler{
		logger: loggerInstance,
	}, nil
}

// HexToBase64Cmd re-encodes a hex string as base64
func (commandHandler *CodecCommandHandler) HexToBase64Cmd(cmd *cobra.Command, _ []string) {
	hexIn, err := cmd.Flags().GetString("hex")
	if err != nil {
		commandHandler.logger.Error("invalid hex flag ", err)
		return
	}

	data, err := message.FromHex(hexIn)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Println(data.Base64())
}

// Base64ToHexCmd re-encodes a base64 string as hex
func (commandHandler *CodecCommandHandler) Base64ToHexCmd(cmd *cobra.Command, _ []string) {
	base64In, err := cmd.Flags().GetString("base64")
	if err != nil {
		commandHandler.logger.Error("invalid base64 flag ", err)
		return
	}

	data, err := message.FromBase64(base64In)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Println(data.Hex())
}

// XORCmd XORs hex-encoded data against a repeating hex-encoded key
func (commandHandler *CodecCommandHandler) XORCmd(cmd *cobra.Command, _ []string) {
	hexIn, err := cmd.Flags().GetString("hex-in")
	if err != nil {
		commandHandler.logger.Error("invalid hex-in flag ", err)
		return
	}
	hexKey, err := cmd.Flags().GetString("hex-key")
	if err != nil {
		commandHandler.logger.Error("invalid hex-key flag ", err)
		return
	}

	data, err := message.FromHex(hexIn)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	key, err := message.FromHex(hexKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Println(message.XOR(data, key).Hex())
}

// CrackSingleByteCmd recovers a single-byte XOR key from hex ciphertext
func (commandHandler *CodecCommandHandler) CrackSingleByteCmd(cmd *cobra.Command, _ []string) {
	hexIn, err := cmd.Flags().GetString("hex-in")
	if err != nil {
		commandHandler.logger.Error("invalid hex-in flag ", err)
		return
	}

	data, err := message.FromHex(hexIn)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	key, score := attacks.BestSingleByteKey(data)
	commandHandler.logger.Info("Best key 0x", key.Hex(), " with score ", score)
	fmt.Println(message.XOR(data, key).Text())
}

// CrackRepeatingKeyCmd recovers a repeating XOR key from base64 ciphertext
func (commandHandler *CodecCommandHandler) CrackRepeatingKeyCmd(cmd *cobra.Command, _ []string) {
	base64In, err := cmd.Flags().GetString("base64-in")
	if err != nil {
		commandHandler.logger.Error("invalid base64-in flag ", err)
		return
	}

	data, err := message.FromBase64(base64In)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	key := attacks.BestRepeatingKey(data)
	commandHandler.logger.Info("Best key ", key.Text())
	fmt.Println(message.XOR(data, key).Text())
}

// InitCodecCommands registers codec and XOR commands
func InitCodecCommands(rootCmd *cobra.Command) error {
	handler, err := NewCodecCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create codec command handler %w", err)
	}

	var hexToBase64Cmd = &cobra.Command{
		Use:   "hex-to-base64",
		Short: "Re-encode a hex string as base64",
		Run:   handler.HexToBase64Cmd,
	}
	hexToBase64Cmd.Flags().StringP("hex", "", "", "Hex string to re-encode")
	rootCmd.AddCommand(hexToBase64Cmd)

	var base64ToHexCmd = &cobra.Command{
		Use:   "base64-to-hex",
		Short: "Re-encode a base64 string as hex",
		Run:   handler.Base64ToHexCmd,
	}
	base64ToHexCmd.Flags().StringP("base64", "", "", "Base64 string to re-encode")
	rootCmd.AddCommand(base64ToHexCmd)

	var xorCmd = &cobra.Command{
		Use:   "xor",
		Short: "XOR hex data against a repeating hex key",
		Run:   handler.XORCmd,
	}
	xorCmd.Flags().StringP("hex-in", "", "", "Hex data to encrypt")
	xorCmd.Flags().StringP("hex-key", "", "", "Hex key to repeat over the data")
	rootCmd.AddCommand(xorCmd)

	var crackSingleByteCmd = &cobra.Command{
		Use:   "crack-single-byte-xor",
		Short: "Recover a single-byte XOR key from hex ciphertext",
		Run:   handler.CrackSingleByteCmd,
	}
	crackSingleByteCmd.Flags().StringP("hex-in", "", "", "Hex ciphertext to crack")
	rootCmd.AddCommand(crackSingleByteCmd)

	var crackRepeatingKeyCmd = &cobra.Command{
		Use:   "crack-repeating-xor",
		Short: "Recover a repeating XOR key from base64 ciphertext",
		Run:   handler.CrackRepeatingKeyCmd,
	}
	crackRepeatingKeyCmd.Flags().StringP("base64-in", "", "", "Base64 ciphertext to crack")
	rootCmd.AddCommand(crackRepeatingKeyCmd)

	return nil
}
