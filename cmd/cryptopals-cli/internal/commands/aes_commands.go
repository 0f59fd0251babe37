package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/feadoor/cryptopals/internal/domain/message"
	"github.com/feadoor/cryptopals/internal/infrastructure/cryptography"
	"github.com/feadoor/cryptopals/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AESCommandHandler encapsulates logic for handling AES operations via CLI.
type AESCommandHandler struct {
	logger logger.Logger
}

// NewAESCommandHandler initializes and returns an AESCommandHandler instance
// with a configured logger.
func NewAESCommandHandler() (*AESCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &AESCommandHandler{
		logger: loggerInstance,
	}, nil
}

// GenerateAESKeyCmd generates a random AES key and prints it as hex
func (commandHandler *AESCommandHandler) GenerateAESKeyCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag ", err)
		return
	}

	if keySize != 16 && keySize != 24 && keySize != 32 {
		commandHandler.logger.Error("key size must be 16, 24 or 32 bytes")
		return
	}

	fmt.Println(message.Random(keySize).Hex())
}

// EncryptAESCmd encrypts a file using AES in ECB or CBC mode
func (commandHandler *AESCommandHandler) EncryptAESCmd(cmd *cobra.Command, _ []string) {
	commandHandler.runFileOperation(cmd, func(cipher *cryptography.BlockCipher, data message.Message) (message.Message, error) {
		return cipher.Encrypt(data)
	})
}

// DecryptAESCmd decrypts a file using AES in ECB or CBC mode
func (commandHandler *AESCommandHandler) DecryptAESCmd(cmd *cobra.Command, _ []string) {
	commandHandler.runFileOperation(cmd, func(cipher *cryptography.BlockCipher, data message.Message) (message.Message, error) {
		return cipher.Decrypt(data)
	})
}

func (commandHandler *AESCommandHandler) runFileOperation(cmd *cobra.Command, op func(*cryptography.BlockCipher, message.Message) (message.Message, error)) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}
	hexKey, err := cmd.Flags().GetString("hex-key")
	if err != nil {
		commandHandler.logger.Error("invalid hex-key flag ", err)
		return
	}
	mode, err := cmd.Flags().GetString("mode")
	if err != nil {
		commandHandler.logger.Error("invalid mode flag ", err)
		return
	}
	hexIV, err := cmd.Flags().GetString("hex-iv")
	if err != nil {
		commandHandler.logger.Error("invalid hex-iv flag ", err)
		return
	}

	key, err := message.FromHex(hexKey)
	if err != nil {
		commandHandler.logger.Error("invalid key ", err)
		return
	}

	var cipher *cryptography.BlockCipher
	switch mode {
	case "ecb":
		cipher, err = cryptography.NewAESECB(key)
	case "cbc":
		var iv message.Message
		iv, err = message.FromHex(hexIV)
		if err != nil {
			commandHandler.logger.Error("invalid IV ", err)
			return
		}
		cipher, err = cryptography.NewAESCBC(key, iv)
	default:
		commandHandler.logger.Error("mode must be ecb or cbc")
		return
	}
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	input, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	output, err := op(cipher, message.FromBytes(input))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFilePath, output.Bytes(), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Output written to ", outputFilePath)
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command) error {
	handler, err := NewAESCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create AES command handler %w", err)
	}

	var generateAESKeyCmd = &cobra.Command{
		Use:   "generate-aes-key",
		Short: "Generate a random AES key",
		Run:   handler.GenerateAESKeyCmd,
	}
	generateAESKeyCmd.Flags().IntP("key-size", "", 16, "AES key size in bytes (16, 24 or 32)")
	rootCmd.AddCommand(generateAESKeyCmd)

	var encryptAESFileCmd = &cobra.Command{
		Use:   "encrypt-aes",
		Short: "Encrypt a file using AES",
		Run:   handler.EncryptAESCmd,
	}
	encryptAESFileCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptAESFileCmd.Flags().StringP("hex-key", "", "", "AES key as a hex string")
	encryptAESFileCmd.Flags().StringP("mode", "", "ecb", "Operation mode (ecb or cbc)")
	encryptAESFileCmd.Flags().StringP("hex-iv", "", "", "IV as a hex string (CBC mode only)")
	rootCmd.AddCommand(encryptAESFileCmd)

	var decryptAESFileCmd = &cobra.Command{
		Use:   "decrypt-aes",
		Short: "Decrypt a file using AES",
		Run:   handler.DecryptAESCmd,
	}
	decryptAESFileCmd.Flags().StringP("input-file", "", "", "Input encrypted file path")
	decryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptAESFileCmd.Flags().StringP("hex-key", "", "", "AES key as a hex string")
	decryptAESFileCmd.Flags().StringP("mode", "", "ecb", "Operation mode (ecb or cbc)")
	decryptAESFileCmd.Flags().StringP("hex-iv", "", "", "IV as a hex string (CBC mode only)")
	rootCmd.AddCommand(decryptAESFileCmd)

	return nil
}
