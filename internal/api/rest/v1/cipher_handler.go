package v1

import (
	"fmt"
	"net/http"

	"github.com/feadoor/cryptopals/internal/domain/message"
	"github.com/feadoor/cryptopals/internal/infrastructure/cryptography"

	"github.com/gin-gonic/gin"
)

// CipherHandler defines the interface for handling block cipher operations
type CipherHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type cipherHandler struct{}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler() CipherHandler {
	return &cipherHandler{}
}

// Encrypt handles the POST request to encrypt data with AES
// @Summary Encrypt hex data with AES in ECB or CBC mode
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body CipherRequest true "Cipher parameters"
// @Success 200 {object} CipherResponse
// @Failure 400 {object} ErrorResponse
// @Router /cipher/encrypt [post]
func (handler *cipherHandler) Encrypt(ctx *gin.Context) {
	handler.run(ctx, func(cipher *cryptography.BlockCipher, data message.Message) (message.Message, error) {
		return cipher.Encrypt(data)
	})
}

// Decrypt handles the POST request to decrypt data with AES
// @Summary Decrypt hex data with AES in ECB or CBC mode
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body CipherRequest true "Cipher parameters"
// @Success 200 {object} CipherResponse
// @Failure 400 {object} ErrorResponse
// @Router /cipher/decrypt [post]
func (handler *cipherHandler) Decrypt(ctx *gin.Context) {
	handler.run(ctx, func(cipher *cryptography.BlockCipher, data message.Message) (message.Message, error) {
		return cipher.Decrypt(data)
	})
}

func (handler *cipherHandler) run(ctx *gin.Context, op func(*cryptography.BlockCipher, message.Message) (message.Message, error)) {
	var request CipherRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	key, err := message.FromHex(request.HexKey)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid hex key: %v", err)})
		return
	}
	data, err := message.FromHex(request.HexIn)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid hex input: %v", err)})
		return
	}

	var cipher *cryptography.BlockCipher
	switch request.Mode {
	case "ecb":
		cipher, err = cryptography.NewAESECB(key)
	case "cbc":
		var iv message.Message
		iv, err = message.FromHex(request.HexIV)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid hex IV: %v", err)})
			return
		}
		cipher, err = cryptography.NewAESCBC(key, iv)
	}
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("failed to create cipher: %v", err)})
		return
	}

	out, err := op(cipher, data)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("cipher operation failed: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, CipherResponse{HexOut: out.Hex()})
}
