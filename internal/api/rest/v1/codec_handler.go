package v1

import (
	"fmt"
	"net/http"

	"github.com/feadoor/cryptopals/internal/attacks"
	"github.com/feadoor/cryptopals/internal/domain/message"

	"github.com/gin-gonic/gin"
)

// CodecHandler defines the interface for handling codec and XOR operations
type CodecHandler interface {
	HexToBase64(ctx *gin.Context)
	Base64ToHex(ctx *gin.Context)
	XOR(ctx *gin.Context)
	CrackSingleByte(ctx *gin.Context)
	CrackRepeatingKey(ctx *gin.Context)
}

type codecHandler struct{}

// NewCodecHandler creates a new CodecHandler
func NewCodecHandler() CodecHandler {
	return &codecHandler{}
}

// HexToBase64 handles the POST request to re-encode a hex string as base64
// @Summary Convert hex to base64
// @Tags Codec
// @Accept json
// @Produce json
// @Param requestBody body HexToBase64Request true "Hex input"
// @Success 200 {object} HexToBase64Response
// @Failure 400 {object} ErrorResponse
// @Router /codec/hex-to-base64 [post]
func (handler *codecHandler) HexToBase64(ctx *gin.Context) {
	var request HexToBase64Request

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	data, err := message.FromHex(request.Hex)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid hex input: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, HexToBase64Response{Base64: data.Base64()})
}

// Base64ToHex handles the POST request to re-encode a base64 string as hex
// @Summary Convert base64 to hex
// @Tags Codec
// @Accept json
// @Produce json
// @Param requestBody body Base64ToHexRequest true "Base64 input"
// @Success 200 {object} Base64ToHexResponse
// @Failure 400 {object} ErrorResponse
// @Router /codec/base64-to-hex [post]
func (handler *codecHandler) Base64ToHex(ctx *gin.Context) {
	var request Base64ToHexRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	data, err := message.FromBase64(request.Base64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid base64 input: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, Base64ToHexResponse{Hex: data.Hex()})
}

// XOR handles the POST request to XOR data against a repeating key
// @Summary XOR hex data against a repeating hex key
// @Tags XOR
// @Accept json
// @Produce json
// @Param requestBody body XORRequest true "Data and key"
// @Success 200 {object} XORResponse
// @Failure 400 {object} ErrorResponse
// @Router /xor [post]
func (handler *codecHandler) XOR(ctx *gin.Context) {
	var request XORRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	data, err := message.FromHex(request.HexIn)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid hex input: %v", err)})
		return
	}
	key, err := message.FromHex(request.HexKey)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid hex key: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, XORResponse{HexOut: message.XOR(data, key).Hex()})
}

// CrackSingleByte handles the POST request to break single-byte XOR
// @Summary Recover a single-byte XOR key from hex ciphertext
// @Tags XOR
// @Accept json
// @Produce json
// @Param requestBody body CrackSingleByteRequest true "Hex ciphertext"
// @Success 200 {object} CrackSingleByteResponse
// @Failure 400 {object} ErrorResponse
// @Router /xor/crack-single-byte [post]
func (handler *codecHandler) CrackSingleByte(ctx *gin.Context) {
	var request CrackSingleByteRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	data, err := message.FromHex(request.HexIn)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid hex input: %v", err)})
		return
	}

	key, score := attacks.BestSingleByteKey(data)

	ctx.JSON(http.StatusOK, CrackSingleByteResponse{
		HexKey:  key.Hex(),
		TextOut: message.XOR(data, key).Text(),
		Score:   score,
	})
}

// CrackRepeatingKey handles the POST request to break repeating-key XOR
// @Summary Recover a repeating XOR key from base64 ciphertext
// @Tags XOR
// @Accept json
// @Produce json
// @Param requestBody body CrackRepeatingKeyRequest true "Base64 ciphertext"
// @Success 200 {object} CrackRepeatingKeyResponse
// @Failure 400 {object} ErrorResponse
// @Router /xor/crack-repeating [post]
func (handler *codecHandler) CrackRepeatingKey(ctx *gin.Context) {
	var request CrackRepeatingKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	data, err := message.FromBase64(request.Base64In)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid base64 input: %v", err)})
		return
	}

	key := attacks.BestRepeatingKey(data)

	ctx.JSON(http.StatusOK, CrackRepeatingKeyResponse{
		TextKey: key.Text(),
		TextOut: message.XOR(data, key).Text(),
	})
}
