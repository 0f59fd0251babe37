package v1

import (
	"github.com/feadoor/cryptopals/internal/domain/runs"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, challengeRunService runs.ChallengeRunService) {
	v1 := r.Group(BasePath)

	// Codec and XOR routes
	codecHandler := NewCodecHandler()
	v1.POST("/codec/hex-to-base64", codecHandler.HexToBase64)
	v1.POST("/codec/base64-to-hex", codecHandler.Base64ToHex)
	v1.POST("/xor", codecHandler.XOR)
	v1.POST("/xor/crack-single-byte", codecHandler.CrackSingleByte)
	v1.POST("/xor/crack-repeating", codecHandler.CrackRepeatingKey)

	// Cipher routes
	cipherHandler := NewCipherHandler()
	v1.POST("/cipher/encrypt", cipherHandler.Encrypt)
	v1.POST("/cipher/decrypt", cipherHandler.Decrypt)

	// Challenge routes
	challengeHandler := NewChallengeHandler(challengeRunService)
	v1.GET("/challenges", challengeHandler.List)
	v1.POST("/challenges/:set/:challenge/runs", challengeHandler.Run)
	v1.POST("/challenge-runs", challengeHandler.RunAll)
	v1.GET("/challenge-runs", challengeHandler.ListRuns)
	v1.GET("/challenge-runs/:id", challengeHandler.GetRunByID)
	v1.DELETE("/challenge-runs/:id", challengeHandler.DeleteRunByID)
}
