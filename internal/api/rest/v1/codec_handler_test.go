package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCodecRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	handler := NewCodecHandler()
	r.POST("/codec/hex-to-base64", handler.HexToBase64)
	r.POST("/codec/base64-to-hex", handler.Base64ToHex)
	r.POST("/xor", handler.XOR)
	r.POST("/xor/crack-single-byte", handler.CrackSingleByte)
	r.POST("/xor/crack-repeating", handler.CrackRepeatingKey)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", url, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHexToBase64(t *testing.T) {
	r := setupCodecRouter(t)

	w := postJSON(t, r, "/codec/hex-to-base64", HexToBase64Request{
		Hex: "49276d206b696c6c696e6720796f757220627261696e206c696b65206120706f69736f6e6f7573206d757368726f6f6d",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response HexToBase64Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "SSdtIGtpbGxpbmcgeW91ciBicmFpbiBsaWtlIGEgcG9pc29ub3VzIG11c2hyb29t", response.Base64)
}

func TestHexToBase64_InvalidHex(t *testing.T) {
	r := setupCodecRouter(t)

	w := postJSON(t, r, "/codec/hex-to-base64", HexToBase64Request{Hex: "abcg"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Message, "invalid hex")
}

func TestBase64ToHex(t *testing.T) {
	r := setupCodecRouter(t)

	w := postJSON(t, r, "/codec/base64-to-hex", Base64ToHexRequest{Base64: "SGVsbG8="})
	require.Equal(t, http.StatusOK, w.Code)

	var response Base64ToHexResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "48656c6c6f", response.Hex)
}

func TestXOR(t *testing.T) {
	r := setupCodecRouter(t)

	w := postJSON(t, r, "/xor", XORRequest{
		HexIn:  "1c0111001f010100061a024b53535009181c",
		HexKey: "686974207468652062756c6c277320657965",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response XORResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "746865206b696420646f6e277420706c6179", response.HexOut)
}

func TestCrackSingleByte(t *testing.T) {
	r := setupCodecRouter(t)

	w := postJSON(t, r, "/xor/crack-single-byte", CrackSingleByteRequest{
		HexIn: "1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response CrackSingleByteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Cooking MC's like a pound of bacon", response.TextOut)
	assert.Equal(t, "58", response.HexKey)
}
