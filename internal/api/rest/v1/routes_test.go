package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/feadoor/cryptopals/internal/domain/runs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := new(MockChallengeRunService)
	service.On("Run", mock.Anything, mock.Anything, mock.Anything).Return(sampleRun(), nil)
	service.On("RunAll", mock.Anything).Return([]*runs.ChallengeRun{}, nil)
	service.On("List", mock.Anything, mock.Anything).Return([]*runs.ChallengeRun{}, nil)
	service.On("GetByID", mock.Anything, mock.Anything).Return(sampleRun(), nil)
	service.On("DeleteByID", mock.Anything, mock.Anything).Return(nil)

	r := gin.New()
	SetupRoutes(r, service)

	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/codec/hex-to-base64"},
		{"POST", "/api/v1/codec/base64-to-hex"},
		{"POST", "/api/v1/xor"},
		{"POST", "/api/v1/xor/crack-single-byte"},
		{"POST", "/api/v1/xor/crack-repeating"},
		{"POST", "/api/v1/cipher/encrypt"},
		{"POST", "/api/v1/cipher/decrypt"},
		{"GET", "/api/v1/challenges"},
		{"POST", "/api/v1/challenges/1/1/runs"},
		{"POST", "/api/v1/challenge-runs"},
		{"GET", "/api/v1/challenge-runs"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}
