package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/feadoor/cryptopals/internal/domain/runs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupChallengeRouter(t *testing.T, service runs.ChallengeRunService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	handler := NewChallengeHandler(service)
	r.GET("/challenges", handler.List)
	r.POST("/challenges/:set/:challenge/runs", handler.Run)
	r.POST("/challenge-runs", handler.RunAll)
	r.GET("/challenge-runs", handler.ListRuns)
	r.GET("/challenge-runs/:id", handler.GetRunByID)
	r.DELETE("/challenge-runs/:id", handler.DeleteRunByID)
	return r
}

func sampleRun() *runs.ChallengeRun {
	return &runs.ChallengeRun{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now(),
		Set:             1,
		Challenge:       3,
		Description:     "Single-byte XOR cipher",
		Outputs:         `[{"key":"text_out","value":"Cooking MC's like a pound of bacon"}]`,
		Success:         true,
		DurationMS:      2,
	}
}

func TestListChallenges(t *testing.T) {
	r := setupChallengeRouter(t, new(MockChallengeRunService))

	req, _ := http.NewRequest("GET", "/challenges", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response []ChallengeInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 15)
	assert.Equal(t, "Convert hex to base64", response[0].Description)
}

func TestRunChallenge(t *testing.T) {
	service := new(MockChallengeRunService)
	run := sampleRun()
	service.On("Run", mock.Anything, 1, 3).Return(run, nil)

	r := setupChallengeRouter(t, service)

	w := postJSON(t, r, "/challenges/1/3/runs", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var response ChallengeRunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, run.ID, response.ID)
	assert.True(t, response.Success)
	service.AssertExpectations(t)
}

func TestRunChallenge_Unknown(t *testing.T) {
	service := new(MockChallengeRunService)
	service.On("Run", mock.Anything, 7, 99).Return(nil, fmt.Errorf("no challenge registered for set 7 challenge 99"))

	r := setupChallengeRouter(t, service)

	w := postJSON(t, r, "/challenges/7/99/runs", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunChallenge_BadSetNumber(t *testing.T) {
	r := setupChallengeRouter(t, new(MockChallengeRunService))

	w := postJSON(t, r, "/challenges/one/3/runs", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunAllChallenges(t *testing.T) {
	service := new(MockChallengeRunService)
	run := sampleRun()
	service.On("RunAll", mock.Anything).Return([]*runs.ChallengeRun{run}, nil)

	r := setupChallengeRouter(t, service)

	w := postJSON(t, r, "/challenge-runs", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var response []ChallengeRunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, run.ID, response[0].ID)
	service.AssertExpectations(t)
}

func TestRunAllChallenges_ServiceError(t *testing.T) {
	service := new(MockChallengeRunService)
	service.On("RunAll", mock.Anything).Return(nil, fmt.Errorf("database is unavailable"))

	r := setupChallengeRouter(t, service)

	w := postJSON(t, r, "/challenge-runs", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListRuns(t *testing.T) {
	service := new(MockChallengeRunService)
	service.On("List", mock.Anything, &runs.ChallengeRunQuery{Set: 1, Limit: 5}).
		Return([]*runs.ChallengeRun{sampleRun()}, nil)

	r := setupChallengeRouter(t, service)

	req, _ := http.NewRequest("GET", "/challenge-runs?set=1&limit=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response []ChallengeRunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	service.AssertExpectations(t)
}

func TestGetRunByID_NotFound(t *testing.T) {
	service := new(MockChallengeRunService)
	service.On("GetByID", mock.Anything, "missing").Return(nil, fmt.Errorf("challenge run with ID missing not found"))

	r := setupChallengeRouter(t, service)

	req, _ := http.NewRequest("GET", "/challenge-runs/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRunByID(t *testing.T) {
	service := new(MockChallengeRunService)
	run := sampleRun()
	service.On("DeleteByID", mock.Anything, run.ID).Return(nil)

	r := setupChallengeRouter(t, service)

	req, _ := http.NewRequest("DELETE", "/challenge-runs/"+run.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	service.AssertExpectations(t)
}
