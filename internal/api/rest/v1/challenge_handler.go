package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/feadoor/cryptopals/internal/challenges"
	"github.com/feadoor/cryptopals/internal/domain/runs"

	"github.com/gin-gonic/gin"
)

// ChallengeHandler defines the interface for handling challenge operations
type ChallengeHandler interface {
	List(ctx *gin.Context)
	Run(ctx *gin.Context)
	RunAll(ctx *gin.Context)
	ListRuns(ctx *gin.Context)
	GetRunByID(ctx *gin.Context)
	DeleteRunByID(ctx *gin.Context)
}

type challengeHandler struct {
	challengeRunService runs.ChallengeRunService
}

// NewChallengeHandler creates a new ChallengeHandler
func NewChallengeHandler(challengeRunService runs.ChallengeRunService) ChallengeHandler {
	return &challengeHandler{
		challengeRunService: challengeRunService,
	}
}

// List handles the GET request to list all registered challenges
// @Summary List the registered challenges
// @Tags Challenge
// @Produce json
// @Success 200 {array} ChallengeInfoResponse
// @Router /challenges [get]
func (handler *challengeHandler) List(ctx *gin.Context) {
	infos := challenges.List()

	listResponse := make([]ChallengeInfoResponse, 0, len(infos))
	for _, info := range infos {
		listResponse = append(listResponse, ChallengeInfoResponse{
			Set:         info.Set,
			Challenge:   info.Challenge,
			Description: info.Description,
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Run handles the POST request to run a challenge and record the outcome
// @Summary Run a challenge by set and challenge number
// @Tags Challenge
// @Produce json
// @Param set path int true "Challenge set"
// @Param challenge path int true "Challenge number"
// @Success 201 {object} ChallengeRunResponse
// @Failure 400 {object} ErrorResponse
// @Router /challenges/{set}/{challenge}/runs [post]
func (handler *challengeHandler) Run(ctx *gin.Context) {
	set, err := strconv.Atoi(ctx.Param("set"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid set number: %v", err)})
		return
	}
	challenge, err := strconv.Atoi(ctx.Param("challenge"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid challenge number: %v", err)})
		return
	}

	run, err := handler.challengeRunService.Run(ctx, set, challenge)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error running challenge: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toRunResponse(run))
}

// RunAll handles the POST request to run every registered challenge
// @Summary Run all registered challenges and record the outcomes
// @Description Challenges whose input files are not present on the server are skipped.
// @Tags Challenge
// @Produce json
// @Success 201 {array} ChallengeRunResponse
// @Failure 500 {object} ErrorResponse
// @Router /challenge-runs [post]
func (handler *challengeHandler) RunAll(ctx *gin.Context) {
	runList, err := handler.challengeRunService.RunAll(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error running challenges: %v", err)})
		return
	}

	listResponse := make([]ChallengeRunResponse, 0, len(runList))
	for _, run := range runList {
		listResponse = append(listResponse, toRunResponse(run))
	}

	ctx.JSON(http.StatusCreated, listResponse)
}

// ListRuns handles the GET request to list recorded challenge runs
// @Summary List recorded challenge runs based on query parameters
// @Tags Challenge
// @Produce json
// @Param set query int false "Challenge set"
// @Param challenge query int false "Challenge number"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} ChallengeRunResponse
// @Failure 400 {object} ErrorResponse
// @Router /challenge-runs [get]
func (handler *challengeHandler) ListRuns(ctx *gin.Context) {
	query := &runs.ChallengeRunQuery{}

	if set := ctx.Query("set"); len(set) > 0 {
		value, err := strconv.Atoi(set)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid set number: %v", err)})
			return
		}
		query.Set = value
	}
	if challenge := ctx.Query("challenge"); len(challenge) > 0 {
		value, err := strconv.Atoi(challenge)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid challenge number: %v", err)})
			return
		}
		query.Challenge = value
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		value, err := strconv.Atoi(limit)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid limit: %v", err)})
			return
		}
		query.Limit = value
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		value, err := strconv.Atoi(offset)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid offset: %v", err)})
			return
		}
		query.Offset = value
	}
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	runList, err := handler.challengeRunService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error listing challenge runs: %v", err)})
		return
	}

	listResponse := make([]ChallengeRunResponse, 0, len(runList))
	for _, run := range runList {
		listResponse = append(listResponse, toRunResponse(run))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetRunByID handles the GET request to fetch a recorded run by ID
// @Summary Get a recorded challenge run by ID
// @Tags Challenge
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} ChallengeRunResponse
// @Failure 404 {object} ErrorResponse
// @Router /challenge-runs/{id} [get]
func (handler *challengeHandler) GetRunByID(ctx *gin.Context) {
	runID := ctx.Param("id")

	run, err := handler.challengeRunService.GetByID(ctx, runID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error fetching challenge run: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, toRunResponse(run))
}

// DeleteRunByID handles the DELETE request to remove a recorded run by ID
// @Summary Delete a recorded challenge run by ID
// @Tags Challenge
// @Produce json
// @Param id path string true "Run ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /challenge-runs/{id} [delete]
func (handler *challengeHandler) DeleteRunByID(ctx *gin.Context) {
	runID := ctx.Param("id")

	if err := handler.challengeRunService.DeleteByID(ctx, runID); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error deleting challenge run: %v", err)})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func toRunResponse(run *runs.ChallengeRun) ChallengeRunResponse {
	return ChallengeRunResponse{
		ID:              run.ID,
		DateTimeCreated: run.DateTimeCreated,
		Set:             run.Set,
		Challenge:       run.Challenge,
		Description:     run.Description,
		Outputs:         run.Outputs,
		Success:         run.Success,
		DurationMS:      run.DurationMS,
	}
}
