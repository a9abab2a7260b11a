package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"alfredoptarigan/career-copilot/internal/handlers"
	"alfredoptarigan/career-copilot/internal/models"
	"alfredoptarigan/career-copilot/mocks"
)

func testDeps(withAudit bool) appDeps {
	deps := appDeps{
		resumeHandler:  handlers.NewResumeHandler(new(mocks.MockResumeService), nil),
		jobHandler:     handlers.NewJobHandler(new(mocks.MockJobService)),
		fitHandler:     handlers.NewFitHandler(new(mocks.MockFitService), nil),
		profileHandler: handlers.NewProfileHandler(new(mocks.MockPDFParser), 1<<20),
		maxFileSize:    1 << 20,
	}
	if withAudit {
		deps.generationHandler = handlers.NewGenerationHandler(new(mocks.MockGenerationRepository))
	}
	return deps
}

func TestHealth(t *testing.T) {
	app := newApp(testDeps(false), zaptest.NewLogger(t))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, false, body["gemini"])
}

func TestMetricsEndpoint(t *testing.T) {
	app := newApp(testDeps(false), zaptest.NewLogger(t))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGenerationRoutesOnlyWithDatabase(t *testing.T) {
	app := newApp(testDeps(false), zaptest.NewLogger(t))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/generations/not-a-uuid", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)

	app = newApp(testDeps(true), zaptest.NewLogger(t))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/generations/not-a-uuid", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func decodeError(t *testing.T, resp *http.Response) models.ErrorResponse {
	t.Helper()

	var body models.ErrorResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestCustomErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: customErrorHandler(zaptest.NewLogger(t))})
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusConflict, "already exists")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("database exploded")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/conflict", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeError(t, resp)
	assert.True(t, body.Error)
	assert.Equal(t, "CONFLICT", body.Code)
	assert.Equal(t, "already exists", body.Message)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp).Code)
}

func TestStatusErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", statusErrorCode(fiber.StatusNotFound))
	assert.Equal(t, "METHOD_NOT_ALLOWED", statusErrorCode(fiber.StatusMethodNotAllowed))
	assert.Equal(t, "INTERNAL_ERROR", statusErrorCode(fiber.StatusBadGateway))
}

func TestIndexListsEndpoints(t *testing.T) {
	app := newApp(testDeps(true), zaptest.NewLogger(t))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)

	var body struct {
		Endpoints []string `json:"endpoints"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body.Endpoints, "POST /api/v1/fit/analyze")
	assert.Contains(t, body.Endpoints, "GET /api/v1/generations/:id")
}
