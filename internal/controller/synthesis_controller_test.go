package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chem-synthesis-be/internal/dto"
	"chem-synthesis-be/internal/pkg/serverutils"
	"chem-synthesis-be/internal/service"
	"chem-synthesis-be/pkg/llm"
)

type stubSynthesisService struct {
	res   *dto.SynthesisResponse
	err   error
	calls int
}

func (s *stubSynthesisService) Lookup(ctx context.Context, casNumber string) (*dto.SynthesisResponse, error) {
	s.calls++
	if s.res != nil {
		res := *s.res
		res.CasNumber = casNumber
		return &res, s.err
	}
	return nil, s.err
}

func newTestApp(svc service.ISynthesisService) *fiber.App {
	app := fiber.New()
	NewSynthesisController(svc).RegisterRoutes(app)
	return app
}

func decodeBody[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestGetSynthesisInvalidCASNumber(t *testing.T) {
	tests := []string{
		"64175",
		"64-17",
		"abc-de-f",
		"12345678-17-5",
		"64-175-5",
	}

	for _, cas := range tests {
		t.Run(cas, func(t *testing.T) {
			svc := &stubSynthesisService{}
			app := newTestApp(svc)

			resp, err := app.Test(httptest.NewRequest("GET", "/synthesis/"+cas, nil))
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)

			result := decodeBody[serverutils.BaseResponse[any]](t, resp.Body)
			assert.False(t, result.Success)
			assert.Contains(t, result.Message, "Invalid CAS number format")

			// Validation failures never reach the lookup pipeline.
			assert.Equal(t, 0, svc.calls)
		})
	}
}

func TestGetSynthesisSuccessEchoesCasNumber(t *testing.T) {
	svc := &stubSynthesisService{
		res: &dto.SynthesisResponse{
			SynthesisMethods: []dto.SynthesisRecordDTO{
				{Yield: "85%", Reagents: []string{"ethylene", "water"}},
			},
			TotalMethods: 1,
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/synthesis/64-17-5", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	result := decodeBody[dto.SynthesisResponse](t, resp.Body)
	assert.Equal(t, "64-17-5", result.CasNumber)
	assert.Equal(t, 1, result.TotalMethods)
	require.Len(t, result.SynthesisMethods, 1)
	assert.Equal(t, "85%", result.SynthesisMethods[0].Yield)
	assert.Equal(t, 1, svc.calls)
}

func TestGetSynthesisNoRecordsFound(t *testing.T) {
	svc := &stubSynthesisService{err: service.ErrNoRecordsFound}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/synthesis/64-17-5", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	result := decodeBody[serverutils.BaseResponse[any]](t, resp.Body)
	assert.Contains(t, result.Message, "No synthesis information found")
}

func TestGetSynthesisUpstreamErrorCarriesStatus(t *testing.T) {
	svc := &stubSynthesisService{
		err: &llm.ErrUpstream{Provider: "perplexity", StatusCode: 503, Body: `{"error": "overloaded"}`},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/synthesis/64-17-5", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	result := decodeBody[serverutils.BaseResponse[any]](t, resp.Body)
	assert.Equal(t, "Failed to retrieve synthesis information", result.Message)
	assert.Contains(t, result.Details, "503")
	assert.Contains(t, result.Details, "overloaded")
}

func TestGetSynthesisCredentialErrorIsServerError(t *testing.T) {
	svc := &stubSynthesisService{err: &llm.ErrMissingCredential{Provider: "perplexity"}}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/synthesis/64-17-5", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	result := decodeBody[serverutils.BaseResponse[any]](t, resp.Body)
	assert.Contains(t, result.Details, "API key not configured")
}

func TestHealth(t *testing.T) {
	app := newTestApp(&stubSynthesisService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	result := decodeBody[dto.HealthResponse](t, resp.Body)
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "synthesis-api", result.Service)
}

func TestRootServiceInfo(t *testing.T) {
	app := newTestApp(&stubSynthesisService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	result := decodeBody[dto.ServiceInfoResponse](t, resp.Body)
	assert.Equal(t, "Chemical Synthesis API", result.Service)
	assert.NotEmpty(t, result.Version)
	assert.Equal(t, "/synthesis/<cas_number>", result.Endpoints["synthesis"])
	assert.Equal(t, "/synthesis/64-17-5", result.Example)
}
