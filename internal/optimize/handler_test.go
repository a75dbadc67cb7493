package optimize_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/scott198989/ParameterPath-Optimizer/internal/bootstrap"
	"github.com/scott198989/ParameterPath-Optimizer/internal/config"
	"github.com/scott198989/ParameterPath-Optimizer/internal/server"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	return server.NewEngine(cfg, bootstrap.Build(cfg))
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestOptimizeEndpoint(t *testing.T) {
	router := newTestRouter()

	resp := postJSON(router, "/api/v1/optimize",
		`{"material":"ldpe","targetOD":20,"targetGauge":1.5,"productionRate":200}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var settings struct {
		Material   string  `json:"material"`
		DieSize    float64 `json:"dieSize"`
		ScrewSpeed struct {
			Recommended int `json:"recommended"`
		} `json:"screwSpeed"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&settings); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if settings.Material != "ldpe" {
		t.Fatalf("expected material ldpe, got %s", settings.Material)
	}
	if settings.DieSize != 6 {
		t.Fatalf("expected die size 6, got %v", settings.DieSize)
	}
	if settings.ScrewSpeed.Recommended != 40 {
		t.Fatalf("expected recommended screw speed 40, got %d", settings.ScrewSpeed.Recommended)
	}
}

func TestOptimizeRejectsMissingFields(t *testing.T) {
	router := newTestRouter()

	resp := postJSON(router, "/api/v1/optimize", `{"material":"ldpe","targetOD":20}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if body.Error.Code != "validation_error" {
		t.Fatalf("expected code validation_error, got %s", body.Error.Code)
	}
}

func TestOptimizeRejectsNonPositiveInputs(t *testing.T) {
	router := newTestRouter()

	resp := postJSON(router, "/api/v1/optimize",
		`{"material":"ldpe","targetOD":-20,"targetGauge":1.5,"productionRate":200}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestOptimizeUnknownMaterial(t *testing.T) {
	router := newTestRouter()

	resp := postJSON(router, "/api/v1/optimize",
		`{"material":"pvc","targetOD":20,"targetGauge":1.5,"productionRate":200}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if body.Error.Code != "not_found" {
		t.Fatalf("expected code not_found, got %s", body.Error.Code)
	}
}
